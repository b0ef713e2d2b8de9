// Package console is the terminal surface of the application: raw-mode key
// input, line editing on top of package editor, typed prompts and key menus.
package console
