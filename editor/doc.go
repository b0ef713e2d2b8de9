// Package editor renders a buffer.Buffer as a word-wrapped line editor on a
// character-cell Sink.
//
// The first row starts after the prompt; every later row starts at column 0.
// A View remembers what it painted and, on each redraw, rewrites only the
// cells that changed.
package editor
