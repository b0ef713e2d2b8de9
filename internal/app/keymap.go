package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the main menu bindings.
type KeyMap struct {
	Add, Delete, Rename, Move key.Binding
	List                      key.Binding
	Undo, Redo                key.Binding
	Quit                      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Rename: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Move:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		List:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "list")),
		Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:   key.NewBinding(key.WithKeys("y", "ctrl+r"), key.WithHelp("y", "redo")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "ctrl+d"), key.WithHelp("q", "quit")),
	}
}
