package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	search  key.Binding
	copy    key.Binding
	refresh key.Binding
	block   key.Binding
	delete  key.Binding
	respond key.Binding
	nextTab key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	search:  key.NewBinding(key.WithKeys("/")),
	copy:    key.NewBinding(key.WithKeys("c")),
	refresh: key.NewBinding(key.WithKeys("r")),
	block:   key.NewBinding(key.WithKeys("b")),
	delete:  key.NewBinding(key.WithKeys("d")),
	respond: key.NewBinding(key.WithKeys("a")),
	nextTab: key.NewBinding(key.WithKeys("tab")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
