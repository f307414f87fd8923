package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	nextTab   key.Binding
	prevTab   key.Binding
	search    key.Binding
	enter     key.Binding
	esc       key.Binding
	inContact key.Binding
	convert   key.Binding
	discard   key.Binding
	pending   key.Binding
	delete    key.Binding
	copyPhone key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
	quit      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	nextTab:   key.NewBinding(key.WithKeys("tab", "right", "l")),
	prevTab:   key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
	search:    key.NewBinding(key.WithKeys("/")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	inContact: key.NewBinding(key.WithKeys("c")),
	convert:   key.NewBinding(key.WithKeys("v")),
	discard:   key.NewBinding(key.WithKeys("x")),
	pending:   key.NewBinding(key.WithKeys("p")),
	delete:    key.NewBinding(key.WithKeys("D")),
	copyPhone: key.NewBinding(key.WithKeys("y")),
	info:      key.NewBinding(key.WithKeys("i")),
	yes:       key.NewBinding(key.WithKeys("y", "enter")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
