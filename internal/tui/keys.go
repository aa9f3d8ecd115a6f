package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	filter     key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	copyUser   key.Binding
	reveal     key.Binding
	refresh    key.Binding
	dismiss    key.Binding
	master     key.Binding
	logout     key.Binding
	buildInfo  key.Binding
	generate   key.Binding
	save       key.Binding
	toggleSave key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	filter:     key.NewBinding(key.WithKeys("/")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	copyUser:   key.NewBinding(key.WithKeys("u")),
	reveal:     key.NewBinding(key.WithKeys(" ")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	dismiss:    key.NewBinding(key.WithKeys("x")),
	master:     key.NewBinding(key.WithKeys("m")),
	logout:     key.NewBinding(key.WithKeys("o")),
	buildInfo:  key.NewBinding(key.WithKeys("ctrl+b")),
	generate:   key.NewBinding(key.WithKeys("ctrl+g")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
	toggleSave: key.NewBinding(key.WithKeys("ctrl+t")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}
