package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	more       key.Binding
	reload     key.Binding
	switchUser key.Binding
	info       key.Binding
	sortTitle  key.Binding
	sortDesc   key.Binding
	sortTime   key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	more:       key.NewBinding(key.WithKeys("m")),
	reload:     key.NewBinding(key.WithKeys("r")),
	switchUser: key.NewBinding(key.WithKeys("u")),
	info:       key.NewBinding(key.WithKeys("v")),
	sortTitle:  key.NewBinding(key.WithKeys("1")),
	sortDesc:   key.NewBinding(key.WithKeys("2")),
	sortTime:   key.NewBinding(key.WithKeys("3")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}
