package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add      key.Binding
	Reset    key.Binding
	Theme    key.Binding
	Save     key.Binding
	Snapshot key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Reset, k.Cancel},
		{k.Theme, k.Save, k.Snapshot},
		{k.Help, k.Quit},
	}
}

func defaultKeys() keyMap {
	return keyMap{
		Add:      key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add sample")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset selection")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save svg")),
		Snapshot: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "save terminal snapshot")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
