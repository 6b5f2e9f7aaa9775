package display

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Toggle     key.Binding
	Reset      key.Binding
	Lap        key.Binding
	ClearLaps  key.Binding
	Fullscreen key.Binding
	Theme      key.Binding
	Export     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Lap:        key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lap")),
		ClearLaps:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear laps")),
		Fullscreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Lap, k.Reset, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Lap, k.Reset, k.ClearLaps},
		{k.Fullscreen, k.Theme, k.Export},
		{k.Help, k.Quit},
	}
}

// Bindings lists every binding in help order.
func (k KeyMap) Bindings() []key.Binding {
	var out []key.Binding
	for _, column := range k.FullHelp() {
		out = append(out, column...)
	}
	return out
}
