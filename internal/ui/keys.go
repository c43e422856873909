package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Explode    key.Binding
	Theme      key.Binding
	Afterglow  key.Binding
	Sound      key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Explode: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "explode"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Afterglow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "afterglow"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sound"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "=", "up"),
			key.WithHelp("+/-", "volume"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-", "down"),
			key.WithHelp("-", "volume down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Explode, k.Theme, k.Afterglow, k.Sound, k.VolumeUp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Explode, k.Theme, k.Afterglow},
		{k.Sound, k.VolumeUp, k.VolumeDown, k.Quit},
	}
}
