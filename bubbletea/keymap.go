package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the viewer's key bindings.
type KeyMap struct {
	ScrollDown    key.Binding
	ScrollUp      key.Binding
	ToggleHidden  key.Binding
	ToggleReverse key.Binding
	Narrow        key.Binding
	Widen         key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		ToggleHidden: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hide"),
		),
		ToggleReverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse"),
		),
		Narrow: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "narrow"),
		),
		Widen: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "widen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap; these are the hints shown in the status
// bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ScrollDown, k.ScrollUp, k.ToggleHidden, k.ToggleReverse, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ScrollDown, k.ScrollUp},
		{k.ToggleHidden, k.ToggleReverse},
		{k.Narrow, k.Widen},
		{k.Quit},
	}
}
