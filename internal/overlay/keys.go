package overlay

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys that dismiss a highlight session
type KeyMap struct {
	Dismiss key.Binding
}

// DefaultKeyMap returns the standard dismissal bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "enter", " ", "q"),
			key.WithHelp("esc/enter", "dismiss"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Dismiss}}
}
