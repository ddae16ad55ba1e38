package live

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the live UI key bindings.
type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Activate  key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// defaultKeys returns the standard bindings. Letter keys are only honored
// while no text field has focus.
func defaultKeys() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab/↑", "previous"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Activate, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// typingKeys reports whether a rune key belongs to a focused text field.
func typingKeys(msg string) bool {
	switch msg {
	case "j", "k", "q", " ":
		return true
	default:
		return false
	}
}
