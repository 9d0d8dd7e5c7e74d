package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the terminal modal.
// It lives in pkg/types so the model and its help footer share one definition.
type KeyMap struct {
	// Modal
	Open  key.Binding
	Close key.Binding
	Quit  key.Binding

	// Line editing
	Submit   key.Binding
	Complete key.Binding
	Clear    key.Binding

	// History
	Prev key.Binding
	Next key.Binding

	// Scrollback
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("ctrl+t", "enter"),
			key.WithHelp("ctrl+t", "open terminal"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Complete, k.Prev, k.Close, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Complete, k.Clear},
		{k.Prev, k.Next, k.PageUp, k.PageDown},
		{k.Open, k.Close, k.Quit},
	}
}
