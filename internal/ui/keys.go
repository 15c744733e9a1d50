package ui

import "github.com/charmbracelet/bubbles/key"

// PickerKeyMap holds the keys a Picker reacts to.
type PickerKeyMap struct {
	Toggle key.Binding
	Select key.Binding
	Up     key.Binding
	Down   key.Binding
}

// DefaultPickerKeyMap returns the standard picker bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "open/close"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// AppKeyMap holds the application-level keys and implements help.KeyMap.
type AppKeyMap struct {
	Picker  PickerKeyMap
	Dismiss key.Binding
	Quit    key.Binding
}

// DefaultAppKeyMap returns the standard application bindings.
func DefaultAppKeyMap() AppKeyMap {
	return AppKeyMap{
		Picker: DefaultPickerKeyMap(),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k AppKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Picker.Toggle, k.Picker.Select, k.Dismiss, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k AppKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Picker.Toggle, k.Picker.Select, k.Picker.Up, k.Picker.Down},
		{k.Dismiss, k.Quit},
	}
}
