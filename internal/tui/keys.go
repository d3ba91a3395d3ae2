package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Help     key.Binding
	Edit     key.Binding
	Silent   key.Binding
	Message  key.Binding
	Boy      key.Binding
	Girl     key.Binding
	Mood     key.Binding
	Add      key.Binding
	Seal     key.Binding
	Open     key.Binding
	Delete   key.Binding
	Up       key.Binding
	Down     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit, k.Help},
		{k.Edit, k.Silent, k.Message},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit profile"),
		),
		Silent: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "silent mode"),
		),
		Message: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "cute message"),
		),
		Boy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "him"),
		),
		Girl: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "her"),
		),
		Mood: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "pick mood"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "write"),
		),
		Seal: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "seal"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
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
