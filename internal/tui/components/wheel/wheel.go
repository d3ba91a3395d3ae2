package wheel

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lovecount/internal/models"
)

type SpinMsg struct {
	Category models.WheelCategory
}

type AddOptionMsg struct {
	Category models.WheelCategory
}

type RemoveOptionMsg struct {
	Category models.WheelCategory
	Index    int
}

// SwitchMsg asks the parent to load the other wheel's options.
type SwitchMsg struct {
	Category models.WheelCategory
}

type ResetMsg struct {
	Category models.WheelCategory
}

type Item struct {
	Index int
	Label string
}

func (i Item) Title() string       { return i.Label }
func (i Item) Description() string { return fmt.Sprintf("option %d", i.Index+1) }
func (i Item) FilterValue() string { return i.Label }

type KeyMap struct {
	Spin   key.Binding
	Switch key.Binding
	Add    key.Binding
	Delete key.Binding
	Reset  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Spin: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "spin"),
		),
		Switch: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "food/date"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
	}
}

type Model struct {
	list     list.Model
	keys     KeyMap
	Category models.WheelCategory
	Result   string
}

func New(options []string, width, height int) Model {
	l := list.New(toItems(options), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Spin, keys.Switch, keys.Add, keys.Delete, keys.Reset}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys, Category: models.WheelFood}
}

func toItems(options []string) []list.Item {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = Item{Index: i, Label: o}
	}
	return items
}

func (m *Model) SetOptions(options []string) {
	m.list.SetItems(toItems(options))
}

// Next returns the other category.
func (m Model) Next() models.WheelCategory {
	if m.Category == models.WheelFood {
		return models.WheelDate
	}
	return models.WheelFood
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		cat := m.Category
		switch {
		case key.Matches(msg, m.keys.Spin):
			return m, func() tea.Msg { return SpinMsg{Category: cat} }
		case key.Matches(msg, m.keys.Switch):
			m.Category = m.Next()
			m.Result = ""
			next := m.Category
			return m, func() tea.Msg { return SwitchMsg{Category: next} }
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddOptionMsg{Category: cat} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RemoveOptionMsg{Category: cat, Index: i.Index} }
			}
		case key.Matches(msg, m.keys.Reset):
			return m, func() tea.Msg { return ResetMsg{Category: cat} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := fmt.Sprintf("🎡 %s wheel", m.Category)
	if m.Result != "" {
		header += "  →  " + m.Result
	}
	if len(m.list.Items()) == 0 {
		return header + "\n\n  No options.\n  Press 'a' to add one or 'r' to reset."
	}
	return header + "\n\n" + m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-2)
}
