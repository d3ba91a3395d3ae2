package diary

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(18)

	authorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true).
			Width(12)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

type Model struct {
	viewport viewport.Model
	Entries  []models.DiaryEntry
	Names    map[models.Partner]string
	Location *time.Location
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		Names:    map[models.Partner]string{},
		Location: time.Local,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.Entries) == 0 {
		return "\n  The diary is empty.\n  Press 'a' to write a note."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetEntries(entries []models.DiaryEntry) {
	m.Entries = entries
	m.Render()
}

func (m *Model) Render() {
	var b strings.Builder
	for _, e := range m.Entries {
		when := e.Date
		if t, err := time.Parse(constants.TimestampFormat, e.Date); err == nil {
			when = t.In(m.Location).Format("2006-01-02 15:04")
		}
		name := m.Names[e.Author]
		if name == "" {
			name = string(e.Author)
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			timeStyle.Render(when),
			authorStyle.Render(name),
			textStyle.Render(e.Text),
		)
	}
	m.viewport.SetContent(b.String())
}
