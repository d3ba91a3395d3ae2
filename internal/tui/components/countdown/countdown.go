package countdown

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lovecount/internal/constants"
	cd "github.com/julianstephens/lovecount/internal/countdown"
	"github.com/julianstephens/lovecount/internal/love"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Width(10).
			Align(lipgloss.Center)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Padding(1, 0)

	quoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(2, 4).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("205"))
)

// TickMsg re-renders the countdown.
type TickMsg time.Time

// CompletedMsg is sent once, on the tick that first sees the target reached.
type CompletedMsg struct {
	Tick cd.Tick
}

type Model struct {
	tracker  *cd.Tracker
	interval time.Duration
	now      func() time.Time
	last     cd.Tick

	Title   string // "Boy 💕 Girl"
	Minimal bool   // silent mode: numbers only
	width   int
	height  int
}

// New tracks target. A zero target renders the "no profile" view.
func New(target time.Time, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	m := Model{
		tracker:  cd.NewTracker(target),
		interval: constants.DefaultTickInterval,
		now:      now,
	}
	m.last = peek(now(), target)
	return m
}

// peek describes the countdown without advancing the tracker, so the first
// tick can still report completion.
func peek(now, target time.Time) cd.Tick {
	return cd.Tick{Now: now, State: cd.StateAt(now, target), Left: cd.Compute(now, target)}
}

// SetTarget swaps the target, e.g. after the profile is edited. Completion
// may fire again for the new target.
func (m *Model) SetTarget(target time.Time) {
	m.tracker = cd.NewTracker(target)
	m.last = peek(m.now(), target)
}

func (m *Model) SetInterval(d time.Duration) {
	if d > 0 {
		m.interval = d
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Last is the most recent observation.
func (m Model) Last() cd.Tick {
	return m.last
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case TickMsg:
		m.last = m.tracker.Observe(m.now())
		cmds := []tea.Cmd{m.tick()}
		if m.last.Completed {
			t := m.last
			cmds = append(cmds, func() tea.Msg { return CompletedMsg{Tick: t} })
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m Model) View() string {
	var content string
	switch m.last.State {
	case cd.Undefined:
		content = titleStyle.Render("No countdown yet. Press 'e' to set up your profile.")
	case cd.Complete:
		content = lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render(m.Title),
			doneStyle.Render("🎉 It's time! You're finally together 💕"),
		)
	default:
		content = m.viewPending()
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) viewPending() string {
	left := m.last.Left
	if m.Minimal {
		return titleStyle.Render(left.String())
	}

	units := lipgloss.JoinHorizontal(lipgloss.Top,
		unitStyle.Render(fmt.Sprintf("%d\ndays", left.Days)),
		unitStyle.Render(fmt.Sprintf("%02d\nhours", left.Hours)),
		unitStyle.Render(fmt.Sprintf("%02d\nmins", left.Minutes)),
		unitStyle.Render(fmt.Sprintf("%02d\nsecs", left.Seconds)),
	)
	days := cd.DaysRemaining(m.last.Now, m.tracker.Target())
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.Title),
		units,
		summaryStyle.Render(fmt.Sprintf("📅 %d more day(s) until we meet", days)),
		quoteStyle.Render(love.DailyQuote(m.last.Now)),
	)
}
