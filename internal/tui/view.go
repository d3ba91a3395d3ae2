package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/love"
	"github.com/julianstephens/lovecount/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return "See you soon 💕\n"
	}

	var content string
	switch m.session {
	case constants.StateForm:
		content = m.viewForm()
	case constants.StateConfirm:
		content = m.viewConfirm()
	default:
		content = m.viewTab()
	}

	var lines []string
	if m.session != constants.StateForm && m.session != constants.StateConfirm {
		lines = append(lines, m.viewTabs())
	}
	lines = append(lines, content)
	if m.status != "" {
		lines = append(lines, statusStyle.Render(m.status))
	}
	if m.validationWarning != "" {
		lines = append(lines, warningStyle.Render(m.validationWarning))
	}
	lines = append(lines, m.help.View(m))
	return docStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewTabs() string {
	tabs := make([]string, len(tabTitles))
	for i, t := range tabTitles {
		if constants.SessionState(i) == m.session {
			tabs[i] = activeTabStyle.Render(t)
		} else {
			tabs[i] = inactiveTabStyle.Render(t)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m Model) viewForm() string {
	var b strings.Builder
	if m.formError != "" {
		b.WriteString(dangerStyle.Render("⚠ "+m.formError) + "\n\n")
	}
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	b.WriteString("\n" + mutedStyle.Render("esc to cancel"))
	return b.String()
}

func (m Model) viewConfirm() string {
	box := lipgloss.JoinVertical(lipgloss.Center,
		dangerStyle.Render(m.confirmPrompt),
		"",
		"[y] Yes    [n] No",
	)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m Model) viewTab() string {
	switch m.session {
	case constants.StateMood:
		return m.viewMood()
	case constants.StateMiss:
		return m.viewMiss()
	case constants.StateDiary:
		return headingStyle.Render("📔 Diary") + "\n\n" + m.diaryModel.View()
	case constants.StateCapsule:
		return m.viewCapsule()
	case constants.StateWheel:
		return m.wheelModel.View()
	case constants.StateStats:
		return m.viewStats()
	}
	return m.countdownModel.View()
}

func (m Model) viewMood() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("How are you feeling today?") + "\n\n")
	for _, p := range models.Partners {
		mood := m.mood.MoodOf(p)
		if mood == "" {
			mood = mutedStyle.Render("not set")
		}
		marker := "  "
		if p == m.moodPartner {
			marker = "▸ "
		}
		fmt.Fprintf(&b, "%s%s: %s\n", marker, m.name(p), mood)
	}
	b.WriteString("\n")
	for i, mood := range constants.Moods {
		fmt.Fprintf(&b, "  [%d] %s %s", i+1, mood.Emoji, mood.Label)
	}
	return b.String()
}

func (m Model) viewMiss() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Who misses whom more today?") + "\n\n")
	for _, p := range models.Partners {
		fmt.Fprintf(&b, "  %s: %d 🥹\n", m.name(p), m.miss.Count(p))
	}
	b.WriteString("\n")
	if winner, ok := love.MissWinner(m.miss); ok {
		fmt.Fprintf(&b, "  %s misses more, by %d 💕", m.name(winner), love.MissMargin(m.miss))
	} else if m.miss.Total() > 0 {
		b.WriteString("  It's a tie 💕")
	} else {
		b.WriteString(mutedStyle.Render("  No clicks yet today"))
	}
	return b.String()
}

func (m Model) viewCapsule() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("💌 Time capsule") + "\n\n")
	switch {
	case m.capsule == nil:
		b.WriteString(mutedStyle.Render("No capsule yet. Press 's' to seal a message for the day you meet."))
	case m.capsule.IsOpened:
		b.WriteString(m.capsule.Message)
	default:
		fmt.Fprintf(&b, "🔒 Sealed %s\n", m.capsule.CreatedAt)
		b.WriteString(mutedStyle.Render("Opens when the countdown ends."))
	}
	return b.String()
}

func (m Model) viewStats() string {
	s := m.stats
	rows := []struct {
		label string
		value int
	}{
		{"📅 Days waited", s.TotalDaysWaited},
		{"👀 Visits", s.WebOpenCount},
		{"🎯 Challenges", s.ChallengesDone},
		{"🥹 Miss clicks", s.MissClicks},
		{"📔 Diary notes", s.DiaryEntries},
		{"💭 Missing days", s.MissMoods},
	}
	var b strings.Builder
	b.WriteString(headingStyle.Render("💕 Love stats") + "\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-16s %d\n", r.label, r.value)
	}
	return b.String()
}
