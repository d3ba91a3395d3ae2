package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lovecount/internal/constants"
	cd "github.com/julianstephens/lovecount/internal/countdown"
	"github.com/julianstephens/lovecount/internal/logger"
	"github.com/julianstephens/lovecount/internal/love"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/state"
	"github.com/julianstephens/lovecount/internal/tui/components/countdown"
	"github.com/julianstephens/lovecount/internal/tui/components/wheel"
	"github.com/julianstephens/lovecount/internal/validation"
)

const (
	notifyTitle   = "lovecount"
	notifyText    = "It's time! You're finally together 💕"
	notifyTimeout = 5 * time.Second
)

// notifiedMsg reports the outcome of the completion notification.
type notifiedMsg struct{ err error }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.countdownModel.SetSize(msg.Width, msg.Height-4)
		m.diaryModel.SetSize(msg.Width-4, msg.Height-8)
		m.wheelModel.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	// The countdown keeps ticking behind forms and confirmations.
	case countdown.TickMsg:
		var cmd tea.Cmd
		m.countdownModel, cmd = m.countdownModel.Update(msg)
		return m, cmd

	case countdown.CompletedMsg:
		m.status = "🎉 It's time! The time capsule can be opened now."
		return m, m.notifyComplete()

	case notifiedMsg:
		if msg.err != nil {
			logger.Warn("completion notification failed", "error", msg.err)
		}
		return m, nil
	}

	switch m.session {
	case constants.StateForm:
		return m.updateForm(msg)
	case constants.StateConfirm:
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case wheel.SpinMsg:
		m.spin(msg.Category)
		return m, nil
	case wheel.SwitchMsg:
		m.reloadWheel()
		return m, nil
	case wheel.AddOptionMsg:
		m.wheelForm = &WheelFormModel{Category: msg.Category}
		cmd := m.openForm(formWheel, newWheelForm(m.wheelForm))
		return m, cmd
	case wheel.RemoveOptionMsg:
		if _, err := m.state.RemoveWheelOption(msg.Category, msg.Index); err != nil {
			m.status = "⚠ " + err.Error()
		}
		m.reloadWheel()
		m.updateValidationStatus()
		return m, nil
	case wheel.ResetMsg:
		if _, err := m.state.ResetWheel(msg.Category); err != nil {
			m.status = "⚠ " + err.Error()
		}
		m.reloadWheel()
		m.updateValidationStatus()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.setSession((m.session + 1) % constants.SessionState(len(tabTitles)))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			n := constants.SessionState(len(tabTitles))
			m.setSession((m.session - 1 + n) % n)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Silent):
			m.toggleSilent()
			return m, nil
		}
		return m.updateTab(msg)
	}

	return m, nil
}

func (m *Model) setSession(s constants.SessionState) {
	m.session = s
	m.status = ""
	if s == constants.StateStats {
		m.loadStats()
	}
}

// loadStats opens the dashboard, which counts as one visit.
func (m *Model) loadStats() {
	summary, err := m.state.Dashboard()
	if err != nil {
		m.status = "⚠ could not load stats"
		logger.Warn("could not load stats", "error", err)
		return
	}
	m.stats = summary
}

func (m *Model) toggleSilent() {
	if err := m.state.SetSilentMode(!m.silent); err != nil {
		m.status = "⚠ " + err.Error()
		return
	}
	m.silent = !m.silent
	m.countdownModel.Minimal = m.silent
	if m.silent {
		m.status = "🤫 Silent mode on"
	} else {
		m.status = "🔔 Silent mode off"
	}
}

func (m Model) notifyComplete() tea.Cmd {
	if m.silent || m.notifier == nil {
		return nil
	}
	n := m.notifier
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		return notifiedMsg{err: n.Notify(ctx, notifyTitle, notifyText)}
	}
}

func (m Model) updateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.session {
	case constants.StateCountdown:
		switch {
		case key.Matches(msg, m.keys.Edit):
			cmd = m.openSetupForm()
			return m, cmd
		case key.Matches(msg, m.keys.Message):
			m.status = m.picker.CuteMessage(m.daysLeft())
		}

	case constants.StateMood:
		switch {
		case key.Matches(msg, m.keys.Boy):
			m.moodPartner = models.Boy
		case key.Matches(msg, m.keys.Girl):
			m.moodPartner = models.Girl
		case key.Matches(msg, m.keys.Mood):
			i := int(msg.String()[0] - '1')
			if i >= 0 && i < len(constants.Moods) {
				m.setMood(constants.Moods[i].Emoji)
			}
		}

	case constants.StateMiss:
		switch {
		case key.Matches(msg, m.keys.Boy):
			m.missClick(models.Boy)
		case key.Matches(msg, m.keys.Girl):
			m.missClick(models.Girl)
		}

	case constants.StateDiary:
		if key.Matches(msg, m.keys.Add) {
			m.diaryForm = &DiaryFormModel{Author: models.Boy}
			cmd = m.openForm(formDiary, newDiaryForm(m.diaryForm, m.names))
			return m, cmd
		}
		m.diaryModel, cmd = m.diaryModel.Update(msg)

	case constants.StateCapsule:
		switch {
		case key.Matches(msg, m.keys.Seal):
			if m.capsule != nil {
				m.status = "A capsule is already sealed. Delete it first."
				return m, nil
			}
			m.capsuleForm = &CapsuleFormModel{}
			cmd = m.openForm(formCapsule, newCapsuleForm(m.capsuleForm))
			return m, cmd
		case key.Matches(msg, m.keys.Open):
			m.openCapsule()
		case key.Matches(msg, m.keys.Delete):
			if m.capsule != nil {
				m.confirm("Delete the time capsule?", func() error {
					return m.state.DeleteCapsule()
				})
			}
		}

	case constants.StateWheel:
		m.wheelModel, cmd = m.wheelModel.Update(msg)
	}
	return m, cmd
}

func (m Model) daysLeft() int {
	t := m.countdownModel.Last()
	target, ok, err := m.state.Target()
	if err != nil || !ok {
		return 0
	}
	return cd.DaysRemaining(t.Now, target)
}

func (m *Model) setMood(emoji string) {
	rec, err := m.state.SetMood(m.moodPartner, emoji)
	if err != nil {
		m.status = "⚠ " + err.Error()
		return
	}
	m.mood = rec
	m.status = fmt.Sprintf("%s is feeling %s", m.name(m.moodPartner), emoji)
}

func (m *Model) missClick(p models.Partner) {
	rec, err := m.state.MissClick(p)
	if err != nil {
		m.status = "⚠ " + err.Error()
		return
	}
	m.miss = rec
	m.status = fmt.Sprintf("🥹 %s misses %s", m.name(p), m.name(p.Other()))
}

func (m *Model) openCapsule() {
	c, err := m.state.OpenCapsule(m.countdownModel.Last().State)
	switch {
	case errors.Is(err, state.ErrNoCapsule):
		m.status = "No time capsule yet. Press 's' to seal one."
	case errors.Is(err, state.ErrCapsuleLocked):
		m.status = "🔒 Still locked. Wait until you meet 💕"
	case err != nil:
		m.status = "⚠ " + err.Error()
	default:
		m.capsule = &c
		m.status = "💌 Capsule opened"
	}
}

func (m *Model) spin(cat models.WheelCategory) {
	opts, err := m.state.LoadWheel(cat)
	if err != nil {
		m.status = "⚠ " + err.Error()
		return
	}
	choice, _, err := m.picker.Spin(opts)
	if errors.Is(err, love.ErrTooFewOptions) {
		m.status = "Add at least 2 options to spin"
		return
	}
	m.wheelModel.Result = choice
}

func (m *Model) confirm(prompt string, action func() error) {
	m.previousState = m.session
	m.session = constants.StateConfirm
	m.confirmPrompt = prompt
	m.pendingAction = action
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if m.pendingAction != nil {
				if err := m.pendingAction(); err != nil {
					m.status = "⚠ " + err.Error()
				}
			}
			m.pendingAction = nil
			m.session = m.previousState
			m.reload()
		case "n", "N", "esc":
			m.pendingAction = nil
			m.session = m.previousState
		}
	}
	return m, nil
}

func (m *Model) openSetupForm() tea.Cmd {
	profile, err := m.state.LoadProfile()
	if err != nil {
		logger.Warn("could not load profile", "error", err)
	}
	fields := SetupFieldsFrom(validation.FormFromProfile(profile))
	m.setupFields = &fields
	return m.openForm(formSetup, NewSetupForm(m.setupFields))
}

func (m *Model) openForm(kind formKind, form *huh.Form) tea.Cmd {
	if m.session != constants.StateForm {
		m.previousState = m.session
	}
	m.session = constants.StateForm
	m.formKind = kind
	m.formError = ""
	m.form = form
	return form.Init()
}

func (m *Model) closeForm() {
	m.session = m.previousState
	m.form = nil
	m.formError = ""
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitForm(); err != nil {
			// Stay in form state on error to allow retry
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		m.closeForm()
		m.reload()
	case huh.StateAborted:
		m.closeForm()
	}
	return m, tea.Batch(cmds...)
}

var errNothingSaved = errors.New("nothing to save, the text is empty")

func (m *Model) submitForm() error {
	switch m.formKind {
	case formSetup:
		form := m.setupFields.SetupForm()
		if errs := validation.ValidateSetup(form, m.state.Now(), m.state.Location()); !errs.Empty() {
			return errs
		}
		if err := m.state.SaveProfile(form.Profile()); err != nil {
			return err
		}
		target, _, err := m.state.Target()
		if err != nil {
			return err
		}
		m.countdownModel.SetTarget(target)
		m.previousState = constants.StateCountdown
		m.status = "✓ Profile saved"

	case formDiary:
		_, added, err := m.state.AddDiaryEntry(m.diaryForm.Author, m.diaryForm.Text)
		if err != nil {
			return err
		}
		if !added {
			return errNothingSaved
		}
		m.status = "✓ Note saved"

	case formCapsule:
		_, sealed, err := m.state.SealCapsule(m.capsuleForm.Message)
		if err != nil {
			return err
		}
		if !sealed {
			return errNothingSaved
		}
		m.status = "🔒 Time capsule sealed"

	case formWheel:
		_, added, err := m.state.AddWheelOption(m.wheelForm.Category, m.wheelForm.Label)
		if err != nil {
			return err
		}
		if !added {
			return errors.New("the option is empty or already on the wheel")
		}
		m.status = "✓ Option added"
	}
	return nil
}
