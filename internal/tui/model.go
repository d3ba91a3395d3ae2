package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/logger"
	"github.com/julianstephens/lovecount/internal/love"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/notifier"
	"github.com/julianstephens/lovecount/internal/state"
	"github.com/julianstephens/lovecount/internal/tui/components/countdown"
	"github.com/julianstephens/lovecount/internal/tui/components/diary"
	"github.com/julianstephens/lovecount/internal/tui/components/wheel"
	"github.com/julianstephens/lovecount/internal/validation"
)

var tabTitles = []string{"Countdown", "Mood", "Miss", "Diary", "Capsule", "Wheel", "Stats"}

type formKind int

const (
	formSetup formKind = iota
	formDiary
	formCapsule
	formWheel
)

type Model struct {
	state    *state.Manager
	picker   *love.Picker
	notifier notifier.Sender

	session       constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	countdownModel countdown.Model
	diaryModel     diary.Model
	wheelModel     wheel.Model

	form        *huh.Form
	formKind    formKind
	setupFields *SetupFields
	diaryForm   *DiaryFormModel
	capsuleForm *CapsuleFormModel
	wheelForm   *WheelFormModel
	formError   string

	confirmPrompt string
	pendingAction func() error

	names       map[models.Partner]string
	moodPartner models.Partner
	mood        models.MoodRecord
	miss        models.MissCounter
	capsule     *models.TimeCapsule
	stats       state.Summary
	silent      bool

	status            string
	validationWarning string
	quitting          bool
	width             int
	height            int
}

// NewModel loads everything the tabs show. Without a profile the model
// opens on the setup form.
func NewModel(st *state.Manager, picker *love.Picker, n notifier.Sender) Model {
	if picker == nil {
		picker = love.NewPicker(nil)
	}
	target, _, err := st.Target()
	if err != nil {
		logger.Warn("could not load countdown target", "error", err)
	}

	m := Model{
		state:          st,
		picker:         picker,
		notifier:       n,
		session:        constants.StateCountdown,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		countdownModel: countdown.New(target, st.Now),
		diaryModel:     diary.New(0, 0),
		wheelModel:     wheel.New(nil, 0, 0),
		moodPartner:    models.Boy,
	}
	m.diaryModel.Location = st.Location()
	m.reload()

	if target.IsZero() {
		m.openSetupForm()
	}
	return m
}

// SetTickInterval changes how often the countdown redraws.
func (m *Model) SetTickInterval(d time.Duration) {
	m.countdownModel.SetInterval(d)
}

// reload refreshes every tab from the store. Store errors are logged and
// surfaced in the status line; the tabs keep their previous content.
func (m *Model) reload() {
	fail := func(what string, err error) {
		logger.Warn("reload failed", "what", what, "error", err)
		m.status = fmt.Sprintf("⚠ could not load %s", what)
	}

	m.names = map[models.Partner]string{}
	profile, err := m.state.LoadProfile()
	if err != nil {
		fail("profile", err)
	}
	if profile != nil {
		for _, p := range models.Partners {
			m.names[p] = profile.DisplayName(p)
		}
		m.countdownModel.Title = fmt.Sprintf("%s 💕 %s", m.names[models.Boy], m.names[models.Girl])
	}
	m.diaryModel.Names = m.names

	if m.silent, err = m.state.SilentMode(); err != nil {
		fail("silent mode", err)
	}
	m.countdownModel.Minimal = m.silent

	if m.mood, _, err = m.state.TodayMood(); err != nil {
		fail("moods", err)
	}
	if m.miss, err = m.state.TodayMiss(); err != nil {
		fail("miss counter", err)
	}
	if m.capsule, err = m.state.LoadCapsule(); err != nil {
		fail("capsule", err)
	}
	if entries, err := m.state.LoadDiary(); err != nil {
		fail("diary", err)
	} else {
		m.diaryModel.SetEntries(entries)
	}
	m.reloadWheel()
	m.updateValidationStatus()
}

func (m *Model) reloadWheel() {
	opts, err := m.state.LoadWheel(m.wheelModel.Category)
	if err != nil {
		logger.Warn("could not load wheel", "error", err)
		return
	}
	m.wheelModel.SetOptions(opts)
}

// updateValidationStatus runs validation and updates the warning message
func (m *Model) updateValidationStatus() {
	records, err := validation.LoadRecords(m.state)
	if err != nil {
		m.validationWarning = "⚠ Validation unavailable"
		return
	}
	result := validation.New().ValidateRecords(records)
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s), run 'lovecount doctor'", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

func (m Model) name(p models.Partner) string {
	if n := m.names[p]; n != "" {
		return n
	}
	return string(p)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.session {
	case constants.StateCountdown:
		keys = append(keys, m.keys.Edit, m.keys.Silent, m.keys.Message)
	case constants.StateMood:
		keys = append(keys, m.keys.Boy, m.keys.Girl, m.keys.Mood)
	case constants.StateMiss:
		keys = append(keys, m.keys.Boy, m.keys.Girl)
	case constants.StateDiary:
		keys = append(keys, m.keys.Add, m.keys.Up, m.keys.Down)
	case constants.StateCapsule:
		keys = append(keys, m.keys.Seal, m.keys.Open, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	countdownKeys := []key.Binding{m.keys.Edit, m.keys.Silent, m.keys.Message}

	var actions []key.Binding
	switch m.session {
	case constants.StateMood:
		actions = []key.Binding{m.keys.Boy, m.keys.Girl, m.keys.Mood}
	case constants.StateMiss:
		actions = []key.Binding{m.keys.Boy, m.keys.Girl}
	case constants.StateDiary:
		actions = []key.Binding{m.keys.Add, m.keys.Up, m.keys.Down}
	case constants.StateCapsule:
		actions = []key.Binding{m.keys.Seal, m.keys.Open, m.keys.Delete}
	}
	return [][]key.Binding{global, countdownKeys, actions}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.countdownModel.Init()}
	if m.session == constants.StateForm && m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	return tea.Batch(cmds...)
}
