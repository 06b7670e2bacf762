package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmdelaney/dayglow/internal/timer"
	"github.com/jmdelaney/dayglow/internal/utils"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// FocusModel runs the focus timer in the terminal. onFocusDone fires once per
// completed focus session so the caller can award points and persist.
type FocusModel struct {
	timer       *timer.Timer
	bar         progress.Model
	onFocusDone func()
	sessions    int

	Quit bool
}

func NewFocusModel(t *timer.Timer, sessions int, onFocusDone func()) *FocusModel {
	if sessions < 1 {
		sessions = 1
	}
	return &FocusModel{
		timer:       t,
		bar:         progress.New(progress.WithDefaultGradient()),
		sessions:    sessions,
		onFocusDone: onFocusDone,
	}
}

func (m *FocusModel) Init() tea.Cmd {
	m.timer.Start()
	return tick()
}

func (m *FocusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 8
		if w > 60 {
			w = 60
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.timer.Cancel()
			m.Quit = true
			return m, tea.Quit
		}

	case tickMsg:
		switch m.timer.Tick() {
		case timer.FocusDone:
			if m.onFocusDone != nil {
				m.onFocusDone()
			}
		case timer.BreakDone:
			if m.timer.Completed >= m.sessions {
				m.Quit = true
				return m, tea.Quit
			}
			m.timer.Start()
		}
		return m, tick()
	}

	return m, nil
}

func (m *FocusModel) View() string {
	if m.Quit {
		return ""
	}

	var label string
	switch m.timer.Phase {
	case timer.Focus:
		label = titleStyle.Render("Focus")
	case timer.Break:
		label = syncedStyle.Render("Break")
	default:
		label = labelStyle.Render("Idle")
	}

	var total time.Duration
	switch m.timer.Phase {
	case timer.Focus:
		total = m.timer.FocusDuration
	case timer.Break:
		total = m.timer.BreakDuration
	}
	percent := 0.0
	if total > 0 {
		percent = 1 - float64(m.timer.Remaining)/float64(total)
	}

	countdown := pointsStyle.Render(utils.FormatCountdown(m.timer.Remaining))
	session := m.timer.Completed + 1
	if session > m.sessions {
		session = m.sessions
	}
	counter := stepCountStyle.Render(fmt.Sprintf("session %d/%d", session, m.sessions))
	help := helpStyle.Render("q: stop")

	return docStyle.Render(label + "  " + countdown + "  " + counter + "\n" +
		m.bar.ViewAs(percent) + "\n" + help)
}
