package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/constants"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case monthLoadedMsg:
		m.loading = false
		m.err = nil
		m.state.SetHabits(msg.habits)
		m.month = msg.month
		m.streak = msg.streak
		if m.cursor >= len(m.state.Habits) {
			m.cursor = 0
		}
		return m, nil

	case logSavedMsg:
		m.panel = PanelCalendar
		m.form = nil
		if msg.result.Failed > 0 {
			m.status = fmt.Sprintf("Saved %d change(s), %d failed", msg.result.Succeeded, msg.result.Failed)
		} else if msg.result.Succeeded > 0 {
			m.status = fmt.Sprintf("Saved %d change(s)", msg.result.Succeeded)
		} else {
			m.status = "Nothing to change"
		}
		m.loading = true
		return m, m.loadMonth()

	case errMsg:
		m.loading = false
		m.err = msg.err
		m.panel = PanelCalendar
		m.form = nil
		return m, nil
	}

	if m.panel == PanelLog && m.form != nil {
		return m.updateLogForm(msg)
	}
	return m.updateBrowse(msg)
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Tab):
		if m.panel == PanelCalendar {
			m.panel = PanelHabits
		} else {
			m.panel = PanelCalendar
		}

	case key.Matches(keyMsg, m.keys.Prev):
		m.state.PrevMonth()
		m.status = ""
		m.loading = true
		return m, m.loadMonth()

	case key.Matches(keyMsg, m.keys.Next):
		m.state.NextMonth()
		m.status = ""
		m.loading = true
		return m, m.loadMonth()

	case key.Matches(keyMsg, m.keys.Today):
		now := time.Now()
		m.state.Year, m.state.Month = now.Year(), now.Month()
		m.loading = true
		return m, m.loadMonth()

	case key.Matches(keyMsg, m.keys.Refresh):
		m.status = ""
		m.loading = true
		return m, m.loadMonth()

	case key.Matches(keyMsg, m.keys.Up):
		if m.panel == PanelHabits && m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.panel == PanelHabits && m.cursor < len(m.state.Habits)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.panel == PanelHabits && m.cursor < len(m.state.Habits) {
			m.state.Toggle(m.state.Habits[m.cursor].ID)
			m.loading = true
			return m, m.loadMonth()
		}

	case key.Matches(keyMsg, m.keys.Log):
		if len(m.state.VisibleHabits()) == 0 {
			m.status = "No visible habits to log"
			return m, nil
		}
		m.newLogForm()
		m.panel = PanelLog
		return m, m.form.Init()
	}

	return m, nil
}

func (m Model) updateLogForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.panel = PanelCalendar
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		desired := make(map[int]constants.Status)
		for i, h := range m.state.VisibleHabits() {
			desired[h.ID] = *m.choices[i]
		}
		return m, m.saveLog(desired)
	}
	return m, cmd
}
