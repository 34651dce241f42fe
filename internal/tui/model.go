package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/api"
	"github.com/julianstephens/lifetrack/internal/calendar"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/reconcile"
	"github.com/julianstephens/lifetrack/internal/session"
	"github.com/julianstephens/lifetrack/internal/streak"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type Panel int

const (
	PanelCalendar Panel = iota
	PanelHabits
	PanelLog
)

type monthLoadedMsg struct {
	habits []models.Habit
	month  calendar.Month
	streak streak.Result
}

type logSavedMsg struct {
	result reconcile.Result
}

type errMsg struct {
	err error
}

type Model struct {
	client   *api.Client
	state    *session.State
	panel    Panel
	keys     KeyMap
	help     help.Model
	month    calendar.Month
	streak   streak.Result
	cursor   int
	form     *huh.Form
	choices  []*constants.Status
	loading  bool
	err      error
	status   string
	width    int
	height   int
	quitting bool
}

func NewModel(client *api.Client) Model {
	return Model{
		client:  client,
		state:   session.New(time.Now()),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadMonth()
}

// loadMonth refreshes the habit list, the visible month, and the joint
// streak in one command. The command goroutine works on a snapshot of the
// session state; the live state is only touched in Update when the
// monthLoadedMsg arrives.
func (m Model) loadMonth() tea.Cmd {
	snap := m.state.Clone()
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()

		habits, err := client.ListHabits(ctx)
		if err != nil {
			return errMsg{err}
		}
		snap.SetHabits(habits)

		month, err := calendar.BuildMonth(ctx, client, snap, time.Now())
		if err != nil {
			return errMsg{err}
		}

		result, err := streak.Joint(ctx, client, snap.VisibleIDs(), time.Now())
		if err != nil {
			return errMsg{err}
		}

		return monthLoadedMsg{habits: habits, month: month, streak: result}
	}
}

// saveLog reconciles the chosen statuses against today's existing logs.
func (m Model) saveLog(desired map[int]constants.Status) tea.Cmd {
	client := m.client
	habits := m.state.Habits
	return func() tea.Msg {
		ctx := context.Background()
		today := utils.DateKey(time.Now())

		previous := make(map[int]reconcile.Previous)
		order := make([]int, 0, len(habits))
		for _, h := range habits {
			if _, ok := desired[h.ID]; !ok {
				continue
			}
			order = append(order, h.ID)

			detail, err := client.GetHabitDetail(ctx, h.ID)
			if err != nil {
				return errMsg{err}
			}
			for _, log := range detail.RecentLogs {
				if utils.DateKey(log.CompletedAt.Time) == today {
					previous[h.ID] = reconcile.Previous{LogID: log.ID, Status: log.EffectiveStatus()}
					break
				}
			}
		}

		result := reconcile.Day(ctx, client, today, order, desired, previous, "")
		return logSavedMsg{result: result}
	}
}

// newLogForm builds a status select per visible habit, pre-filled with
// today's recorded statuses.
func (m *Model) newLogForm() {
	habits := m.state.VisibleHabits()
	today := utils.DateKey(time.Now())

	todayStatuses := map[int]constants.Status{}
	for _, day := range m.month.Days {
		if day.Date == today {
			todayStatuses = day.Statuses
			break
		}
	}

	m.choices = make([]*constants.Status, len(habits))
	fields := make([]huh.Field, 0, len(habits))
	for i, h := range habits {
		current := constants.StatusNone
		if s, ok := todayStatuses[h.ID]; ok {
			current = s
		}
		m.choices[i] = &current

		fields = append(fields, huh.NewSelect[constants.Status]().
			Title(h.Name).
			Options(
				huh.NewOption("completed", constants.StatusCompleted),
				huh.NewOption("failed", constants.StatusFailed),
				huh.NewOption("skipped", constants.StatusSkipped),
				huh.NewOption("not logged", constants.StatusNone),
			).
			Value(m.choices[i]))
	}

	m.form = huh.NewForm(huh.NewGroup(fields...).Title("Log today"))
}
