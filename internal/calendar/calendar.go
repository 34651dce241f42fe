// Package calendar derives the month view: per-day status sets over the
// visible habit subset, completion percentages, and heat-tier
// classification. It is a pure read; every navigation or visibility
// change re-derives the whole structure.
package calendar

import (
	"context"
	"sync"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/session"
	"github.com/julianstephens/lifetrack/internal/utils"
)

// LogSource fetches a habit's detail (including its recent logs). The API
// client satisfies this.
type LogSource interface {
	GetHabitDetail(ctx context.Context, habitID int) (models.HabitDetail, error)
}

// Badge is one habit's marker on a day cell. Status none renders as an
// outline: tracked but not yet logged, which is distinct from failed or
// skipped.
type Badge struct {
	HabitID int
	Label   string
	Status  constants.Status
}

// Day is one cell of the 42-cell grid. Padding cells from adjacent months
// carry only the day number.
type Day struct {
	Day            int
	CurrentMonth   bool
	Date           string // YYYY-MM-DD, empty on padding cells
	Today          bool
	Statuses       map[int]constants.Status
	CompletedCount int
	FailedCount    int
	Percentage     float64
	Tier           constants.Tier
	Badges         []Badge
}

// Month is the derived month view.
type Month struct {
	Year         int
	Month        time.Month
	VisibleCount int
	Days         []Day
}

// Classify maps a completion percentage onto a heat tier. Thresholds are
// checked highest first; the first match wins.
func Classify(percentage float64) constants.Tier {
	switch {
	case percentage >= 100:
		return constants.TierGold
	case percentage >= 75:
		return constants.TierBrightGreen
	case percentage >= 50:
		return constants.TierBlue
	case percentage >= 25:
		return constants.TierOrange
	case percentage > 0:
		return constants.TierRed
	default:
		return constants.TierNone
	}
}

// fetchDetails loads the detail of every habit concurrently. Each
// goroutine writes only its own slice index, so completion order cannot
// corrupt results. The first error wins; siblings still finish.
func fetchDetails(ctx context.Context, src LogSource, habits []models.Habit) ([]models.HabitDetail, error) {
	details := make([]models.HabitDetail, len(habits))
	errs := make([]error, len(habits))

	var wg sync.WaitGroup
	for i, h := range habits {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			details[i], errs[i] = src.GetHabitDetail(ctx, id)
		}(i, h.ID)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return details, nil
}

// indexLogs buckets logs by date key and habit id, keeping only logs whose
// completion date falls inside the target month. When a habit has several
// logs on one day the first one listed wins, matching the reconciler's
// notion of "the previous log".
func indexLogs(details []models.HabitDetail, year int, month time.Month) map[string]map[int]constants.Status {
	byDate := make(map[string]map[int]constants.Status)
	for _, d := range details {
		for _, log := range d.RecentLogs {
			at := log.CompletedAt.Time
			if at.Year() != year || at.Month() != month {
				continue
			}
			key := utils.DateKey(at)
			if byDate[key] == nil {
				byDate[key] = make(map[int]constants.Status)
			}
			if _, seen := byDate[key][d.ID]; !seen {
				byDate[key][d.ID] = log.EffectiveStatus()
			}
		}
	}
	return byDate
}

// BuildMonth derives the month view for the session's current month over
// its visible habits.
func BuildMonth(ctx context.Context, src LogSource, state *session.State, now time.Time) (Month, error) {
	visible := state.VisibleHabits()

	details, err := fetchDetails(ctx, src, visible)
	if err != nil {
		return Month{}, err
	}
	byDate := indexLogs(details, state.Year, state.Month)

	logger.Debug("building calendar",
		"year", state.Year, "month", int(state.Month), "visible", len(visible))

	todayKey := utils.DateKey(now)
	grid := utils.MonthGrid(state.Year, state.Month)

	view := Month{
		Year:         state.Year,
		Month:        state.Month,
		VisibleCount: len(visible),
		Days:         make([]Day, 0, len(grid)),
	}

	for _, cell := range grid {
		day := Day{Day: cell.Day, CurrentMonth: cell.CurrentMonth, Tier: constants.TierNone}
		if !cell.CurrentMonth {
			view.Days = append(view.Days, day)
			continue
		}

		date := time.Date(state.Year, state.Month, cell.Day, 0, 0, 0, 0, time.Local)
		day.Date = utils.DateKey(date)
		day.Today = day.Date == todayKey
		day.Statuses = byDate[day.Date]

		// Logged badges first, then outlines for tracked-but-unlogged habits.
		for _, h := range visible {
			status, logged := day.Statuses[h.ID]
			if !logged {
				continue
			}
			day.Badges = append(day.Badges, Badge{HabitID: h.ID, Label: h.Badge(), Status: status})
			if status == constants.StatusCompleted {
				day.CompletedCount++
			} else if status == constants.StatusFailed {
				day.FailedCount++
			}
		}
		for _, h := range visible {
			if _, logged := day.Statuses[h.ID]; !logged {
				day.Badges = append(day.Badges, Badge{HabitID: h.ID, Label: h.Badge(), Status: constants.StatusNone})
			}
		}

		if len(visible) > 0 {
			day.Percentage = float64(day.CompletedCount) / float64(len(visible)) * 100
		}
		day.Tier = Classify(day.Percentage)
		view.Days = append(view.Days, day)
	}

	return view, nil
}
