// Package streak computes the strict joint streak over a set of habits:
// a day counts only when every tracked habit has a completed log on it.
// With a single tracked habit this degenerates to that habit's ordinary
// streak.
package streak

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/utils"
)

// LogSource fetches a habit's detail (including its recent logs).
type LogSource interface {
	GetHabitDetail(ctx context.Context, habitID int) (models.HabitDetail, error)
}

// Result is the derived streak summary. Never persisted; recomputed on
// demand.
type Result struct {
	Current int
	Longest int
	Total   int
}

// completionDates builds the map from date key to the set of habit ids
// completed that day. Failed and skipped logs are excluded entirely; a
// log without a status counts as completed.
func completionDates(details []models.HabitDetail) map[string]map[int]bool {
	byDate := make(map[string]map[int]bool)
	for _, d := range details {
		for _, log := range d.RecentLogs {
			if log.EffectiveStatus() != constants.StatusCompleted {
				continue
			}
			key := utils.DateKey(log.CompletedAt.Time)
			if byDate[key] == nil {
				byDate[key] = make(map[int]bool)
			}
			byDate[key][d.ID] = true
		}
	}
	return byDate
}

// qualifyingDates filters to dates on which every tracked habit completed,
// sorted most recent first. Date keys sort lexicographically in calendar
// order.
func qualifyingDates(byDate map[string]map[int]bool, trackedIDs []int) []string {
	var dates []string
	for key, completed := range byDate {
		all := true
		for _, id := range trackedIDs {
			if !completed[id] {
				all = false
				break
			}
		}
		if all {
			dates = append(dates, key)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// Compute derives the joint streak from already-fetched habit details.
// now anchors "today" for the current-streak liveness check.
func Compute(trackedIDs []int, details []models.HabitDetail, now time.Time) Result {
	if len(trackedIDs) == 0 {
		return Result{}
	}

	dates := qualifyingDates(completionDates(details), trackedIDs)
	if len(dates) == 0 {
		return Result{}
	}

	result := Result{Total: len(dates)}

	// The current streak is alive only if the latest qualifying day is
	// today or yesterday; a full day's gap breaks it.
	today := utils.DateKey(now)
	yesterday := utils.DateKey(now.AddDate(0, 0, -1))
	if dates[0] == today || dates[0] == yesterday {
		result.Current = 1
		prev, _ := utils.ParseDateKey(dates[0])
		for _, key := range dates[1:] {
			day, err := utils.ParseDateKey(key)
			if err != nil {
				break
			}
			if utils.DaysBetween(day, prev) != 1 {
				break
			}
			result.Current++
			prev = day
		}
	}

	// Longest run of calendar-adjacent qualifying dates.
	run := 1
	result.Longest = 1
	prev, _ := utils.ParseDateKey(dates[0])
	for _, key := range dates[1:] {
		day, err := utils.ParseDateKey(key)
		if err != nil {
			continue
		}
		if utils.DaysBetween(day, prev) == 1 {
			run++
			if run > result.Longest {
				result.Longest = run
			}
		} else {
			run = 1
		}
		prev = day
	}

	return result
}

// Joint fetches every tracked habit's detail concurrently and computes
// the strict joint streak. Sibling fetches are independent; the first
// error wins after all complete.
func Joint(ctx context.Context, src LogSource, trackedIDs []int, now time.Time) (Result, error) {
	if len(trackedIDs) == 0 {
		return Result{}, nil
	}

	details := make([]models.HabitDetail, len(trackedIDs))
	errs := make([]error, len(trackedIDs))

	var wg sync.WaitGroup
	for i, id := range trackedIDs {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			details[i], errs[i] = src.GetHabitDetail(ctx, id)
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Result{}, err
		}
	}
	return Compute(trackedIDs, details, now), nil
}
