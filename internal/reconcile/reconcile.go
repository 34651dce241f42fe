// Package reconcile edits a day's habit logs: it diffs the desired
// per-habit statuses against the previously known logs and issues the
// minimal create/delete operations. The backend has no log-update
// endpoint, so a status change is a delete followed by a create.
package reconcile

import (
	"context"
	"errors"
	"sync"

	"github.com/julianstephens/lifetrack/internal/api"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
)

// Store is the write surface of the log store client.
type Store interface {
	CreateLog(ctx context.Context, habitID int, log models.NewLog) (models.HabitLog, error)
	DeleteLog(ctx context.Context, logID int) error
}

// Previous is the already-known log for a (habit, day) pair. When the
// backend holds several logs for the pair, the first match stands in for
// all of them; the write path converges the pair to a single log.
type Previous struct {
	LogID  int
	Status constants.Status
}

// OpKind distinguishes planned operations.
type OpKind string

const (
	OpDelete OpKind = "delete"
	OpCreate OpKind = "create"
)

// Op is one planned backend write.
type Op struct {
	Kind    OpKind
	HabitID int
	LogID   int              // delete only
	Status  constants.Status // create only
}

// Result aggregates the outcome. Per-habit failures are independent and
// non-fatal to siblings; callers get counts, not a per-habit breakdown.
type Result struct {
	Succeeded int
	Failed    int
}

// Plan computes the minimal operations to move one habit from previous to
// desired. desired none with no previous, or desired equal to previous,
// plans nothing.
func Plan(habitID int, desired constants.Status, previous *Previous) []Op {
	if desired == constants.StatusNone || desired == "" {
		if previous == nil {
			return nil
		}
		return []Op{{Kind: OpDelete, HabitID: habitID, LogID: previous.LogID}}
	}

	if previous != nil {
		if previous.Status == desired {
			return nil
		}
		return []Op{
			{Kind: OpDelete, HabitID: habitID, LogID: previous.LogID},
			{Kind: OpCreate, HabitID: habitID, Status: desired},
		}
	}
	return []Op{{Kind: OpCreate, HabitID: habitID, Status: desired}}
}

// PlanDay plans every habit in desired against previous. Iteration
// follows habitOrder so output is deterministic.
func PlanDay(habitOrder []int, desired map[int]constants.Status, previous map[int]Previous) [][]Op {
	var plans [][]Op
	for _, habitID := range habitOrder {
		var prev *Previous
		if p, ok := previous[habitID]; ok {
			prev = &p
		}
		ops := Plan(habitID, desired[habitID], prev)
		if len(ops) > 0 {
			plans = append(plans, ops)
		}
	}
	return plans
}

// noonTimestamp pins a date key to local noon so the backend derives the
// same calendar day regardless of timezone offset.
func noonTimestamp(dateKey string) string {
	return dateKey + "T12:00:00"
}

// applyHabit runs one habit's operations strictly in order: the create
// must not race ahead of the delete. A delete that fails because the log
// is already gone does not block the create.
func applyHabit(ctx context.Context, store Store, dateKey, notes string, ops []Op) (succeeded, failed int) {
	for _, op := range ops {
		var err error
		switch op.Kind {
		case OpDelete:
			err = store.DeleteLog(ctx, op.LogID)
			var notFound *api.NotFoundError
			if errors.As(err, &notFound) {
				// Already gone: the delete is effectively done but no
				// backend write happened, so it counts as neither.
				continue
			}
		case OpCreate:
			_, err = store.CreateLog(ctx, op.HabitID, models.NewLog{
				Status:      op.Status,
				Notes:       notes,
				CompletedAt: noonTimestamp(dateKey),
			})
		}
		if err != nil {
			logger.Warn("day-log operation failed",
				"habit", op.HabitID, "op", string(op.Kind), "date", dateKey, "error", err)
			failed++
			if op.Kind == OpDelete {
				// Creating on top of a live duplicate would make things
				// worse; give up on this habit.
				return succeeded, failed
			}
			continue
		}
		succeeded++
	}
	return succeeded, failed
}

// Day reconciles one date: it plans the per-habit diffs and applies them.
// Habits are independent and run concurrently; within a habit the delete
// and create stay sequential. The returned counts cover attempted backend
// operations, so an already-correct day reports zero of both.
func Day(ctx context.Context, store Store, dateKey string, habitOrder []int, desired map[int]constants.Status, previous map[int]Previous, notes string) Result {
	plans := PlanDay(habitOrder, desired, previous)

	var (
		mu     sync.Mutex
		result Result
		wg     sync.WaitGroup
	)
	for _, ops := range plans {
		wg.Add(1)
		go func(ops []Op) {
			defer wg.Done()
			ok, bad := applyHabit(ctx, store, dateKey, notes, ops)
			mu.Lock()
			result.Succeeded += ok
			result.Failed += bad
			mu.Unlock()
		}(ops)
	}
	wg.Wait()

	logger.Info("reconciled day logs",
		"date", dateKey, "succeeded", result.Succeeded, "failed", result.Failed)
	return result
}
