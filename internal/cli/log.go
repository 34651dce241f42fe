package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/reconcile"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type LogCmd struct {
	Date   string `short:"d" help:"Day to log (YYYY-MM-DD, 'today', 'yesterday')." default:"today"`
	Habit  int    `short:"H" help:"Log a single habit by ID instead of the whole day."`
	Status string `short:"s" help:"Status for --habit (completed|failed|skipped|none)."`
	Notes  string `short:"n" help:"Notes attached to created logs."`
}

func (c *LogCmd) Run(ctx *Context) error {
	bg := context.Background()

	dateKey, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}

	habits, err := ctx.Client.ListHabits(bg)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		return fmt.Errorf("no habits to log, add one with 'lifetrack habit add'")
	}

	previous, err := existingLogs(bg, ctx, habits, dateKey)
	if err != nil {
		return err
	}

	desired := map[int]constants.Status{}
	if c.Habit != 0 {
		status := constants.Status(c.Status)
		if c.Status == "" || c.Status == "none" {
			status = constants.StatusNone
		} else if !constants.ValidLogStatus(status) {
			return fmt.Errorf("invalid status %q", c.Status)
		}
		desired[c.Habit] = status
	} else {
		desired, err = promptStatuses(habits, dateKey, previous)
		if err != nil {
			return err
		}
	}

	order := make([]int, 0, len(habits))
	for _, h := range habits {
		if _, ok := desired[h.ID]; ok {
			order = append(order, h.ID)
		}
	}

	result := reconcile.Day(bg, ctx.Client, dateKey, order, desired, previous, c.Notes)
	if result.Succeeded == 0 && result.Failed == 0 {
		fmt.Println("Nothing to change.")
		return nil
	}
	if result.Failed > 0 {
		fmt.Printf("Saved %d change(s), %d failed.\n", result.Succeeded, result.Failed)
		return nil
	}
	fmt.Printf("Saved %d change(s) for %s.\n", result.Succeeded, dateKey)

	q, _ := ctx.Quotes.Fetch(bg)
	fmt.Printf("\n“%s” — %s\n", q.Content, q.Author)
	return nil
}

// existingLogs finds the log already recorded for each habit on dateKey.
// The first log listed for the day wins when duplicates exist.
func existingLogs(ctx context.Context, appCtx *Context, habits []models.Habit, dateKey string) (map[int]reconcile.Previous, error) {
	previous := make(map[int]reconcile.Previous)
	for _, h := range habits {
		detail, err := appCtx.Client.GetHabitDetail(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		for _, log := range detail.RecentLogs {
			if utils.DateKey(log.CompletedAt.Time) == dateKey {
				previous[h.ID] = reconcile.Previous{
					LogID:  log.ID,
					Status: log.EffectiveStatus(),
				}
				break
			}
		}
	}
	return previous, nil
}

func promptStatuses(habits []models.Habit, dateKey string, previous map[int]reconcile.Previous) (map[int]constants.Status, error) {
	choices := make([]*constants.Status, len(habits))
	fields := make([]huh.Field, 0, len(habits))
	for i, h := range habits {
		current := constants.StatusNone
		if prev, ok := previous[h.ID]; ok {
			current = prev.Status
		}
		choices[i] = &current

		fields = append(fields, huh.NewSelect[constants.Status]().
			Title(h.Name).
			Options(
				huh.NewOption("completed", constants.StatusCompleted),
				huh.NewOption("failed", constants.StatusFailed),
				huh.NewOption("skipped", constants.StatusSkipped),
				huh.NewOption("not logged", constants.StatusNone),
			).
			Value(choices[i]))
	}

	form := huh.NewForm(huh.NewGroup(fields...).
		Title(fmt.Sprintf("Log for %s", displayDate(dateKey))))
	if err := form.Run(); err != nil {
		return nil, err
	}

	desired := make(map[int]constants.Status, len(habits))
	for i, h := range habits {
		desired[h.ID] = *choices[i]
	}
	return desired, nil
}

func displayDate(dateKey string) string {
	t, err := utils.ParseDateKey(dateKey)
	if err != nil {
		return dateKey
	}
	return t.Format("Mon, Jan 2 2006")
}
