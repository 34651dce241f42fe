package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/streak"
)

type StreakCmd struct {
	Habits string `short:"H" help:"Comma-separated habit IDs, defaults to all active habits."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	bg := context.Background()

	ids, err := parseHabitIDs(c.Habits)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		habits, err := ctx.listHabitsCached(bg)
		if err != nil {
			return err
		}
		for _, h := range habits {
			ids = append(ids, h.ID)
		}
	}
	if len(ids) == 0 {
		fmt.Println("No habits to track.")
		return nil
	}

	result, err := streak.Joint(bg, cachedSource{ctx}, ids, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Tracking %d habit(s) jointly:\n", len(ids))
	fmt.Printf("  Current streak: %d day(s)\n", result.Current)
	fmt.Printf("  Longest streak: %d day(s)\n", result.Longest)
	fmt.Printf("  Perfect days:   %d\n", result.Total)

	if result.Current == 0 && result.Total > 0 {
		fmt.Println("\nThe streak is broken. Log every habit today to start a new one.")
	}
	return nil
}
