package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/validation"
)

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Acronym     string `short:"a" help:"2-3 character calendar badge."`
	Description string `short:"d" help:"Longer description."`
	Frequency   string `short:"f" help:"Frequency (daily|weekly|custom)." default:"daily"`
	Target      int    `short:"t" help:"Target completions per period." default:"1"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit := models.NewHabit{
		Name:        c.Name,
		Acronym:     strings.ToUpper(c.Acronym),
		Description: c.Description,
		Frequency:   c.Frequency,
		TargetCount: c.Target,
	}
	if err := validation.Habit(habit).Err(); err != nil {
		return err
	}

	created, err := ctx.Client.CreateHabit(context.Background(), habit)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s [%s] (ID: %d)\n", created.Name, created.Badge(), created.ID)
	return nil
}

type HabitListCmd struct {
	Streaks bool `short:"s" help:"Fetch per-habit streaks (one request per habit)."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	bg := context.Background()
	habits, err := ctx.listHabitsCached(bg)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'lifetrack habit add'.")
		return nil
	}

	for _, h := range habits {
		line := fmt.Sprintf("%3d  [%-3s] %-25s %s", h.ID, h.Badge(), h.Name, h.Frequency)
		if c.Streaks {
			detail, err := ctx.Client.GetHabitDetail(bg, h.ID)
			if err != nil {
				return err
			}
			line += fmt.Sprintf("  current %d, longest %d",
				detail.Streak.CurrentStreak, detail.Streak.LongestStreak)
		}
		fmt.Println(line)
	}
	return nil
}

type HabitShowCmd struct {
	ID int `arg:"" help:"Habit ID."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	detail, err := ctx.Client.GetHabitDetail(context.Background(), c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s [%s]\n", detail.Name, detail.Badge())
	if detail.Description != "" {
		fmt.Println(detail.Description)
	}
	fmt.Printf("Frequency: %s (target %d)\n", detail.Frequency, detail.TargetCount)
	fmt.Printf("Streak: current %d, longest %d\n",
		detail.Streak.CurrentStreak, detail.Streak.LongestStreak)
	fmt.Printf("Total completions: %d\n", detail.TotalCompletions)

	if len(detail.RecentLogs) > 0 {
		fmt.Println("\nRecent logs:")
		for _, log := range detail.RecentLogs {
			fmt.Printf("  %s %s %s\n",
				formatStatus(log.Status),
				log.CompletedAt.Time.Format("2006-01-02"),
				log.Notes)
		}
	}
	return nil
}

type HabitEditCmd struct {
	ID          int     `arg:"" help:"Habit ID."`
	Name        *string `help:"New name."`
	Acronym     *string `help:"New calendar badge."`
	Description *string `help:"New description."`
	Frequency   *string `help:"New frequency (daily|weekly|custom)."`
	Target      *int    `help:"New target count."`
	Active      *bool   `help:"Activate or deactivate the habit."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	fields := map[string]any{}
	if c.Name != nil {
		fields["name"] = *c.Name
	}
	if c.Acronym != nil {
		fields["acronym"] = strings.ToUpper(*c.Acronym)
	}
	if c.Description != nil {
		fields["description"] = *c.Description
	}
	if c.Frequency != nil {
		fields["frequency"] = *c.Frequency
	}
	if c.Target != nil {
		fields["target_count"] = *c.Target
	}
	if c.Active != nil {
		fields["is_active"] = *c.Active
	}
	if len(fields) == 0 {
		return fmt.Errorf("nothing to update")
	}

	probe := models.NewHabit{Name: "probe"}
	if c.Name != nil {
		probe.Name = *c.Name
	}
	if c.Acronym != nil {
		probe.Acronym = strings.ToUpper(*c.Acronym)
	}
	if c.Frequency != nil {
		probe.Frequency = *c.Frequency
	}
	if c.Target != nil {
		probe.TargetCount = *c.Target
	}
	if err := validation.Habit(probe).Err(); err != nil {
		return err
	}

	updated, err := ctx.Client.UpdateHabit(context.Background(), c.ID, fields)
	if err != nil {
		return err
	}
	fmt.Printf("Updated habit: %s (ID: %d)\n", updated.Name, updated.ID)
	return nil
}

type HabitDeleteCmd struct {
	ID int `arg:"" help:"Habit ID."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Client.DeleteHabit(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit %d and its logs.\n", c.ID)
	return nil
}
