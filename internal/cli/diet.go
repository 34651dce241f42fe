package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/validation"
)

type DietAddCmd struct {
	Food     string   `arg:"" help:"Food item name."`
	Meal     string   `short:"m" help:"Meal type (breakfast|lunch|dinner|snack)." default:"snack"`
	Date     string   `short:"d" help:"Day consumed (YYYY-MM-DD, 'today', 'yesterday')." default:"today"`
	Calories *int     `short:"c" help:"Calories (kcal)."`
	Protein  *float64 `help:"Protein (g)."`
	Carbs    *float64 `help:"Carbohydrates (g)."`
	Fats     *float64 `help:"Fats (g)."`
	Quantity *float64 `short:"q" help:"Quantity consumed."`
	Unit     string   `short:"u" help:"Quantity unit (g, ml, serving)."`
	Notes    string   `short:"n" help:"Notes."`
}

func (c *DietAddCmd) Run(ctx *Context) error {
	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}

	entry := models.NewDietEntry{
		FoodItem: c.Food,
		MealType: constants.MealType(c.Meal),
		Date:     date,
		Calories: c.Calories,
		Protein:  c.Protein,
		Carbs:    c.Carbs,
		Fats:     c.Fats,
		Quantity: c.Quantity,
		Unit:     c.Unit,
		Notes:    c.Notes,
	}
	if err := validation.DietEntry(entry).Err(); err != nil {
		return err
	}

	created, err := ctx.Client.CreateDietEntry(context.Background(), entry)
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s (%s, ID: %d)\n", created.FoodItem, created.MealType, created.ID)
	return nil
}

type DietListCmd struct {
	Date string `short:"d" help:"Day to list (YYYY-MM-DD, 'today', 'yesterday')." default:"today"`
	Meal string `short:"m" help:"Filter by meal type."`
}

func (c *DietListCmd) Run(ctx *Context) error {
	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}

	entries, err := ctx.Client.ListDietEntries(context.Background(), date, c.Meal)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("No diet entries for %s.\n", displayDate(date))
		return nil
	}

	for _, e := range entries {
		cal := "-"
		if e.Calories != nil {
			cal = fmt.Sprintf("%d kcal", *e.Calories)
		}
		fmt.Printf("%3d  %-9s %-25s %s\n", e.ID, e.MealType, e.FoodItem, cal)
	}
	return nil
}

type DietDeleteCmd struct {
	ID int `arg:"" help:"Diet entry ID."`
}

func (c *DietDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Client.DeleteDietEntry(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted diet entry %d.\n", c.ID)
	return nil
}

type DietSummaryCmd struct {
	Date string `short:"d" help:"Day to summarize (YYYY-MM-DD, 'today', 'yesterday')." default:"today"`
}

func (c *DietSummaryCmd) Run(ctx *Context) error {
	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}

	summary, err := ctx.Client.GetDietSummary(context.Background(), date)
	if err != nil {
		return err
	}

	fmt.Printf("Diet summary for %s (%d entries)\n", displayDate(date), summary.TotalEntries)
	fmt.Printf("  Calories: %d / %d kcal (%.1f%%)\n",
		summary.TotalCalories, summary.CalorieGoal, summary.CaloriePercentage)
	fmt.Printf("  Protein:  %.1f g\n", summary.TotalProtein)
	fmt.Printf("  Carbs:    %.1f g\n", summary.TotalCarbs)
	fmt.Printf("  Fats:     %.1f g\n", summary.TotalFats)
	if summary.TotalFiber > 0 || summary.TotalSugar > 0 {
		fmt.Printf("  Fiber:    %.1f g   Sugar: %.1f g\n", summary.TotalFiber, summary.TotalSugar)
	}
	return nil
}

type DietLookupCmd struct {
	Name string `arg:"" help:"Food name to search for."`
}

func (c *DietLookupCmd) Run(ctx *Context) error {
	lookup, err := ctx.Client.LookupFood(context.Background(), c.Name)
	if err != nil {
		return err
	}
	if !lookup.Success || len(lookup.Results) == 0 {
		if lookup.Error != "" {
			return fmt.Errorf("lookup failed: %s", lookup.Error)
		}
		fmt.Printf("No nutrition data found for %q.\n", c.Name)
		return nil
	}

	for _, r := range lookup.Results {
		fmt.Printf("%-30s %.0f kcal  P %.1f  C %.1f  F %.1f  (per %.0f %s)\n",
			r.FoodName, r.Calories, r.Protein, r.Carbs, r.Fats, r.ServingSize, r.ServingType)
	}
	return nil
}

type DietGoalCmd struct {
	Goal int `arg:"" optional:"" help:"New daily calorie goal (500-10000). Omit to show the current goal."`
}

func (c *DietGoalCmd) Run(ctx *Context) error {
	bg := context.Background()

	if c.Goal == 0 {
		profile, err := ctx.Client.GetProfile(bg)
		if err != nil {
			return err
		}
		fmt.Printf("Daily calorie goal: %d kcal\n", profile.CalorieGoal)
		return nil
	}

	if err := validation.CalorieGoal(c.Goal).Err(); err != nil {
		return err
	}
	if err := ctx.Client.SetCalorieGoal(bg, c.Goal); err != nil {
		return err
	}
	fmt.Printf("Calorie goal set to %d kcal.\n", c.Goal)
	return nil
}
