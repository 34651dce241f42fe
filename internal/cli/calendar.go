package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/calendar"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/session"
)

var tierStyles = map[constants.Tier]lipgloss.Style{
	constants.TierGold:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	constants.TierBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	constants.TierBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	constants.TierOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	constants.TierRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	constants.TierNone:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	paddingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	todayStyle   = lipgloss.NewStyle().Reverse(true)
)

type CalendarCmd struct {
	Month  string `short:"m" help:"Month to show (YYYY-MM), defaults to current."`
	Habits string `short:"H" help:"Comma-separated habit IDs to include, defaults to all."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	bg := context.Background()
	now := time.Now()

	state := session.New(now)
	if c.Month != "" {
		t, err := time.ParseInLocation("2006-01", c.Month, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", c.Month)
		}
		state.Year, state.Month = t.Year(), t.Month()
	}

	habits, err := ctx.listHabitsCached(bg)
	if err != nil {
		return err
	}
	state.SetHabits(habits)

	ids, err := parseHabitIDs(c.Habits)
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		state.SetVisible(ids)
	}

	month, err := calendar.BuildMonth(bg, cachedSource{ctx}, state, now)
	if err != nil {
		return err
	}

	fmt.Println(renderMonth(month))
	return nil
}

// renderMonth lays the 42-cell grid out as 6 rows of day numbers, each
// tinted by its completion tier.
func renderMonth(m calendar.Month) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", m.Month, m.Year)
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n Su  Mo  Tu  We  Th  Fr  Sa\n")

	for i, day := range m.Days {
		cell := fmt.Sprintf("%3d ", day.Day)
		switch {
		case !day.CurrentMonth:
			cell = paddingStyle.Render(cell)
		case day.Today:
			cell = todayStyle.Render(cell)
		default:
			cell = tierStyles[day.Tier].Render(cell)
		}
		b.WriteString(cell)
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(renderLegend())
	return b.String()
}

func renderLegend() string {
	parts := []string{
		tierStyles[constants.TierGold].Render("■ 100%"),
		tierStyles[constants.TierBrightGreen].Render("■ 75%+"),
		tierStyles[constants.TierBlue].Render("■ 50%+"),
		tierStyles[constants.TierOrange].Render("■ 25%+"),
		tierStyles[constants.TierRed].Render("■ <25%"),
	}
	return strings.Join(parts, "  ")
}
