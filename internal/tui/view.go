package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.panel == PanelLog && m.form != nil {
		return m.form.View()
	}

	var content string
	if m.panel == PanelHabits {
		content = m.viewHabits()
	} else {
		content = m.viewCalendar()
	}

	sections := []string{
		m.viewHeader(),
		content,
	}
	if m.status != "" {
		sections = append(sections, dimStyle.Render(m.status))
	}
	if m.err != nil {
		sections = append(sections, errorStyle.Render("Error: "+m.err.Error()))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	title := titleStyle.Render(fmt.Sprintf("%s %d", m.month.Month, m.month.Year))

	panels := []string{}
	for i, name := range []string{"Calendar", "Habits"} {
		if m.panel == Panel(i) {
			panels = append(panels, activePanelStyle.Render(name))
		} else {
			panels = append(panels, inactivePanelStyle.Render(name))
		}
	}

	streakLine := streakStyle.Render(fmt.Sprintf("🔥 %d", m.streak.Current)) +
		dimStyle.Render(fmt.Sprintf("  best %d · perfect days %d", m.streak.Longest, m.streak.Total))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Join(panels, "")),
		streakLine,
	)
}

func (m Model) viewCalendar() string {
	if m.loading {
		return dimStyle.Render("Loading…")
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(" Su   Mo   Tu   We   Th   Fr   Sa"))
	b.WriteString("\n")

	for i, day := range m.month.Days {
		cell := fmt.Sprintf("%3d", day.Day)
		switch {
		case !day.CurrentMonth:
			cell = paddingDayStyle.Render(cell)
		case day.Today:
			cell = todayStyle.Render(cell)
		default:
			cell = tierStyles[day.Tier].Render(cell)
		}
		b.WriteString(cell)
		b.WriteString("  ")
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.viewSelectedDay())
	return b.String()
}

// viewSelectedDay shows today's badges when the visible month contains
// today.
func (m Model) viewSelectedDay() string {
	for _, day := range m.month.Days {
		if !day.Today {
			continue
		}
		if len(day.Badges) == 0 {
			return dimStyle.Render("Nothing logged today.")
		}
		parts := make([]string, 0, len(day.Badges))
		for _, badge := range day.Badges {
			style, ok := badgeStyles[badge.Status]
			if !ok {
				style = dimStyle
			}
			parts = append(parts, style.Render(badge.Label))
		}
		return fmt.Sprintf("Today (%d%%): %s", int(day.Percentage), strings.Join(parts, " "))
	}
	return ""
}

var badgeStyles = map[constants.Status]lipgloss.Style{
	constants.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	constants.StatusFailed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	constants.StatusSkipped:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	constants.StatusNone:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

func (m Model) viewHabits() string {
	if len(m.state.Habits) == 0 {
		return dimStyle.Render("No habits yet.")
	}

	var b strings.Builder
	for i, h := range m.state.Habits {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := "[ ]"
		if m.state.IsVisible(h.ID) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %-3s %s", cursor, mark, h.Badge(), h.Name)
		if i == m.cursor {
			line = titleStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
