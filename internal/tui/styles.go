package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/constants"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	activePanelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Bold(true)

	inactivePanelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	paddingDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	todayStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

var tierStyles = map[constants.Tier]lipgloss.Style{
	constants.TierGold:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	constants.TierBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	constants.TierBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	constants.TierOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	constants.TierRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	constants.TierNone:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}
