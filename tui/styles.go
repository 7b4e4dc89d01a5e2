package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	tabBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)

	tabActive = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("0"))

	tabInitial = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	tabRest    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	tableBorder = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#F4D060"))

	titleStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(lipgloss.Color("9")).
		Background(lipgloss.Color("4")).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Reverse(true)
	return s
}
