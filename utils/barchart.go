package utils

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-ri-doctor/service/coverage"
)

const (
	ColorRunning  = "#f46d43"
	ColorReserved = "#66c2a5"

	chartHeight = 16
	barWidth    = 14
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// RenderCoverageChart draws running against reserved normalized units for
// every family, one pair of stacked values per bar.
func RenderCoverageChart(counters []coverage.NormalizedCounter) string {
	if len(counters) == 0 {
		return ""
	}

	bc := barchart.New(len(counters)*(barWidth+1), chartHeight,
		barchart.WithBarWidth(barWidth),
		barchart.WithBarGap(1),
	)

	runningStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRunning))
	reservedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorReserved))

	for _, n := range counters {
		bc.Push(barchart.BarData{
			Label: getBarLabel(n),
			Values: []barchart.BarValue{
				{Name: "running", Value: n.Running, Style: runningStyle},
				{Name: "reserved", Value: n.ReservedActive, Style: reservedStyle},
			},
		})
	}

	bc.Draw()

	legend := fmt.Sprintf("%s running  %s reserved",
		runningStyle.Render("█"),
		reservedStyle.Render("█"),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		defaultStyle.Render(bc.View()),
		legend,
	)
}

func getBarLabel(n coverage.NormalizedCounter) string {
	return fmt.Sprintf("%s %s", n.Family, coverage.FormatPercent(n.CoverageRatio()))
}
