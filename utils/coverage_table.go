package utils

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/aws-ri-doctor/model"
	"github.com/elC0mpa/aws-ri-doctor/service/coverage"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderCoverageTable renders one view of the snapshot as a console table.
func RenderCoverageTable(view coverage.View, snap coverage.Snapshot, accountID, region string) (string, error) {
	rows, err := view.Rows(snap)
	if err != nil {
		return "", err
	}

	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("%s | Account: %s | Region: %s", view.Title(), accountID, region))
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, 0, len(view.Header()))
	for _, h := range view.Header() {
		header = append(header, h)
	}
	tw.AppendHeader(header)

	_, normalized := view.(coverage.NormalizedView)
	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			row[i] = cell
		}
		if normalized {
			colorizeGap(row)
		}
		tw.AppendRow(row)
	}

	configs := make([]table.ColumnConfig, 0, len(header))
	for i := 3; i <= len(header); i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	tw.SetColumnConfigs(configs)

	if len(rows) == 0 {
		tw.AppendFooter(table.Row{"no data"})
	}

	return tw.Render(), nil
}

// colorizeGap marks families running more capacity than they reserve.
func colorizeGap(row table.Row) {
	gap, ok := row[4].(string)
	if !ok {
		return
	}
	if strings.HasPrefix(gap, "-") || gap == "0" {
		row[4] = text.FgGreen.Sprint(gap)
		return
	}
	row[4] = text.FgRed.Sprint(gap)
}

// RenderCostExplorerLine summarizes the Cost Explorer figures.
func RenderCostExplorerLine(summary *model.CoverageSummary) string {
	return fmt.Sprintf(" Cost Explorer RI coverage %s..%s: %s (%.0f reserved / %.0f running hours)",
		summary.Start,
		summary.End,
		text.FgHiYellow.Sprint(coverage.FormatPercent(summary.CoveragePercent/100)),
		summary.ReservedHours,
		summary.TotalRunningHours,
	)
}
