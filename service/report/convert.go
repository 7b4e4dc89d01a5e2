package report

import (
	"math"

	"github.com/elC0mpa/aws-ri-doctor/model"
	"github.com/elC0mpa/aws-ri-doctor/service/coverage"
)

// ConvertAccountInfo converts model.AccountInfo to report.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertInstanceRows converts the grouped counters in first-seen order
func ConvertInstanceRows(snap coverage.Snapshot) []InstanceRow {
	rows := make([]InstanceRow, 0, snap.Len())
	for _, c := range snap.Rows() {
		rows = append(rows, InstanceRow{
			ProductDescription:   c.Workload,
			InstanceType:         c.Shape,
			RunningCount:         c.Running,
			ReservedActiveCount:  c.ReservedActive,
			ReservedExpiredCount: c.ReservedExpired,
		})
	}
	return rows
}

// ConvertFamilyRows converts the normalized counters. CoveragePercent is
// rounded to one decimal like the table output.
func ConvertFamilyRows(counters []coverage.NormalizedCounter) []FamilyRow {
	rows := make([]FamilyRow, 0, len(counters))
	for _, n := range counters {
		rows = append(rows, FamilyRow{
			ProductDescription:       n.Workload,
			InstanceFamily:           n.Family,
			RunningNormalizedUnits:   n.Running,
			ReservedActiveNormalized: n.ReservedActive,
			NormalizedUnitsGap:       n.CoverageGap(),
			CoveragePercent:          math.Round(n.CoverageRatio()*1000) / 10,
		})
	}
	return rows
}

// ConvertCoverageSummary converts model.CoverageSummary
func ConvertCoverageSummary(summary *model.CoverageSummary) *CostExplorerCoverage {
	if summary == nil {
		return nil
	}
	return &CostExplorerCoverage{
		StartDate:         summary.Start,
		EndDate:           summary.End,
		CoveragePercent:   summary.CoveragePercent,
		ReservedHours:     summary.ReservedHours,
		OnDemandHours:     summary.OnDemandHours,
		TotalRunningHours: summary.TotalRunningHours,
	}
}

// ConvertCoverage builds the full report. A failure to derive the normalized
// view is reported in FamiliesError; the instance rows are always present.
func ConvertCoverage(account *model.AccountInfo, region string, snap coverage.Snapshot, summary *model.CoverageSummary, skipped int) *Coverage {
	out := &Coverage{
		Account:        ConvertAccountInfo(account),
		Region:         region,
		Instances:      ConvertInstanceRows(snap),
		SkippedRecords: skipped,
		CostExplorer:   ConvertCoverageSummary(summary),
	}

	counters, err := snap.Normalized()
	if err != nil {
		out.FamiliesError = err.Error()
		return out
	}
	out.Families = ConvertFamilyRows(counters)
	return out
}
