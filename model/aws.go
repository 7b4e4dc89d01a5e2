package model

import "fmt"

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}

// CoverageSummary is the provider-side reservation coverage for a period,
// as reported by Cost Explorer.
type CoverageSummary struct {
	Start             string
	End               string
	CoveragePercent   float64
	ReservedHours     float64
	OnDemandHours     float64
	TotalRunningHours float64
}

// FetchError reports a failed call to a remote data source.
type FetchError struct {
	Source string
	Query  string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Source, e.Query, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
