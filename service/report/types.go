package report

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// InstanceRow is one (platform, instance type) row of the instance view
type InstanceRow struct {
	ProductDescription   string `json:"product_description"`
	InstanceType         string `json:"instance_type"`
	RunningCount         int64  `json:"running_count"`
	ReservedActiveCount  int64  `json:"reserved_active_count"`
	ReservedExpiredCount int64  `json:"reserved_expired_count"`
}

// FamilyRow is one (platform, instance family) row of the normalized view
type FamilyRow struct {
	ProductDescription       string  `json:"product_description"`
	InstanceFamily           string  `json:"instance_family"`
	RunningNormalizedUnits   float64 `json:"running_normalized_units"`
	ReservedActiveNormalized float64 `json:"reserved_active_normalized_units"`
	NormalizedUnitsGap       float64 `json:"normalized_units_gap"`
	CoveragePercent          float64 `json:"coverage_percent"`
}

// CostExplorerCoverage is the coverage reported by Cost Explorer
type CostExplorerCoverage struct {
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	CoveragePercent   float64 `json:"coverage_percent"`
	ReservedHours     float64 `json:"reserved_hours"`
	OnDemandHours     float64 `json:"on_demand_hours"`
	TotalRunningHours float64 `json:"total_running_hours"`
}

// Coverage is the full machine readable report
type Coverage struct {
	Account        *AccountInfo          `json:"account,omitempty"`
	Region         string                `json:"region"`
	Instances      []InstanceRow         `json:"instances"`
	Families       []FamilyRow           `json:"families,omitempty"`
	FamiliesError  string                `json:"families_error,omitempty"`
	SkippedRecords int                   `json:"skipped_records"`
	CostExplorer   *CostExplorerCoverage `json:"cost_explorer,omitempty"`
}
