package service

import (
	"context"

	"github.com/elC0mpa/aws-ri-doctor/model"
)

// IdentityService provides cloud account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// InventoryService supplies the raw instance and reservation records
type InventoryService interface {
	GetInstances(ctx context.Context) ([]model.RawInstance, error)
	GetReservedInstances(ctx context.Context) ([]model.RawReservation, error)
}

// CoverageService provides the provider-side reservation coverage figures
type CoverageService interface {
	GetReservationCoverage(ctx context.Context) (*model.CoverageSummary, error)
}
