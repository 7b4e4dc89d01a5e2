package orchestrator

import (
	"context"
	"io"

	"github.com/elC0mpa/aws-ri-doctor/model"
	"github.com/elC0mpa/aws-ri-doctor/service"
	"github.com/elC0mpa/aws-ri-doctor/service/coverage"
)

type orchestratorService struct {
	identityService  service.IdentityService
	inventoryService service.InventoryService
	coverageService  service.CoverageService
	out              io.Writer
	runTUI           func(ctx context.Context, r *Report, initial coverage.View) error
}

type OrchestratorService interface {
	Collect(ctx context.Context, flags model.Flags) (*Report, error)
	Orchestrate(ctx context.Context, flags model.Flags) error
}

// Report is everything fetched and aggregated for one run.
type Report struct {
	Account *model.AccountInfo
	Region  string
	Table   *coverage.Table
	Summary *model.CoverageSummary
	Skipped int
}
