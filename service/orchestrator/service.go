package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elC0mpa/aws-ri-doctor/model"
	"github.com/elC0mpa/aws-ri-doctor/service"
	"github.com/elC0mpa/aws-ri-doctor/service/coverage"
	"github.com/elC0mpa/aws-ri-doctor/service/report"
	"github.com/elC0mpa/aws-ri-doctor/tui"
	"github.com/elC0mpa/aws-ri-doctor/utils"
	"github.com/rs/zerolog"
)

// NewService wires the collaborators. coverageService may be nil when Cost
// Explorer is not used.
func NewService(identityService service.IdentityService, inventoryService service.InventoryService, coverageService service.CoverageService, out io.Writer) *orchestratorService {
	return &orchestratorService{
		identityService:  identityService,
		inventoryService: inventoryService,
		coverageService:  coverageService,
		out:              out,
		runTUI:           runTUI,
	}
}

// Collect fetches every input and folds it into a coverage table.
func (s *orchestratorService) Collect(ctx context.Context, flags model.Flags) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	account, err := s.identityService.GetAccountInfo(ctx)
	if err != nil {
		return nil, err
	}

	instances, err := s.inventoryService.GetInstances(ctx)
	if err != nil {
		return nil, err
	}

	reservations, err := s.inventoryService.GetReservedInstances(ctx)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Account: account,
		Region:  flags.Region,
		Table:   coverage.NewTable(),
	}

	for _, instance := range instances {
		if err := r.Table.IngestInstance(instance); err != nil {
			if !flags.SkipMalformed {
				return nil, fmt.Errorf("ingesting instance %s: %w", instance.InstanceID, err)
			}
			logger.Warn().Err(err).Str("instance_id", instance.InstanceID).Msg("skipping instance")
			r.Skipped++
		}
	}

	for _, reservation := range reservations {
		if err := r.Table.IngestReservation(reservation); err != nil {
			if !flags.SkipMalformed {
				return nil, fmt.Errorf("ingesting reserved instance %s: %w", reservation.ReservedInstancesID, err)
			}
			logger.Warn().Err(err).Str("reserved_instances_id", reservation.ReservedInstancesID).Msg("skipping reserved instance")
			r.Skipped++
		}
	}

	if flags.CostExplorer && s.coverageService != nil {
		summary, err := s.coverageService.GetReservationCoverage(ctx)
		if err != nil {
			return nil, err
		}
		r.Summary = summary
	}

	logger.Info().
		Int("instances", len(instances)).
		Int("reservations", len(reservations)).
		Int("rows", r.Table.Len()).
		Int("skipped", r.Skipped).
		Msg("coverage table built")

	return r, nil
}

// Orchestrate collects the report and renders it in the requested output.
func (s *orchestratorService) Orchestrate(ctx context.Context, flags model.Flags) error {
	view, err := coverage.ParseView(flags.View)
	if err != nil {
		return err
	}

	r, err := s.Collect(ctx, flags)
	if err != nil {
		return err
	}

	switch flags.Output {
	case "json":
		return s.jsonWorkflow(r)
	case "table":
		return s.tableWorkflow(r, view)
	default:
		utils.StopSpinner()
		return s.runTUI(ctx, r, view)
	}
}

// Convert returns the machine readable form of the report.
func (r *Report) Convert() *report.Coverage {
	return report.ConvertCoverage(r.Account, r.Region, r.Table.Snapshot(), r.Summary, r.Skipped)
}

func (s *orchestratorService) jsonWorkflow(r *Report) error {
	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Convert())
}

func (s *orchestratorService) tableWorkflow(r *Report, view coverage.View) error {
	utils.StopSpinner()

	snap := r.Table.Snapshot()
	table, err := utils.RenderCoverageTable(view, snap, accountID(r.Account), r.Region)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, table)

	if r.Summary != nil {
		fmt.Fprintln(s.out, utils.RenderCostExplorerLine(r.Summary))
	}

	if _, ok := view.(coverage.NormalizedView); ok {
		counters, err := snap.Normalized()
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, utils.RenderCoverageChart(counters))
	}
	return nil
}

func runTUI(ctx context.Context, r *Report, initial coverage.View) error {
	return tui.Run(ctx, tui.Options{
		Snapshot:  r.Table.Snapshot(),
		Initial:   initial,
		AccountID: accountID(r.Account),
		Region:    r.Region,
		Summary:   r.Summary,
	})
}

func accountID(info *model.AccountInfo) string {
	if info == nil {
		return ""
	}
	return info.AccountID
}
