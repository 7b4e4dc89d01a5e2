package awscostexplorer

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/aws-ri-doctor/model"
)

type client interface {
	GetReservationCoverage(ctx context.Context, params *costexplorer.GetReservationCoverageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetReservationCoverageOutput, error)
}

type service struct {
	client client
	now    func() time.Time
}

type CostService interface {
	GetReservationCoverage(ctx context.Context) (*model.CoverageSummary, error)
}
