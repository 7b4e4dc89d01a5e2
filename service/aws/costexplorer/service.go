package awscostexplorer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/aws-ri-doctor/model"
	"github.com/rs/zerolog"
)

const (
	coverageWindowDays = 30
	ec2ComputeService  = "Amazon Elastic Compute Cloud - Compute"
)

func NewService(awsconfig aws.Config) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client: client,
		now:    time.Now,
	}
}

// GetReservationCoverage returns the EC2 reservation coverage, in hours, of
// the last 30 days as computed by Cost Explorer.
func (s *service) GetReservationCoverage(ctx context.Context) (*model.CoverageSummary, error) {
	end := s.now().UTC()
	start := end.AddDate(0, 0, -coverageWindowDays)

	input := &costexplorer.GetReservationCoverageInput{
		TimePeriod: &types.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Filter: &types.Expression{
			Dimensions: &types.DimensionValues{
				Key:    types.DimensionService,
				Values: []string{ec2ComputeService},
			},
		},
	}

	output, err := s.client.GetReservationCoverage(ctx, input)
	if err != nil {
		return nil, &model.FetchError{Source: "costexplorer", Query: "GetReservationCoverage", Err: err}
	}

	summary := &model.CoverageSummary{
		Start: aws.ToString(input.TimePeriod.Start),
		End:   aws.ToString(input.TimePeriod.End),
	}
	if output.Total == nil || output.Total.CoverageHours == nil {
		return summary, nil
	}

	hours := output.Total.CoverageHours
	fields := []struct {
		name  string
		value *string
		dst   *float64
	}{
		{"CoverageHoursPercentage", hours.CoverageHoursPercentage, &summary.CoveragePercent},
		{"ReservedHours", hours.ReservedHours, &summary.ReservedHours},
		{"OnDemandHours", hours.OnDemandHours, &summary.OnDemandHours},
		{"TotalRunningHours", hours.TotalRunningHours, &summary.TotalRunningHours},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		v, err := strconv.ParseFloat(*f.value, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s %q: %w", f.name, *f.value, err)
		}
		*f.dst = v
	}

	zerolog.Ctx(ctx).Debug().
		Str("start", summary.Start).
		Str("end", summary.End).
		Float64("coverage_percent", summary.CoveragePercent).
		Msg("fetched reservation coverage")

	return summary, nil
}
