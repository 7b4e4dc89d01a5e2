package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/aws-ri-doctor/model"
	"github.com/rs/zerolog"
)

const source = "ec2"

func NewService(awsconfig aws.Config) *service {
	client := ec2.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// GetInstances returns every instance visible in the region, whatever its
// state. Filtering by state is left to the caller.
func (s *service) GetInstances(ctx context.Context) ([]model.RawInstance, error) {
	logger := zerolog.Ctx(ctx)

	var instances []model.RawInstance
	paginator := ec2.NewDescribeInstancesPaginator(s.client, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &model.FetchError{Source: source, Query: "DescribeInstances", Err: err}
		}

		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				instances = append(instances, toRawInstance(instance))
			}
		}
	}

	logger.Debug().Int("count", len(instances)).Msg("fetched ec2 instances")
	return instances, nil
}

// GetReservedInstances returns all reserved instance purchases. The API does
// not paginate this call.
func (s *service) GetReservedInstances(ctx context.Context) ([]model.RawReservation, error) {
	logger := zerolog.Ctx(ctx)

	output, err := s.client.DescribeReservedInstances(ctx, &ec2.DescribeReservedInstancesInput{})
	if err != nil {
		return nil, &model.FetchError{Source: source, Query: "DescribeReservedInstances", Err: err}
	}

	reservations := make([]model.RawReservation, 0, len(output.ReservedInstances))
	for _, ri := range output.ReservedInstances {
		reservations = append(reservations, toRawReservation(ri))
	}

	logger.Debug().Int("count", len(reservations)).Msg("fetched ec2 reserved instances")
	return reservations, nil
}

func toRawInstance(instance types.Instance) model.RawInstance {
	state := ""
	if instance.State != nil {
		state = string(instance.State.Name)
	}

	return model.RawInstance{
		InstanceID:      aws.ToString(instance.InstanceId),
		PlatformDetails: aws.ToString(instance.PlatformDetails),
		InstanceType:    string(instance.InstanceType),
		State:           state,
	}
}

func toRawReservation(ri types.ReservedInstances) model.RawReservation {
	return model.RawReservation{
		ReservedInstancesID: aws.ToString(ri.ReservedInstancesId),
		ProductDescription:  string(ri.ProductDescription),
		InstanceType:        string(ri.InstanceType),
		State:               string(ri.State),
		InstanceCount:       aws.ToInt32(ri.InstanceCount),
	}
}
