package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/elC0mpa/aws-ri-doctor/model"
)

// client is the subset of the EC2 API the inventory needs.
type client interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	DescribeReservedInstances(ctx context.Context, params *ec2.DescribeReservedInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeReservedInstancesOutput, error)
}

type service struct {
	client client
}

type EC2Service interface {
	GetInstances(ctx context.Context) ([]model.RawInstance, error)
	GetReservedInstances(ctx context.Context) ([]model.RawReservation, error)
}
