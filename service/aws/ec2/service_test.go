package awsec2

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/aws-ri-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ec2.DescribeInstancesOutput)
	return out, args.Error(1)
}

func (m *mockClient) DescribeReservedInstances(ctx context.Context, params *ec2.DescribeReservedInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeReservedInstancesOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ec2.DescribeReservedInstancesOutput)
	return out, args.Error(1)
}

func firstPage(in *ec2.DescribeInstancesInput) bool {
	return in.NextToken == nil
}

func secondPage(in *ec2.DescribeInstancesInput) bool {
	return aws.ToString(in.NextToken) == "page-2"
}

func TestGetInstances_FollowsPagesAndFlattens(t *testing.T) {
	client := &mockClient{}
	client.On("DescribeInstances", mock.Anything, mock.MatchedBy(firstPage)).Return(&ec2.DescribeInstancesOutput{
		NextToken: aws.String("page-2"),
		Reservations: []types.Reservation{
			{Instances: []types.Instance{
				{
					InstanceId:      aws.String("i-1"),
					InstanceType:    types.InstanceTypeM5Large,
					PlatformDetails: aws.String("Linux/UNIX"),
					State:           &types.InstanceState{Name: types.InstanceStateNameRunning},
				},
				{
					InstanceId:      aws.String("i-2"),
					InstanceType:    types.InstanceTypeM5Large,
					PlatformDetails: aws.String("Linux/UNIX"),
					State:           &types.InstanceState{Name: types.InstanceStateNameStopped},
				},
			}},
		},
	}, nil).Once()
	client.On("DescribeInstances", mock.Anything, mock.MatchedBy(secondPage)).Return(&ec2.DescribeInstancesOutput{
		Reservations: []types.Reservation{
			{Instances: []types.Instance{
				{InstanceId: aws.String("i-3"), InstanceType: types.InstanceTypeC5Xlarge},
			}},
		},
	}, nil).Once()

	svc := &service{client: client}
	got, err := svc.GetInstances(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.RawInstance{
		{InstanceID: "i-1", PlatformDetails: "Linux/UNIX", InstanceType: "m5.large", State: "running"},
		{InstanceID: "i-2", PlatformDetails: "Linux/UNIX", InstanceType: "m5.large", State: "stopped"},
		{InstanceID: "i-3", InstanceType: "c5.xlarge"},
	}, got)
	client.AssertExpectations(t)
}

func TestGetInstances_WrapsFailure(t *testing.T) {
	client := &mockClient{}
	client.On("DescribeInstances", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	svc := &service{client: client}
	got, err := svc.GetInstances(context.Background())
	assert.Nil(t, got)

	var fetchErr *model.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "ec2", fetchErr.Source)
	assert.Equal(t, "DescribeInstances", fetchErr.Query)
	assert.Equal(t, "ec2 DescribeInstances failed: access denied", err.Error())
}

func TestGetReservedInstances_MapsFields(t *testing.T) {
	client := &mockClient{}
	client.On("DescribeReservedInstances", mock.Anything, mock.Anything).Return(&ec2.DescribeReservedInstancesOutput{
		ReservedInstances: []types.ReservedInstances{
			{
				ReservedInstancesId: aws.String("ri-1"),
				ProductDescription:  types.RIProductDescription("Linux/UNIX"),
				InstanceType:        types.InstanceTypeM5Large,
				State:               types.ReservedInstanceStateActive,
				InstanceCount:       aws.Int32(3),
			},
			{
				ReservedInstancesId: aws.String("ri-2"),
				InstanceType:        types.InstanceTypeM5Xlarge,
				State:               types.ReservedInstanceStateRetired,
			},
		},
	}, nil)

	svc := &service{client: client}
	got, err := svc.GetReservedInstances(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.RawReservation{
		{ReservedInstancesID: "ri-1", ProductDescription: "Linux/UNIX", InstanceType: "m5.large", State: "active", InstanceCount: 3},
		{ReservedInstancesID: "ri-2", InstanceType: "m5.xlarge", State: "retired"},
	}, got)
}

func TestGetReservedInstances_WrapsFailure(t *testing.T) {
	client := &mockClient{}
	client.On("DescribeReservedInstances", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

	svc := &service{client: client}
	_, err := svc.GetReservedInstances(context.Background())
	assert.EqualError(t, err, "ec2 DescribeReservedInstances failed: throttled")
}
