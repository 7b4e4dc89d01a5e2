package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/elC0mpa/aws-ri-doctor/model"
	"github.com/elC0mpa/aws-ri-doctor/service/coverage"
	"github.com/elC0mpa/aws-ri-doctor/service/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockIdentity struct {
	mock.Mock
}

func (m *mockIdentity) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	args := m.Called(ctx)
	info, _ := args.Get(0).(*model.AccountInfo)
	return info, args.Error(1)
}

type mockInventory struct {
	mock.Mock
}

func (m *mockInventory) GetInstances(ctx context.Context) ([]model.RawInstance, error) {
	args := m.Called(ctx)
	instances, _ := args.Get(0).([]model.RawInstance)
	return instances, args.Error(1)
}

func (m *mockInventory) GetReservedInstances(ctx context.Context) ([]model.RawReservation, error) {
	args := m.Called(ctx)
	reservations, _ := args.Get(0).([]model.RawReservation)
	return reservations, args.Error(1)
}

type mockCoverage struct {
	mock.Mock
}

func (m *mockCoverage) GetReservationCoverage(ctx context.Context) (*model.CoverageSummary, error) {
	args := m.Called(ctx)
	summary, _ := args.Get(0).(*model.CoverageSummary)
	return summary, args.Error(1)
}

const linux = "Linux/UNIX"

var account = &model.AccountInfo{Provider: "aws", AccountID: "123456789012"}

func fixtures() (*mockIdentity, *mockInventory, *mockCoverage) {
	identity := &mockIdentity{}
	identity.On("GetAccountInfo", mock.Anything).Return(account, nil)

	inventory := &mockInventory{}
	inventory.On("GetInstances", mock.Anything).Return([]model.RawInstance{
		{InstanceID: "i-1", PlatformDetails: linux, InstanceType: "m5.large", State: model.InstanceStateRunning},
		{InstanceID: "i-2", PlatformDetails: linux, InstanceType: "m5.large", State: model.InstanceStateRunning},
		{InstanceID: "i-3", PlatformDetails: linux, InstanceType: "c5.xlarge", State: "stopped"},
	}, nil)
	inventory.On("GetReservedInstances", mock.Anything).Return([]model.RawReservation{
		{ReservedInstancesID: "ri-1", ProductDescription: linux, InstanceType: "m5.xlarge", State: model.ReservationStateActive, InstanceCount: 1},
		{ReservedInstancesID: "ri-2", ProductDescription: linux, InstanceType: "r5.large", State: model.ReservationStateRetired, InstanceCount: 2},
	}, nil)

	return identity, inventory, &mockCoverage{}
}

func flags() model.Flags {
	return model.Flags{
		Region:   "eu-west-1",
		View:     "instance",
		Output:   "json",
		LogLevel: "info",
	}
}

func TestCollect_BuildsTable(t *testing.T) {
	identity, inventory, ce := fixtures()
	svc := NewService(identity, inventory, ce, &bytes.Buffer{})

	r, err := svc.Collect(context.Background(), flags())
	require.NoError(t, err)

	assert.Equal(t, account, r.Account)
	assert.Equal(t, "eu-west-1", r.Region)
	assert.Nil(t, r.Summary)
	assert.Zero(t, r.Skipped)

	assert.Equal(t, []coverage.GroupedCounter{
		{Workload: linux, Shape: "m5.large", Running: 2},
		{Workload: linux, Shape: "m5.xlarge", ReservedActive: 1},
		{Workload: linux, Shape: "r5.large", ReservedExpired: 2},
	}, r.Table.Snapshot().Rows())

	ce.AssertNotCalled(t, "GetReservationCoverage", mock.Anything)
}

func TestCollect_MalformedRecords(t *testing.T) {
	identity, _, ce := fixtures()
	inventory := &mockInventory{}
	inventory.On("GetInstances", mock.Anything).Return([]model.RawInstance{
		{InstanceID: "i-1", PlatformDetails: linux, InstanceType: "m5large", State: model.InstanceStateRunning},
		{InstanceID: "i-2", PlatformDetails: linux, InstanceType: "m5.large", State: model.InstanceStateRunning},
	}, nil)
	inventory.On("GetReservedInstances", mock.Anything).Return([]model.RawReservation{
		{ReservedInstancesID: "ri-1", ProductDescription: linux, InstanceType: "bogus", State: model.ReservationStateActive, InstanceCount: 1},
	}, nil)

	svc := NewService(identity, inventory, ce, &bytes.Buffer{})

	_, err := svc.Collect(context.Background(), flags())
	assert.ErrorIs(t, err, coverage.ErrMalformedShape)
	assert.ErrorContains(t, err, "i-1")

	f := flags()
	f.SkipMalformed = true
	r, err := svc.Collect(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Skipped)
	assert.Equal(t, 1, r.Table.Len())
}

func TestCollect_PropagatesFetchErrors(t *testing.T) {
	fetchErr := &model.FetchError{Source: "ec2", Query: "DescribeReservedInstances", Err: errors.New("throttled")}

	identity, _, ce := fixtures()
	inventory := &mockInventory{}
	inventory.On("GetInstances", mock.Anything).Return([]model.RawInstance{}, nil)
	inventory.On("GetReservedInstances", mock.Anything).Return(nil, fetchErr)

	svc := NewService(identity, inventory, ce, &bytes.Buffer{})
	r, err := svc.Collect(context.Background(), flags())
	assert.Nil(t, r)

	var got *model.FetchError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "DescribeReservedInstances", got.Query)
}

func TestCollect_IdentityFailureStopsEarly(t *testing.T) {
	identity := &mockIdentity{}
	identity.On("GetAccountInfo", mock.Anything).Return(nil, errors.New("expired token"))
	inventory := &mockInventory{}

	svc := NewService(identity, inventory, nil, &bytes.Buffer{})
	_, err := svc.Collect(context.Background(), flags())
	assert.EqualError(t, err, "expired token")
	inventory.AssertNotCalled(t, "GetInstances", mock.Anything)
}

func TestCollect_CostExplorerSummary(t *testing.T) {
	identity, inventory, ce := fixtures()
	summary := &model.CoverageSummary{Start: "2026-09-15", End: "2026-10-15", CoveragePercent: 64.2}
	ce.On("GetReservationCoverage", mock.Anything).Return(summary, nil)

	f := flags()
	f.CostExplorer = true

	r, err := NewService(identity, inventory, ce, &bytes.Buffer{}).Collect(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, summary, r.Summary)

	// no coverage service wired
	r, err = NewService(identity, inventory, nil, &bytes.Buffer{}).Collect(context.Background(), f)
	require.NoError(t, err)
	assert.Nil(t, r.Summary)
}

func TestOrchestrate_JSON(t *testing.T) {
	identity, inventory, ce := fixtures()
	var out bytes.Buffer

	err := NewService(identity, inventory, ce, &out).Orchestrate(context.Background(), flags())
	require.NoError(t, err)

	var got report.Coverage
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "123456789012", got.Account.AccountID)
	assert.Len(t, got.Instances, 3)
	assert.Empty(t, got.FamiliesError)
	assert.Equal(t, []report.FamilyRow{
		{ProductDescription: linux, InstanceFamily: "m5", RunningNormalizedUnits: 8, ReservedActiveNormalized: 8, NormalizedUnitsGap: 0, CoveragePercent: 100},
	}, got.Families)
}

func TestOrchestrate_Table(t *testing.T) {
	identity, inventory, ce := fixtures()
	var out bytes.Buffer

	f := flags()
	f.Output = "table"
	f.View = "normalized"

	err := NewService(identity, inventory, ce, &out).Orchestrate(context.Background(), f)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "m5")
	assert.Contains(t, out.String(), "100.0%")
}

func TestOrchestrate_TUIStartsOnRequestedView(t *testing.T) {
	identity, inventory, ce := fixtures()
	svc := NewService(identity, inventory, ce, &bytes.Buffer{})

	var gotView coverage.View
	var gotReport *Report
	svc.runTUI = func(_ context.Context, r *Report, initial coverage.View) error {
		gotView = initial
		gotReport = r
		return nil
	}

	f := flags()
	f.Output = "tui"
	f.View = "normalized"
	require.NoError(t, svc.Orchestrate(context.Background(), f))
	assert.Equal(t, coverage.NormalizedView{}, gotView)
	require.NotNil(t, gotReport)
	assert.Equal(t, 3, gotReport.Table.Len())
}

func TestOrchestrate_RejectsUnknownView(t *testing.T) {
	identity, inventory, ce := fixtures()
	f := flags()
	f.View = "family"

	err := NewService(identity, inventory, ce, &bytes.Buffer{}).Orchestrate(context.Background(), f)
	assert.Error(t, err)
	identity.AssertNotCalled(t, "GetAccountInfo", mock.Anything)
}
