package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fieldops/internal/domain"
	"fieldops/internal/service"
	"fieldops/mocks"
)

func stubFunnelDefaults(repo *mocks.MockAnalyticsRepo, tenantID uuid.UUID, r domain.DateRange) {
	repo.On("CountLeadsCreated", mock.Anything, tenantID, r).Return(0, nil)
	repo.On("CountEstimatesCreated", mock.Anything, tenantID, r).Return(0, nil)
	repo.On("CountLeadsConverted", mock.Anything, tenantID, r).Return(0, nil)
	repo.On("CountLeadsLost", mock.Anything, tenantID, r).Return(0, nil)
	repo.On("CountJobsCreated", mock.Anything, tenantID, r).Return(0, nil)
	repo.On("CountInvoicesCreated", mock.Anything, tenantID, r).Return(0, nil)
	repo.On("CountInvoicesPaid", mock.Anything, tenantID, r).Return(0, nil)
}

func TestBuildFunnel_StageCountsAndConversionRate(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	svc := service.NewAnalyticsService(mockRepo, new(mocks.MockClientRepo))

	tenantID := uuid.New()
	r := testRange(30)
	mockRepo.On("CountLeadsCreated", mock.Anything, tenantID, r).Return(12, nil)
	mockRepo.On("CountEstimatesCreated", mock.Anything, tenantID, r).Return(9, nil)
	mockRepo.On("CountLeadsConverted", mock.Anything, tenantID, r).Return(4, nil)
	mockRepo.On("CountLeadsLost", mock.Anything, tenantID, r).Return(3, nil)
	mockRepo.On("CountJobsCreated", mock.Anything, tenantID, r).Return(5, nil)
	mockRepo.On("CountInvoicesCreated", mock.Anything, tenantID, r).Return(4, nil)
	mockRepo.On("CountInvoicesPaid", mock.Anything, tenantID, r).Return(2, nil)

	f, err := svc.BuildFunnel(context.Background(), tenantID, r)
	require.NoError(t, err)

	assert.Equal(t, 12, f.TotalLeads)
	assert.Equal(t, 9, f.EstimatesSent)
	assert.Equal(t, 4, f.Won)
	assert.Equal(t, 3, f.Lost)
	assert.Equal(t, 5, f.JobsCreated)
	assert.Equal(t, 4, f.InvoicesCreated)
	assert.Equal(t, 2, f.InvoicesPaid)
	// 4/12*100, rounded to two decimals.
	assert.Equal(t, 33.33, f.ConversionRate)
	mockRepo.AssertExpectations(t)
}

func TestBuildFunnel_ZeroLeadsZeroRate(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	svc := service.NewAnalyticsService(mockRepo, new(mocks.MockClientRepo))

	tenantID := uuid.New()
	r := testRange(30)
	mockRepo.On("CountLeadsConverted", mock.Anything, tenantID, r).Return(2, nil)
	stubFunnelDefaults(mockRepo, tenantID, r)

	f, err := svc.BuildFunnel(context.Background(), tenantID, r)
	require.NoError(t, err)

	assert.Equal(t, 2, f.Won)
	assert.Zero(t, f.ConversionRate)
}

func TestBuildFunnel_RepoError(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	svc := service.NewAnalyticsService(mockRepo, new(mocks.MockClientRepo))

	tenantID := uuid.New()
	r := testRange(30)
	mockRepo.On("CountEstimatesCreated", mock.Anything, tenantID, r).Return(0, errors.New("db error"))
	stubFunnelDefaults(mockRepo, tenantID, r)

	f, err := svc.BuildFunnel(context.Background(), tenantID, r)
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestBuildRevenueWaterfall_Steps(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	svc := service.NewAnalyticsService(mockRepo, new(mocks.MockClientRepo))

	tenantID := uuid.New()
	r := testRange(30)
	mockRepo.On("SumInvoiceTotalsCreated", mock.Anything, tenantID, r).Return(decimal.NewFromInt(500), nil)
	mockRepo.On("SumCompletedPayments", mock.Anything, tenantID, r).Return(decimal.NewFromInt(200), nil)
	mockRepo.On("SumOutstandingBalances", mock.Anything, tenantID).Return(decimal.NewFromInt(350), nil)

	wf, err := svc.BuildRevenueWaterfall(context.Background(), tenantID, r)
	require.NoError(t, err)

	assert.True(t, wf.Starting.Equal(decimal.NewFromInt(500)))
	require.Len(t, wf.Adjustments, 2)
	assert.Equal(t, "Collected", wf.Adjustments[0].Label)
	assert.True(t, wf.Adjustments[0].Value.Equal(decimal.NewFromInt(-200)))
	assert.Equal(t, "Credits/Refunds", wf.Adjustments[1].Label)
	assert.True(t, wf.Adjustments[1].Value.IsZero())
	// Ending is the current outstanding snapshot, not the sum of the steps.
	assert.True(t, wf.Ending.Equal(decimal.NewFromInt(350)))
	mockRepo.AssertExpectations(t)
}

func TestBuildJobWaterfall_Steps(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	svc := service.NewAnalyticsService(mockRepo, new(mocks.MockClientRepo))

	tenantID := uuid.New()
	r := testRange(30)
	mockRepo.On("CountJobsCreated", mock.Anything, tenantID, r).Return(20, nil)
	mockRepo.On("CountJobsWithStatusUpdated", mock.Anything, tenantID, domain.JobScheduled, r).Return(15, nil)
	mockRepo.On("CountJobsWithStatusUpdated", mock.Anything, tenantID, domain.JobInProgress, r).Return(12, nil)
	mockRepo.On("CountJobsWithStatusUpdated", mock.Anything, tenantID, domain.JobCompleted, r).Return(10, nil)
	mockRepo.On("CountJobsInvoiced", mock.Anything, tenantID, r).Return(8, nil)
	mockRepo.On("CountJobsPaid", mock.Anything, tenantID, r).Return(6, nil)

	wf, err := svc.BuildJobWaterfall(context.Background(), tenantID, r)
	require.NoError(t, err)

	assert.True(t, wf.Starting.Equal(decimal.NewFromInt(20)))
	require.Len(t, wf.Adjustments, 5)
	labels := []string{"Scheduled", "In Progress", "Completed", "Invoiced", "Paid"}
	values := []int64{15, 12, 10, 8, 6}
	for i, step := range wf.Adjustments {
		assert.Equal(t, labels[i], step.Label)
		assert.True(t, step.Value.Equal(decimal.NewFromInt(values[i])), "step %s", step.Label)
	}
	// Ending repeats the paid count as the closing marker.
	assert.True(t, wf.Ending.Equal(decimal.NewFromInt(6)))
	mockRepo.AssertExpectations(t)
}

func TestBuildDashboard_BundlesAllEngines(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	mockClients := new(mocks.MockClientRepo)
	svc := service.NewAnalyticsService(mockRepo, mockClients)

	tenantID := uuid.New()
	r := testRange(7)
	stubKPIDefaults(mockRepo, mockClients, tenantID, r)
	stubSeriesDefaults(mockRepo, tenantID, r)
	stubFunnelDefaults(mockRepo, tenantID, r)
	mockRepo.On("SumInvoiceTotalsCreated", mock.Anything, tenantID, r).Return(decimal.Zero, nil)
	mockRepo.On("CountJobsWithStatusUpdated", mock.Anything, tenantID, domain.JobScheduled, r).Return(0, nil)
	mockRepo.On("CountJobsWithStatusUpdated", mock.Anything, tenantID, domain.JobInProgress, r).Return(0, nil)
	mockRepo.On("CountJobsInvoiced", mock.Anything, tenantID, r).Return(0, nil)
	mockRepo.On("CountJobsPaid", mock.Anything, tenantID, r).Return(0, nil)

	d, err := svc.BuildDashboard(context.Background(), tenantID, r)
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.Equal(t, r, d.Range)
	assert.Len(t, d.TimeSeries, 8)
	assert.NotNil(t, d.KPIs.ActiveJobsByStatus)
	assert.Len(t, d.RevenueWaterfall.Adjustments, 2)
	assert.Len(t, d.JobWaterfall.Adjustments, 5)
}

func TestBuildDashboard_EngineErrorAbortsCall(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	mockClients := new(mocks.MockClientRepo)
	svc := service.NewAnalyticsService(mockRepo, mockClients)

	tenantID := uuid.New()
	r := testRange(7)
	mockRepo.On("ListPaymentEvents", mock.Anything, tenantID, r).Return(nil, errors.New("db error"))
	stubKPIDefaults(mockRepo, mockClients, tenantID, r)
	stubSeriesDefaults(mockRepo, tenantID, r)
	stubFunnelDefaults(mockRepo, tenantID, r)
	mockRepo.On("SumInvoiceTotalsCreated", mock.Anything, tenantID, r).Return(decimal.Zero, nil)
	mockRepo.On("CountJobsWithStatusUpdated", mock.Anything, tenantID, domain.JobScheduled, r).Return(0, nil)
	mockRepo.On("CountJobsWithStatusUpdated", mock.Anything, tenantID, domain.JobInProgress, r).Return(0, nil)
	mockRepo.On("CountJobsInvoiced", mock.Anything, tenantID, r).Return(0, nil)
	mockRepo.On("CountJobsPaid", mock.Anything, tenantID, r).Return(0, nil)

	d, err := svc.BuildDashboard(context.Background(), tenantID, r)
	assert.Error(t, err)
	assert.Nil(t, d)
}
