package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fieldops/internal/domain"
	"fieldops/internal/service"
	"fieldops/mocks"
)

func stubSeriesDefaults(repo *mocks.MockAnalyticsRepo, tenantID uuid.UUID, r domain.DateRange) {
	repo.On("ListPaymentEvents", mock.Anything, tenantID, r).Return([]domain.PaymentEvent{}, nil)
	repo.On("ListJobEvents", mock.Anything, tenantID, r).Return([]domain.JobEvent{}, nil)
	repo.On("ListLeadEvents", mock.Anything, tenantID, r).Return([]domain.LeadEvent{}, nil)
}

func ts(day, hour int) *time.Time {
	t := time.Date(2025, time.June, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestBuildTimeSeries_OneRowPerDayInclusive(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	svc := service.NewAnalyticsService(mockRepo, new(mocks.MockClientRepo))

	tenantID := uuid.New()
	r := domain.DateRange{
		StartDate: time.Date(2025, time.June, 1, 9, 15, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 4, 18, 0, 0, 0, time.UTC),
	}
	stubSeriesDefaults(mockRepo, tenantID, r)

	series, err := svc.BuildTimeSeries(context.Background(), tenantID, r)
	require.NoError(t, err)
	require.Len(t, series, 4)

	assert.Equal(t, "2025-06-01", series[0].Date)
	assert.Equal(t, "2025-06-02", series[1].Date)
	assert.Equal(t, "2025-06-03", series[2].Date)
	assert.Equal(t, "2025-06-04", series[3].Date)
	for _, pt := range series {
		assert.True(t, pt.Revenue.IsZero())
		assert.True(t, pt.Payments.IsZero())
		assert.Zero(t, pt.JobsCreated)
		assert.Zero(t, pt.JobsCompleted)
		assert.Zero(t, pt.LeadsCreated)
		assert.Zero(t, pt.LeadsConverted)
	}
}

func TestBuildTimeSeries_PaymentFillsRevenueAndPayments(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	svc := service.NewAnalyticsService(mockRepo, new(mocks.MockClientRepo))

	tenantID := uuid.New()
	r := domain.DateRange{
		StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
	}
	mockRepo.On("ListPaymentEvents", mock.Anything, tenantID, r).Return([]domain.PaymentEvent{
		{Amount: decimal.NewFromInt(100), ProcessedAt: ts(3, 14)},
	}, nil)
	stubSeriesDefaults(mockRepo, tenantID, r)

	series, err := svc.BuildTimeSeries(context.Background(), tenantID, r)
	require.NoError(t, err)
	require.Len(t, series, 5)

	// Same amount shows up under both names on the payment's day only.
	assert.True(t, series[2].Revenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, series[2].Payments.Equal(decimal.NewFromInt(100)))
	assert.True(t, series[0].Revenue.IsZero())
	assert.True(t, series[4].Payments.IsZero())
}

func TestBuildTimeSeries_JobAndLeadBucketing(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	svc := service.NewAnalyticsService(mockRepo, new(mocks.MockClientRepo))

	tenantID := uuid.New()
	r := domain.DateRange{
		StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
	}
	mockRepo.On("ListJobEvents", mock.Anything, tenantID, r).Return([]domain.JobEvent{
		{CreatedAt: ts(1, 8), Status: domain.JobCompleted, ActualEnd: ts(2, 17)},
		{CreatedAt: ts(1, 9), Status: domain.JobScheduled},
	}, nil)
	mockRepo.On("ListLeadEvents", mock.Anything, tenantID, r).Return([]domain.LeadEvent{
		{CreatedAt: ts(1, 10), Status: domain.LeadConverted, ConvertedAt: ts(3, 11)},
		{CreatedAt: ts(2, 12), Status: domain.LeadNew},
	}, nil)
	stubSeriesDefaults(mockRepo, tenantID, r)

	series, err := svc.BuildTimeSeries(context.Background(), tenantID, r)
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, 2, series[0].JobsCreated)
	assert.Equal(t, 1, series[1].JobsCompleted)
	assert.Equal(t, 1, series[0].LeadsCreated)
	assert.Equal(t, 1, series[1].LeadsCreated)
	assert.Equal(t, 1, series[2].LeadsConverted)
}

func TestBuildTimeSeries_OutOfRangeSecondaryTimestampDropped(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	svc := service.NewAnalyticsService(mockRepo, new(mocks.MockClientRepo))

	tenantID := uuid.New()
	r := domain.DateRange{
		StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
	}
	// Created in range, finished after it. The completion is dropped rather
	// than the series extended.
	mockRepo.On("ListJobEvents", mock.Anything, tenantID, r).Return([]domain.JobEvent{
		{CreatedAt: ts(2, 8), Status: domain.JobCompleted, ActualEnd: ts(9, 17)},
	}, nil)
	stubSeriesDefaults(mockRepo, tenantID, r)

	series, err := svc.BuildTimeSeries(context.Background(), tenantID, r)
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, 1, series[1].JobsCreated)
	for _, pt := range series {
		assert.Zero(t, pt.JobsCompleted)
	}
}

func TestBuildTimeSeries_NilTimestampsSkipped(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	svc := service.NewAnalyticsService(mockRepo, new(mocks.MockClientRepo))

	tenantID := uuid.New()
	r := domain.DateRange{
		StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
	}
	mockRepo.On("ListPaymentEvents", mock.Anything, tenantID, r).Return([]domain.PaymentEvent{
		{Amount: decimal.NewFromInt(50), ProcessedAt: nil},
	}, nil)
	mockRepo.On("ListJobEvents", mock.Anything, tenantID, r).Return([]domain.JobEvent{
		{CreatedAt: nil, Status: domain.JobCompleted, ActualEnd: nil},
	}, nil)
	mockRepo.On("ListLeadEvents", mock.Anything, tenantID, r).Return([]domain.LeadEvent{
		{CreatedAt: nil, Status: domain.LeadConverted, ConvertedAt: nil},
	}, nil)

	series, err := svc.BuildTimeSeries(context.Background(), tenantID, r)
	require.NoError(t, err)
	require.Len(t, series, 2)

	for _, pt := range series {
		assert.True(t, pt.Revenue.IsZero())
		assert.Zero(t, pt.JobsCreated)
		assert.Zero(t, pt.LeadsCreated)
	}
}

func TestBuildTimeSeries_RepoError(t *testing.T) {
	mockRepo := new(mocks.MockAnalyticsRepo)
	svc := service.NewAnalyticsService(mockRepo, new(mocks.MockClientRepo))

	tenantID := uuid.New()
	r := testRange(7)
	mockRepo.On("ListPaymentEvents", mock.Anything, tenantID, r).Return(nil, errors.New("db error"))
	stubSeriesDefaults(mockRepo, tenantID, r)

	series, err := svc.BuildTimeSeries(context.Background(), tenantID, r)
	assert.Error(t, err)
	assert.Nil(t, series)
}
