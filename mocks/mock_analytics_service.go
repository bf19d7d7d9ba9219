package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fieldops/internal/domain"
)

// MockAnalyticsService is a mock implementation of service.AnalyticsService.
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) ComputeKPIs(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.KPIs, error) {
	args := m.Called(ctx, tenantID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KPIs), args.Error(1)
}

func (m *MockAnalyticsService) BuildTimeSeries(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) ([]domain.TimeSeriesPoint, error) {
	args := m.Called(ctx, tenantID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeSeriesPoint), args.Error(1)
}

func (m *MockAnalyticsService) BuildFunnel(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.Funnel, error) {
	args := m.Called(ctx, tenantID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Funnel), args.Error(1)
}

func (m *MockAnalyticsService) BuildRevenueWaterfall(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.Waterfall, error) {
	args := m.Called(ctx, tenantID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Waterfall), args.Error(1)
}

func (m *MockAnalyticsService) BuildJobWaterfall(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.Waterfall, error) {
	args := m.Called(ctx, tenantID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Waterfall), args.Error(1)
}

func (m *MockAnalyticsService) BuildDashboard(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.Dashboard, error) {
	args := m.Called(ctx, tenantID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}
