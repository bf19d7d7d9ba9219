package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"fieldops/internal/domain"
)

// MockAnalyticsRepo is a mock implementation of port.AnalyticsRepository.
type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) SumCompletedPayments(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAnalyticsRepo) SumOutstandingBalances(ctx context.Context, tenantID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAnalyticsRepo) SumInvoiceTotalsCreated(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAnalyticsRepo) CountJobsCreated(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepo) CountJobsWithStatusUpdated(ctx context.Context, tenantID uuid.UUID, status domain.JobStatus, r domain.DateRange) (int, error) {
	args := m.Called(ctx, tenantID, status, r)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepo) CountActiveJobsByStatus(ctx context.Context, tenantID uuid.UUID) (map[domain.JobStatus]int, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.JobStatus]int), args.Error(1)
}

func (m *MockAnalyticsRepo) CountJobsInvoiced(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepo) CountJobsPaid(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepo) ListJobCompletions(ctx context.Context, tenantID uuid.UUID, r domain.DateRange, limit int) ([]domain.JobCompletion, error) {
	args := m.Called(ctx, tenantID, r, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobCompletion), args.Error(1)
}

func (m *MockAnalyticsRepo) CountLeadsCreated(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepo) CountLeadsConverted(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepo) CountLeadsLost(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepo) CountEstimatesCreated(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepo) CountInvoicesCreated(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepo) CountInvoicesPaid(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepo) CountDispatchEvents(ctx context.Context, tenantID uuid.UUID, eventType domain.DispatchEventType, r domain.DateRange) (int, error) {
	args := m.Called(ctx, tenantID, eventType, r)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepo) ListClientPayments(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) ([]domain.ClientPayment, error) {
	args := m.Called(ctx, tenantID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientPayment), args.Error(1)
}

func (m *MockAnalyticsRepo) TopClientsByJobCount(ctx context.Context, tenantID uuid.UUID, r domain.DateRange, limit int) ([]domain.ClientJobGroup, error) {
	args := m.Called(ctx, tenantID, r, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientJobGroup), args.Error(1)
}

func (m *MockAnalyticsRepo) ListPaymentEvents(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) ([]domain.PaymentEvent, error) {
	args := m.Called(ctx, tenantID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentEvent), args.Error(1)
}

func (m *MockAnalyticsRepo) ListJobEvents(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) ([]domain.JobEvent, error) {
	args := m.Called(ctx, tenantID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobEvent), args.Error(1)
}

func (m *MockAnalyticsRepo) ListLeadEvents(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) ([]domain.LeadEvent, error) {
	args := m.Called(ctx, tenantID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeadEvent), args.Error(1)
}
