package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fieldops/internal/domain"
)

// AnalyticsRepository is the read contract the reporting engine requires from
// the backing store. Every query is scoped by tenant; payments are scoped
// through their invoice, so a payment whose invoice is gone is silently
// excluded. Methods without a DateRange parameter are current-state snapshots.
type AnalyticsRepository interface {
	// SumCompletedPayments sums completed payment amounts processed in range.
	SumCompletedPayments(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (decimal.Decimal, error)

	// SumOutstandingBalances sums invoice balances over the outstanding
	// statuses (SENT, PARTIAL, OVERDUE), regardless of date.
	SumOutstandingBalances(ctx context.Context, tenantID uuid.UUID) (decimal.Decimal, error)

	// SumInvoiceTotalsCreated sums invoice totals for invoices created in range.
	SumInvoiceTotalsCreated(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (decimal.Decimal, error)

	// CountJobsCreated counts jobs created in range.
	CountJobsCreated(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error)

	// CountJobsWithStatusUpdated counts jobs in the given status whose last
	// update falls in range. updated_at is the completion-time proxy for the
	// jobs-completed metric.
	CountJobsWithStatusUpdated(ctx context.Context, tenantID uuid.UUID, status domain.JobStatus, r domain.DateRange) (int, error)

	// CountActiveJobsByStatus groups current jobs by status over the active
	// statuses (QUOTE, SCHEDULED, IN_PROGRESS, ON_HOLD).
	CountActiveJobsByStatus(ctx context.Context, tenantID uuid.UUID) (map[domain.JobStatus]int, error)

	// CountJobsInvoiced counts jobs having at least one invoice created in range.
	CountJobsInvoiced(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error)

	// CountJobsPaid counts jobs having at least one PAID invoice updated in range.
	CountJobsPaid(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error)

	// ListJobCompletions returns creation/finish pairs for jobs completed with
	// a recorded finish, created in range, capped at limit rows.
	ListJobCompletions(ctx context.Context, tenantID uuid.UUID, r domain.DateRange, limit int) ([]domain.JobCompletion, error)

	// CountLeadsCreated counts leads created in range.
	CountLeadsCreated(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error)

	// CountLeadsConverted counts CONVERTED leads whose conversion falls in range.
	CountLeadsConverted(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error)

	// CountLeadsLost counts LOST leads whose last update falls in range.
	CountLeadsLost(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error)

	// CountEstimatesCreated counts estimates created in range.
	CountEstimatesCreated(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error)

	// CountInvoicesCreated counts invoices created in range.
	CountInvoicesCreated(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error)

	// CountInvoicesPaid counts PAID invoices whose last update falls in range.
	CountInvoicesPaid(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (int, error)

	// CountDispatchEvents counts dispatch events of the given type in range.
	CountDispatchEvents(ctx context.Context, tenantID uuid.UUID, eventType domain.DispatchEventType, r domain.DateRange) (int, error)

	// ListClientPayments lists completed in-range payments joined to their
	// invoice's client for revenue-by-client grouping.
	ListClientPayments(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) ([]domain.ClientPayment, error)

	// TopClientsByJobCount groups in-range job creations by client, descending
	// by count, capped at limit rows. Jobs without a client are excluded.
	TopClientsByJobCount(ctx context.Context, tenantID uuid.UUID, r domain.DateRange, limit int) ([]domain.ClientJobGroup, error)

	// ListPaymentEvents lists completed in-range payments for day bucketing.
	ListPaymentEvents(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) ([]domain.PaymentEvent, error)

	// ListJobEvents lists jobs created in range for day bucketing.
	ListJobEvents(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) ([]domain.JobEvent, error)

	// ListLeadEvents lists leads created in range for day bucketing.
	ListLeadEvents(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) ([]domain.LeadEvent, error)
}
