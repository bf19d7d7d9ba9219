package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"fieldops/internal/domain"
	"fieldops/internal/port"
)

type analyticsRepo struct {
	db *sqlx.DB
}

// NewAnalyticsRepo creates a new PostgreSQL-backed AnalyticsRepository.
func NewAnalyticsRepo(db *sqlx.DB) port.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

func (r *analyticsRepo) SumCompletedPayments(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.db.GetContext(ctx, &sum,
		`SELECT COALESCE(SUM(p.amount), 0)
		 FROM payments p
		 INNER JOIN invoices i ON i.id = p.invoice_id
		 WHERE i.tenant_id = $1 AND p.status = 'COMPLETED'
		   AND p.processed_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return decimal.Zero, fmt.Errorf("analyticsRepo.SumCompletedPayments: %w", err)
	}
	return sum, nil
}

func (r *analyticsRepo) SumOutstandingBalances(ctx context.Context, tenantID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.db.GetContext(ctx, &sum,
		`SELECT COALESCE(SUM(balance), 0)
		 FROM invoices
		 WHERE tenant_id = $1 AND status IN ('SENT', 'PARTIAL', 'OVERDUE')`,
		tenantID); err != nil {
		return decimal.Zero, fmt.Errorf("analyticsRepo.SumOutstandingBalances: %w", err)
	}
	return sum, nil
}

func (r *analyticsRepo) SumInvoiceTotalsCreated(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.db.GetContext(ctx, &sum,
		`SELECT COALESCE(SUM(total), 0)
		 FROM invoices
		 WHERE tenant_id = $1 AND created_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return decimal.Zero, fmt.Errorf("analyticsRepo.SumInvoiceTotalsCreated: %w", err)
	}
	return sum, nil
}

func (r *analyticsRepo) CountJobsCreated(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM jobs
		 WHERE tenant_id = $1 AND created_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return 0, fmt.Errorf("analyticsRepo.CountJobsCreated: %w", err)
	}
	return count, nil
}

func (r *analyticsRepo) CountJobsWithStatusUpdated(ctx context.Context, tenantID uuid.UUID, status domain.JobStatus, dr domain.DateRange) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM jobs
		 WHERE tenant_id = $1 AND status = $2 AND updated_at BETWEEN $3 AND $4`,
		tenantID, status, dr.StartDate, dr.EndDate); err != nil {
		return 0, fmt.Errorf("analyticsRepo.CountJobsWithStatusUpdated: %w", err)
	}
	return count, nil
}

func (r *analyticsRepo) CountActiveJobsByStatus(ctx context.Context, tenantID uuid.UUID) (map[domain.JobStatus]int, error) {
	var rows []domain.JobStatusCount
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT status, COUNT(*) AS count
		 FROM jobs
		 WHERE tenant_id = $1 AND status IN ('QUOTE', 'SCHEDULED', 'IN_PROGRESS', 'ON_HOLD')
		 GROUP BY status`,
		tenantID); err != nil {
		return nil, fmt.Errorf("analyticsRepo.CountActiveJobsByStatus: %w", err)
	}

	counts := make(map[domain.JobStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *analyticsRepo) CountJobsInvoiced(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(DISTINCT j.id)
		 FROM jobs j
		 INNER JOIN invoices i ON i.job_id = j.id
		 WHERE j.tenant_id = $1 AND i.created_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return 0, fmt.Errorf("analyticsRepo.CountJobsInvoiced: %w", err)
	}
	return count, nil
}

func (r *analyticsRepo) CountJobsPaid(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(DISTINCT j.id)
		 FROM jobs j
		 INNER JOIN invoices i ON i.job_id = j.id
		 WHERE j.tenant_id = $1 AND i.status = 'PAID' AND i.updated_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return 0, fmt.Errorf("analyticsRepo.CountJobsPaid: %w", err)
	}
	return count, nil
}

func (r *analyticsRepo) ListJobCompletions(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange, limit int) ([]domain.JobCompletion, error) {
	var rows []domain.JobCompletion
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT created_at, actual_end
		 FROM jobs
		 WHERE tenant_id = $1 AND status = 'COMPLETED'
		   AND created_at BETWEEN $2 AND $3 AND actual_end IS NOT NULL
		 ORDER BY created_at ASC
		 LIMIT $4`,
		tenantID, dr.StartDate, dr.EndDate, limit); err != nil {
		return nil, fmt.Errorf("analyticsRepo.ListJobCompletions: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepo) CountLeadsCreated(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM leads
		 WHERE tenant_id = $1 AND created_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return 0, fmt.Errorf("analyticsRepo.CountLeadsCreated: %w", err)
	}
	return count, nil
}

func (r *analyticsRepo) CountLeadsConverted(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM leads
		 WHERE tenant_id = $1 AND status = 'CONVERTED' AND converted_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return 0, fmt.Errorf("analyticsRepo.CountLeadsConverted: %w", err)
	}
	return count, nil
}

func (r *analyticsRepo) CountLeadsLost(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM leads
		 WHERE tenant_id = $1 AND status = 'LOST' AND updated_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return 0, fmt.Errorf("analyticsRepo.CountLeadsLost: %w", err)
	}
	return count, nil
}

func (r *analyticsRepo) CountEstimatesCreated(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM estimates
		 WHERE tenant_id = $1 AND created_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return 0, fmt.Errorf("analyticsRepo.CountEstimatesCreated: %w", err)
	}
	return count, nil
}

func (r *analyticsRepo) CountInvoicesCreated(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM invoices
		 WHERE tenant_id = $1 AND created_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return 0, fmt.Errorf("analyticsRepo.CountInvoicesCreated: %w", err)
	}
	return count, nil
}

func (r *analyticsRepo) CountInvoicesPaid(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM invoices
		 WHERE tenant_id = $1 AND status = 'PAID' AND updated_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return 0, fmt.Errorf("analyticsRepo.CountInvoicesPaid: %w", err)
	}
	return count, nil
}

func (r *analyticsRepo) CountDispatchEvents(ctx context.Context, tenantID uuid.UUID, eventType domain.DispatchEventType, dr domain.DateRange) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM dispatch_events
		 WHERE tenant_id = $1 AND event_type = $2 AND timestamp BETWEEN $3 AND $4`,
		tenantID, eventType, dr.StartDate, dr.EndDate); err != nil {
		return 0, fmt.Errorf("analyticsRepo.CountDispatchEvents: %w", err)
	}
	return count, nil
}

func (r *analyticsRepo) ListClientPayments(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) ([]domain.ClientPayment, error) {
	var rows []domain.ClientPayment
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT p.amount, i.client_id
		 FROM payments p
		 INNER JOIN invoices i ON i.id = p.invoice_id
		 WHERE i.tenant_id = $1 AND p.status = 'COMPLETED'
		   AND p.processed_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return nil, fmt.Errorf("analyticsRepo.ListClientPayments: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepo) TopClientsByJobCount(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange, limit int) ([]domain.ClientJobGroup, error) {
	var rows []domain.ClientJobGroup
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT client_id, COUNT(*) AS job_count
		 FROM jobs
		 WHERE tenant_id = $1 AND created_at BETWEEN $2 AND $3 AND client_id IS NOT NULL
		 GROUP BY client_id
		 ORDER BY job_count DESC
		 LIMIT $4`,
		tenantID, dr.StartDate, dr.EndDate, limit); err != nil {
		return nil, fmt.Errorf("analyticsRepo.TopClientsByJobCount: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepo) ListPaymentEvents(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) ([]domain.PaymentEvent, error) {
	var rows []domain.PaymentEvent
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT p.amount, p.processed_at
		 FROM payments p
		 INNER JOIN invoices i ON i.id = p.invoice_id
		 WHERE i.tenant_id = $1 AND p.status = 'COMPLETED'
		   AND p.processed_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return nil, fmt.Errorf("analyticsRepo.ListPaymentEvents: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepo) ListJobEvents(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) ([]domain.JobEvent, error) {
	var rows []domain.JobEvent
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT created_at, status, actual_end
		 FROM jobs
		 WHERE tenant_id = $1 AND created_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return nil, fmt.Errorf("analyticsRepo.ListJobEvents: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepo) ListLeadEvents(ctx context.Context, tenantID uuid.UUID, dr domain.DateRange) ([]domain.LeadEvent, error) {
	var rows []domain.LeadEvent
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT created_at, status, converted_at
		 FROM leads
		 WHERE tenant_id = $1 AND created_at BETWEEN $2 AND $3`,
		tenantID, dr.StartDate, dr.EndDate); err != nil {
		return nil, fmt.Errorf("analyticsRepo.ListLeadEvents: %w", err)
	}
	return rows, nil
}
