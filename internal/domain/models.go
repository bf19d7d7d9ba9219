package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// KPIs holds the scalar and grouped business metrics for a tenant over a
// resolved date range. Monetary fields default to zero when no rows match.
type KPIs struct {
	TotalRevenue         decimal.Decimal   `json:"total_revenue"`
	OutstandingInvoices  decimal.Decimal   `json:"outstanding_invoices"`
	JobsCreated          int               `json:"jobs_created"`
	JobsCompleted        int               `json:"jobs_completed"`
	ActiveJobsByStatus   map[JobStatus]int `json:"active_jobs_by_status"`
	LeadConversionRate   float64           `json:"lead_conversion_rate"`
	AvgJobCompletionTime float64           `json:"avg_job_completion_time"` // days
	DispatchThroughput   float64           `json:"dispatch_throughput"`    // assignments per day
	TopClientsByRevenue  []ClientRevenue   `json:"top_clients_by_revenue"`
	TopClientsByJobCount []ClientJobCount  `json:"top_clients_by_job_count"`
}

// ClientRevenue is one entry of the top-clients-by-revenue ranking.
type ClientRevenue struct {
	ClientID   uuid.UUID       `json:"client_id"`
	ClientName string          `json:"client_name"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// ClientJobCount is one entry of the top-clients-by-job-count ranking.
type ClientJobCount struct {
	ClientID   uuid.UUID `json:"client_id"`
	ClientName string    `json:"client_name"`
	JobCount   int       `json:"job_count"`
}

// TimeSeriesPoint is one calendar-day bucket of the daily activity series.
// Revenue and Payments carry the same value under two names because chart
// consumers bind them independently.
type TimeSeriesPoint struct {
	Date           string          `json:"date"` // YYYY-MM-DD, UTC
	Revenue        decimal.Decimal `json:"revenue"`
	JobsCreated    int             `json:"jobs_created"`
	JobsCompleted  int             `json:"jobs_completed"`
	LeadsCreated   int             `json:"leads_created"`
	LeadsConverted int             `json:"leads_converted"`
	Payments       decimal.Decimal `json:"payments"`
}

// Funnel is a period-snapshot breakdown of pipeline-stage counts. The stages
// are independent cohorts counted over the same range, not a tracked join: a
// lead counted in Won has no guaranteed corresponding row in JobsCreated.
type Funnel struct {
	TotalLeads      int     `json:"total_leads"`
	EstimatesSent   int     `json:"estimates_sent"`
	Won             int     `json:"won"`
	Lost            int     `json:"lost"`
	JobsCreated     int     `json:"jobs_created"`
	InvoicesCreated int     `json:"invoices_created"`
	InvoicesPaid    int     `json:"invoices_paid"`
	ConversionRate  float64 `json:"conversion_rate"`
}

// WaterfallStep is one labeled delta of a waterfall chart.
type WaterfallStep struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// Waterfall is a step-wise breakdown: a starting value, labeled adjustments,
// and an ending value.
type Waterfall struct {
	Starting    decimal.Decimal `json:"starting"`
	Adjustments []WaterfallStep `json:"adjustments"`
	Ending      decimal.Decimal `json:"ending"`
}

// Dashboard bundles the output of all reporting engines for one call.
type Dashboard struct {
	Range            DateRange         `json:"range"`
	KPIs             KPIs              `json:"kpis"`
	TimeSeries       []TimeSeriesPoint `json:"time_series"`
	Funnel           Funnel            `json:"funnel"`
	RevenueWaterfall Waterfall         `json:"revenue_waterfall"`
	JobWaterfall     Waterfall         `json:"job_waterfall"`
}

// PaymentEvent is the minimal payment projection for time-series bucketing.
type PaymentEvent struct {
	Amount      decimal.Decimal `db:"amount"`
	ProcessedAt *time.Time      `db:"processed_at"`
}

// ClientPayment is a completed payment joined to its invoice's client, used
// for the revenue-by-client grouping. ClientID is nil when the invoice has no
// client attached; such rows are excluded from the ranking.
type ClientPayment struct {
	Amount   decimal.Decimal `db:"amount"`
	ClientID *uuid.UUID      `db:"client_id"`
}

// JobEvent is the minimal job projection for time-series bucketing.
type JobEvent struct {
	CreatedAt *time.Time `db:"created_at"`
	Status    JobStatus  `db:"status"`
	ActualEnd *time.Time `db:"actual_end"`
}

// LeadEvent is the minimal lead projection for time-series bucketing.
type LeadEvent struct {
	CreatedAt   *time.Time `db:"created_at"`
	Status      LeadStatus `db:"status"`
	ConvertedAt *time.Time `db:"converted_at"`
}

// JobCompletion is a completed job's creation and finish instants, used for
// completion-time averaging.
type JobCompletion struct {
	CreatedAt time.Time `db:"created_at"`
	ActualEnd time.Time `db:"actual_end"`
}

// JobStatusCount is one row of the active-jobs-by-status group count.
type JobStatusCount struct {
	Status JobStatus `db:"status"`
	Count  int       `db:"count"`
}

// ClientJobGroup is one row of the jobs-per-client group count.
type ClientJobGroup struct {
	ClientID uuid.UUID `db:"client_id"`
	JobCount int       `db:"job_count"`
}
