package domain

// InvoiceStatus represents the billing lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceSent      InvoiceStatus = "SENT"
	InvoiceViewed    InvoiceStatus = "VIEWED"
	InvoicePartial   InvoiceStatus = "PARTIAL"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// OutstandingInvoiceStatuses are the statuses whose balances count as money
// still owed. Used by the outstanding-balance snapshot aggregates.
var OutstandingInvoiceStatuses = []InvoiceStatus{InvoiceSent, InvoicePartial, InvoiceOverdue}

// PaymentStatus represents the processing state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// JobStatus represents the lifecycle of a field-service job.
type JobStatus string

const (
	JobQuote      JobStatus = "QUOTE"
	JobScheduled  JobStatus = "SCHEDULED"
	JobInProgress JobStatus = "IN_PROGRESS"
	JobOnHold     JobStatus = "ON_HOLD"
	JobCompleted  JobStatus = "COMPLETED"
	JobCancelled  JobStatus = "CANCELLED"
	JobInvoiced   JobStatus = "INVOICED"
)

// ActiveJobStatuses are the statuses counted in the active-jobs snapshot.
var ActiveJobStatuses = []JobStatus{JobQuote, JobScheduled, JobInProgress, JobOnHold}

// LeadStatus represents the qualification state of a lead (request).
type LeadStatus string

const (
	LeadNew       LeadStatus = "NEW"
	LeadContacted LeadStatus = "CONTACTED"
	LeadQualified LeadStatus = "QUALIFIED"
	LeadConverted LeadStatus = "CONVERTED"
	LeadLost      LeadStatus = "LOST"
)

// DispatchEventType represents a dispatch lifecycle event.
type DispatchEventType string

const (
	DispatchAssigned  DispatchEventType = "ASSIGNED"
	DispatchEnRoute   DispatchEventType = "EN_ROUTE"
	DispatchArrived   DispatchEventType = "ARRIVED"
	DispatchCompleted DispatchEventType = "COMPLETED"
)

// RangePreset is a named shorthand for a reporting date range.
type RangePreset string

const (
	RangeLast7Days  RangePreset = "7d"
	RangeLast30Days RangePreset = "30d"
	RangeLast90Days RangePreset = "90d"
	RangeYearToDate RangePreset = "ytd"
	RangeCustom     RangePreset = "custom"
)

// DefaultRangePreset is the fallback for unrecognized preset strings.
// Unknown values resolving to the 30-day window is defined behavior: callers
// passing a bad preset get a sensible report instead of an error.
const DefaultRangePreset = RangeLast30Days

// ParseRangePreset maps a raw string to a RangePreset, falling back to
// DefaultRangePreset for anything it does not recognize.
func ParseRangePreset(s string) RangePreset {
	switch RangePreset(s) {
	case RangeLast7Days, RangeLast30Days, RangeLast90Days, RangeYearToDate, RangeCustom:
		return RangePreset(s)
	default:
		return DefaultRangePreset
	}
}
