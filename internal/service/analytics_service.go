package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"fieldops/internal/domain"
	"fieldops/internal/port"
)

const (
	// topClientLimit caps both client rankings.
	topClientLimit = 10
	// completionSampleLimit bounds the completion-time average. Tenants with
	// more qualifying jobs in range get an average over the first 1000 only.
	completionSampleLimit = 1000
	// unknownClientName labels ranking entries whose client cannot be resolved.
	unknownClientName = "Unknown"
)

// AnalyticsService is the read-only reporting engine: KPIs, daily time series,
// conversion funnel, and waterfall breakdowns for a tenant over a date range.
// Every call recomputes from current store state; there is no caching, so two
// calls with identical arguments against unchanged data return identical
// results. Any store error fails the whole call, never a partial result.
type AnalyticsService interface {
	ComputeKPIs(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.KPIs, error)
	BuildTimeSeries(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) ([]domain.TimeSeriesPoint, error)
	BuildFunnel(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.Funnel, error)
	BuildRevenueWaterfall(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.Waterfall, error)
	BuildJobWaterfall(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.Waterfall, error)
	BuildDashboard(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.Dashboard, error)
}

type analyticsService struct {
	analyticsRepo port.AnalyticsRepository
	clientRepo    port.ClientRepository
}

// NewAnalyticsService creates a new AnalyticsService implementation.
func NewAnalyticsService(analyticsRepo port.AnalyticsRepository, clientRepo port.ClientRepository) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		clientRepo:    clientRepo,
	}
}

func (s *analyticsService) ComputeKPIs(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.KPIs, error) {
	var (
		totalRevenue   decimal.Decimal
		outstanding    decimal.Decimal
		jobsCreated    int
		jobsCompleted  int
		activeByStatus map[domain.JobStatus]int
		leadsCreated   int
		leadsConverted int
		completions    []domain.JobCompletion
		dispatchCount  int
		clientPayments []domain.ClientPayment
		jobGroups      []domain.ClientJobGroup
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalRevenue, err = s.analyticsRepo.SumCompletedPayments(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		outstanding, err = s.analyticsRepo.SumOutstandingBalances(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		jobsCreated, err = s.analyticsRepo.CountJobsCreated(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		jobsCompleted, err = s.analyticsRepo.CountJobsWithStatusUpdated(gctx, tenantID, domain.JobCompleted, r)
		return err
	})
	g.Go(func() (err error) {
		activeByStatus, err = s.analyticsRepo.CountActiveJobsByStatus(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		leadsCreated, err = s.analyticsRepo.CountLeadsCreated(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		leadsConverted, err = s.analyticsRepo.CountLeadsConverted(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		completions, err = s.analyticsRepo.ListJobCompletions(gctx, tenantID, r, completionSampleLimit)
		return err
	})
	g.Go(func() (err error) {
		dispatchCount, err = s.analyticsRepo.CountDispatchEvents(gctx, tenantID, domain.DispatchAssigned, r)
		return err
	})
	g.Go(func() (err error) {
		clientPayments, err = s.analyticsRepo.ListClientPayments(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		jobGroups, err = s.analyticsRepo.TopClientsByJobCount(gctx, tenantID, r, topClientLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics: kpis: %w", err)
	}

	// Rate of conversions against creations in the same period. The two
	// counts are deliberately not the same cohort: a lead converted in range
	// may have been created before it.
	var conversionRate float64
	if leadsCreated > 0 {
		conversionRate = float64(leadsConverted) / float64(leadsCreated) * 100
	}

	var avgCompletionDays float64
	if len(completions) > 0 {
		var totalDays float64
		for _, c := range completions {
			totalDays += c.ActualEnd.Sub(c.CreatedAt).Hours() / 24
		}
		avgCompletionDays = totalDays / float64(len(completions))
	}

	days := r.Days()
	if days < 1 {
		days = 1
	}
	throughput := float64(dispatchCount) / days

	revenueGroups := groupRevenueByClient(clientPayments)

	names, err := s.resolveClientNames(ctx, revenueGroups, jobGroups)
	if err != nil {
		return nil, fmt.Errorf("analytics: kpis: %w", err)
	}

	topByRevenue := make([]domain.ClientRevenue, 0, len(revenueGroups))
	for _, g := range revenueGroups {
		topByRevenue = append(topByRevenue, domain.ClientRevenue{
			ClientID:   g.clientID,
			ClientName: nameOrUnknown(names, g.clientID),
			Revenue:    g.revenue,
		})
	}

	topByJobs := make([]domain.ClientJobCount, 0, len(jobGroups))
	for _, g := range jobGroups {
		topByJobs = append(topByJobs, domain.ClientJobCount{
			ClientID:   g.ClientID,
			ClientName: nameOrUnknown(names, g.ClientID),
			JobCount:   g.JobCount,
		})
	}

	if activeByStatus == nil {
		activeByStatus = map[domain.JobStatus]int{}
	}

	return &domain.KPIs{
		TotalRevenue:         totalRevenue,
		OutstandingInvoices:  outstanding,
		JobsCreated:          jobsCreated,
		JobsCompleted:        jobsCompleted,
		ActiveJobsByStatus:   activeByStatus,
		LeadConversionRate:   round2(conversionRate),
		AvgJobCompletionTime: round2(avgCompletionDays),
		DispatchThroughput:   round2(throughput),
		TopClientsByRevenue:  topByRevenue,
		TopClientsByJobCount: topByJobs,
	}, nil
}

// clientRevenueGroup is an intermediate revenue-per-client accumulation.
type clientRevenueGroup struct {
	clientID uuid.UUID
	revenue  decimal.Decimal
}

// groupRevenueByClient sums payment amounts per client and returns the top
// entries descending by revenue. Payments without a client are excluded.
func groupRevenueByClient(payments []domain.ClientPayment) []clientRevenueGroup {
	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, p := range payments {
		if p.ClientID == nil {
			continue
		}
		sums[*p.ClientID] = sums[*p.ClientID].Add(p.Amount)
	}

	groups := make([]clientRevenueGroup, 0, len(sums))
	for id, revenue := range sums {
		groups = append(groups, clientRevenueGroup{clientID: id, revenue: revenue})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].revenue.GreaterThan(groups[j].revenue)
	})
	if len(groups) > topClientLimit {
		groups = groups[:topClientLimit]
	}
	return groups
}

// resolveClientNames batches the name lookup for both rankings into one query.
func (s *analyticsService) resolveClientNames(ctx context.Context, revenueGroups []clientRevenueGroup, jobGroups []domain.ClientJobGroup) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{}, len(revenueGroups)+len(jobGroups))
	ids := make([]uuid.UUID, 0, len(revenueGroups)+len(jobGroups))
	for _, g := range revenueGroups {
		if _, ok := seen[g.clientID]; !ok {
			seen[g.clientID] = struct{}{}
			ids = append(ids, g.clientID)
		}
	}
	for _, g := range jobGroups {
		if _, ok := seen[g.ClientID]; !ok {
			seen[g.ClientID] = struct{}{}
			ids = append(ids, g.ClientID)
		}
	}
	return s.clientRepo.GetNames(ctx, ids)
}

func nameOrUnknown(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return unknownClientName
}

// round2 rounds to two decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
