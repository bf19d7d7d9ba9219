package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"fieldops/internal/domain"
)

// BuildFunnel returns the lead-to-paid pipeline counts for the range. Each
// stage is counted by its own filter over the same period; the stages are not
// joined to each other. EstimatesSent counts every estimate created in range,
// whatever its delivery state.
func (s *analyticsService) BuildFunnel(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.Funnel, error) {
	var f domain.Funnel

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		f.TotalLeads, err = s.analyticsRepo.CountLeadsCreated(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		f.EstimatesSent, err = s.analyticsRepo.CountEstimatesCreated(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		f.Won, err = s.analyticsRepo.CountLeadsConverted(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		f.Lost, err = s.analyticsRepo.CountLeadsLost(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		f.JobsCreated, err = s.analyticsRepo.CountJobsCreated(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		f.InvoicesCreated, err = s.analyticsRepo.CountInvoicesCreated(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		f.InvoicesPaid, err = s.analyticsRepo.CountInvoicesPaid(gctx, tenantID, r)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics: funnel: %w", err)
	}

	if f.TotalLeads > 0 {
		f.ConversionRate = round2(float64(f.Won) / float64(f.TotalLeads) * 100)
	}
	return &f, nil
}

// BuildRevenueWaterfall returns billed-to-outstanding steps for the range.
// Starting and the adjustments are range-scoped flows while Ending is the
// current outstanding-balance snapshot, so the steps do not sum to Ending.
// That discrepancy is part of the contract; the chart labels each bar
// independently. Credits/Refunds is a placeholder that always reports zero
// until refunds are tracked.
func (s *analyticsService) BuildRevenueWaterfall(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.Waterfall, error) {
	var billed, collected, outstanding decimal.Decimal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		billed, err = s.analyticsRepo.SumInvoiceTotalsCreated(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		collected, err = s.analyticsRepo.SumCompletedPayments(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		outstanding, err = s.analyticsRepo.SumOutstandingBalances(gctx, tenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics: revenue waterfall: %w", err)
	}

	return &domain.Waterfall{
		Starting: billed,
		Adjustments: []domain.WaterfallStep{
			{Label: "Collected", Value: collected.Neg()},
			{Label: "Credits/Refunds", Value: decimal.Zero},
		},
		Ending: outstanding,
	}, nil
}

// BuildJobWaterfall returns job lifecycle counts for the range. Each
// adjustment is an independent absolute count for its stage, not a cumulative
// delta. Ending repeats the Paid count so charts have a closing marker.
func (s *analyticsService) BuildJobWaterfall(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.Waterfall, error) {
	var created, scheduled, inProgress, completed, invoiced, paid int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		created, err = s.analyticsRepo.CountJobsCreated(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		scheduled, err = s.analyticsRepo.CountJobsWithStatusUpdated(gctx, tenantID, domain.JobScheduled, r)
		return err
	})
	g.Go(func() (err error) {
		inProgress, err = s.analyticsRepo.CountJobsWithStatusUpdated(gctx, tenantID, domain.JobInProgress, r)
		return err
	})
	g.Go(func() (err error) {
		completed, err = s.analyticsRepo.CountJobsWithStatusUpdated(gctx, tenantID, domain.JobCompleted, r)
		return err
	})
	g.Go(func() (err error) {
		invoiced, err = s.analyticsRepo.CountJobsInvoiced(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		paid, err = s.analyticsRepo.CountJobsPaid(gctx, tenantID, r)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics: job waterfall: %w", err)
	}

	return &domain.Waterfall{
		Starting: decimal.NewFromInt(int64(created)),
		Adjustments: []domain.WaterfallStep{
			{Label: "Scheduled", Value: decimal.NewFromInt(int64(scheduled))},
			{Label: "In Progress", Value: decimal.NewFromInt(int64(inProgress))},
			{Label: "Completed", Value: decimal.NewFromInt(int64(completed))},
			{Label: "Invoiced", Value: decimal.NewFromInt(int64(invoiced))},
			{Label: "Paid", Value: decimal.NewFromInt(int64(paid))},
		},
		Ending: decimal.NewFromInt(int64(paid)),
	}, nil
}

// BuildDashboard runs all reporting engines for one range and bundles their
// output. The engines share nothing beyond the resolved range, so they run
// concurrently; the first failure aborts the whole call.
func (s *analyticsService) BuildDashboard(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) (*domain.Dashboard, error) {
	d := domain.Dashboard{Range: r}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kpis, err := s.ComputeKPIs(gctx, tenantID, r)
		if err != nil {
			return err
		}
		d.KPIs = *kpis
		return nil
	})
	g.Go(func() (err error) {
		d.TimeSeries, err = s.BuildTimeSeries(gctx, tenantID, r)
		return err
	})
	g.Go(func() error {
		funnel, err := s.BuildFunnel(gctx, tenantID, r)
		if err != nil {
			return err
		}
		d.Funnel = *funnel
		return nil
	})
	g.Go(func() error {
		wf, err := s.BuildRevenueWaterfall(gctx, tenantID, r)
		if err != nil {
			return err
		}
		d.RevenueWaterfall = *wf
		return nil
	})
	g.Go(func() error {
		wf, err := s.BuildJobWaterfall(gctx, tenantID, r)
		if err != nil {
			return err
		}
		d.JobWaterfall = *wf
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
