package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"fieldops/internal/domain"
)

const dateKeyLayout = "2006-01-02"

// BuildTimeSeries returns one row per UTC calendar day spanning the range,
// inclusive on both ends, with all counters zero for days without activity.
// Completion and conversion events are bucketed by their own timestamp; when
// that timestamp falls outside the range the event is dropped rather than the
// series extended. Output size is O(days), so callers size ranges sensibly.
func (s *analyticsService) BuildTimeSeries(ctx context.Context, tenantID uuid.UUID, r domain.DateRange) ([]domain.TimeSeriesPoint, error) {
	var (
		payments []domain.PaymentEvent
		jobs     []domain.JobEvent
		leads    []domain.LeadEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		payments, err = s.analyticsRepo.ListPaymentEvents(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		jobs, err = s.analyticsRepo.ListJobEvents(gctx, tenantID, r)
		return err
	})
	g.Go(func() (err error) {
		leads, err = s.analyticsRepo.ListLeadEvents(gctx, tenantID, r)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics: time series: %w", err)
	}

	series, buckets := initDayBuckets(r)

	for _, p := range payments {
		if p.ProcessedAt == nil {
			continue
		}
		if pt, ok := buckets[dateKey(*p.ProcessedAt)]; ok {
			// Same amount under two names: chart consumers bind the revenue
			// line and the payments bars independently.
			pt.Revenue = pt.Revenue.Add(p.Amount)
			pt.Payments = pt.Payments.Add(p.Amount)
		}
	}

	for _, j := range jobs {
		if j.CreatedAt == nil {
			continue
		}
		if pt, ok := buckets[dateKey(*j.CreatedAt)]; ok {
			pt.JobsCreated++
		}
		if j.Status == domain.JobCompleted && j.ActualEnd != nil {
			if pt, ok := buckets[dateKey(*j.ActualEnd)]; ok {
				pt.JobsCompleted++
			}
		}
	}

	for _, l := range leads {
		if l.CreatedAt == nil {
			continue
		}
		if pt, ok := buckets[dateKey(*l.CreatedAt)]; ok {
			pt.LeadsCreated++
		}
		if l.Status == domain.LeadConverted && l.ConvertedAt != nil {
			if pt, ok := buckets[dateKey(*l.ConvertedAt)]; ok {
				pt.LeadsConverted++
			}
		}
	}

	points := make([]domain.TimeSeriesPoint, len(series))
	for i, pt := range series {
		points[i] = *pt
	}
	return points, nil
}

// initDayBuckets allocates one zeroed point per calendar day in the range and
// returns them in date order alongside a date-key index.
func initDayBuckets(r domain.DateRange) ([]*domain.TimeSeriesPoint, map[string]*domain.TimeSeriesPoint) {
	var series []*domain.TimeSeriesPoint
	buckets := make(map[string]*domain.TimeSeriesPoint)

	day := utcDate(r.StartDate)
	last := utcDate(r.EndDate)
	for !day.After(last) {
		pt := &domain.TimeSeriesPoint{Date: day.Format(dateKeyLayout)}
		series = append(series, pt)
		buckets[pt.Date] = pt
		day = day.AddDate(0, 0, 1)
	}
	return series, buckets
}

// utcDate truncates an instant to its UTC calendar date.
func utcDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.UTC().Format(dateKeyLayout)
}
