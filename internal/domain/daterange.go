package domain

import "time"

// DateRange is a concrete [start, end] instant pair for reporting queries.
type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Days returns the (possibly fractional) length of the range in days.
func (r DateRange) Days() float64 {
	return r.EndDate.Sub(r.StartDate).Hours() / 24
}

// ResolveDateRange maps a preset to concrete bounds relative to now.
//
// The relative presets end at now. RangeYearToDate starts at Jan 1 00:00 UTC
// of now's year. RangeCustom uses the supplied bounds verbatim when both are
// present and falls back to the 30-day default otherwise; callers parsing raw
// preset strings should go through ParseRangePreset first, which already maps
// unknown values onto the default. Pure function of its arguments.
func ResolveDateRange(preset RangePreset, customStart, customEnd *time.Time, now time.Time) DateRange {
	switch preset {
	case RangeLast7Days:
		return DateRange{StartDate: now.AddDate(0, 0, -7), EndDate: now}
	case RangeLast90Days:
		return DateRange{StartDate: now.AddDate(0, 0, -90), EndDate: now}
	case RangeYearToDate:
		return DateRange{
			StartDate: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   now,
		}
	case RangeCustom:
		if customStart != nil && customEnd != nil {
			return DateRange{StartDate: *customStart, EndDate: *customEnd}
		}
		return DateRange{StartDate: now.AddDate(0, 0, -30), EndDate: now}
	default:
		// RangeLast30Days and anything unrecognized.
		return DateRange{StartDate: now.AddDate(0, 0, -30), EndDate: now}
	}
}
