package booking

import (
	"time"

	"github.com/retreathq/service-booking/internal/domain"
)

const dateOnlyLayout = "2006-01-02"

// DateRange is an inclusive [start, end] interval of booked dates.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange parses and validates a candidate interval. Each value is either
// an RFC 3339 timestamp or a plain YYYY-MM-DD calendar date; calendar dates
// are normalized to midnight UTC. The interval must have strictly positive
// duration.
func NewDateRange(startValue, endValue string) (DateRange, error) {
	start, err := parseDate(startValue)
	if err != nil {
		return DateRange{}, domain.NewInvalidDateError("startDate", startValue)
	}
	end, err := parseDate(endValue)
	if err != nil {
		return DateRange{}, domain.NewInvalidDateError("endDate", endValue)
	}
	if !end.After(start) {
		return DateRange{}, domain.NewInvalidRangeError()
	}
	return DateRange{start: start, end: end}, nil
}

// RangeOf builds a DateRange from already-validated instants, as when
// reconstructing from persistence.
func RangeOf(start, end time.Time) DateRange {
	return DateRange{start: start.UTC(), end: end.UTC()}
}

// Start returns the first booked instant.
func (r DateRange) Start() time.Time { return r.start }

// End returns the last booked instant.
func (r DateRange) End() time.Time { return r.end }

// Overlaps reports whether the two ranges share at least one day. Both
// endpoints are inclusive: a range ending the day another begins conflicts,
// since checkout day counts as occupied.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
