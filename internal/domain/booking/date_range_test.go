package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retreathq/service-booking/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange_ParsesCalendarDates(t *testing.T) {
	r, err := NewDateRange("2025-03-01", "2025-03-05")
	require.NoError(t, err)

	assert.Equal(t, day(1), r.Start())
	assert.Equal(t, day(5), r.End())
}

func TestNewDateRange_ParsesTimestamps(t *testing.T) {
	r, err := NewDateRange("2025-03-01T15:04:05Z", "2025-03-05T08:00:00Z")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.March, 1, 15, 4, 5, 0, time.UTC), r.Start())
}

func TestNewDateRange_MixedFormats(t *testing.T) {
	_, err := NewDateRange("2025-03-01", "2025-03-05T08:00:00Z")
	require.NoError(t, err)
}

func TestNewDateRange_InvalidDate(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		field      string
	}{
		{"garbage start", "not-a-date", "2025-03-05", "startDate"},
		{"garbage end", "2025-03-01", "soon", "endDate"},
		{"wrong layout", "01/03/2025", "2025-03-05", "startDate"},
		{"empty start", "", "2025-03-05", "startDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDateRange(tt.start, tt.end)
			require.Error(t, err)
			assert.True(t, domain.IsCode(err, domain.CodeInvalidDate))

			var de *domain.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.field, de.Field)
		})
	}
}

func TestNewDateRange_InvalidRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"start equals end", "2025-03-01", "2025-03-01"},
		{"end before start", "2025-03-05", "2025-03-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDateRange(tt.start, tt.end)
			require.Error(t, err)
			assert.True(t, domain.IsCode(err, domain.CodeInvalidRange))

			var de *domain.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, "endDate", de.Field)
		})
	}
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    DateRange
		b    DateRange
		want bool
	}{
		{"disjoint before", RangeOf(day(1), day(5)), RangeOf(day(6), day(9)), false},
		{"disjoint after", RangeOf(day(10), day(12)), RangeOf(day(1), day(5)), false},
		{"touching endpoints conflict", RangeOf(day(1), day(5)), RangeOf(day(5), day(9)), true},
		{"partial overlap", RangeOf(day(1), day(5)), RangeOf(day(4), day(8)), true},
		{"containment", RangeOf(day(1), day(10)), RangeOf(day(3), day(4)), true},
		{"identical", RangeOf(day(1), day(5)), RangeOf(day(1), day(5)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestDateRange_OverlapsScenario(t *testing.T) {
	a := mustRange(t, "2025-03-01", "2025-03-05")
	b := mustRange(t, "2025-03-04", "2025-03-08")
	c := mustRange(t, "2025-03-06", "2025-03-08")

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
	assert.True(t, b.Overlaps(c))
}
