package interval_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/internal/domain/shared/interval"
)

func date(t *testing.T, text string) time.Time {
	t.Helper()
	d, err := interval.ParseDate(text)
	require.NoError(t, err)
	return d
}

func TestParseDate(t *testing.T) {
	d, err := interval.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 29, d.Day())

	for _, bad := range []string{"", "2024/02/29", "2024-2-9", "29-02-2024", "2024-02-30", "2024-02-05T00:00:00"} {
		_, err := interval.ParseDate(bad)
		assert.ErrorIs(t, err, interval.ErrInvalidDateFormat, "input %q", bad)
	}
}

func TestIntersectionDays(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		want         int
	}{
		{"disjoint", "2024-01-01", "2024-01-05", "2024-01-10", "2024-01-15", 0},
		{"adjacent", "2024-01-01", "2024-01-05", "2024-01-05", "2024-01-10", 0},
		{"identical", "2024-01-01", "2024-01-08", "2024-01-01", "2024-01-08", 7},
		{"contained", "2024-01-01", "2024-01-31", "2024-01-10", "2024-01-12", 2},
		{"partial", "2024-01-01", "2024-01-10", "2024-01-08", "2024-01-20", 2},
		{"one day", "2024-01-01", "2024-01-10", "2024-01-09", "2024-01-20", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aStart, aEnd := date(t, tt.aStart), date(t, tt.aEnd)
			bStart, bEnd := date(t, tt.bStart), date(t, tt.bEnd)
			assert.Equal(t, tt.want, interval.IntersectionDays(aStart, aEnd, bStart, bEnd))
			// Symmetric in the two intervals.
			assert.Equal(t, tt.want, interval.IntersectionDays(bStart, bEnd, aStart, aEnd))
			assert.Equal(t, tt.want > 0, interval.Overlaps(aStart, aEnd, bStart, bEnd))
		})
	}
}

func TestDays(t *testing.T) {
	assert.Equal(t, 4, interval.Days(date(t, "2024-02-01"), date(t, "2024-02-05")))
	assert.Equal(t, 0, interval.Days(date(t, "2024-02-05"), date(t, "2024-02-01")))
}
