package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/internal/domain/booking"
	"fleetdesk/internal/domain/shared/interval"
)

func TestValidateInterval(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		maxDays    int
		wantDays   int
		wantErr    error
	}{
		{"four days", "2024-01-01", "2024-01-05", 7, 4, nil},
		{"exactly max", "2024-01-01", "2024-01-08", 7, 7, nil},
		{"bad start", "01-01-2024", "2024-01-05", 7, 0, interval.ErrInvalidDateFormat},
		{"bad end", "2024-01-01", "someday", 7, 0, interval.ErrInvalidDateFormat},
		{"end before start", "2024-01-10", "2024-01-05", 7, 0, booking.ErrEndNotAfterStart},
		{"end equals start", "2024-01-10", "2024-01-10", 7, 0, booking.ErrEndNotAfterStart},
		{"too long", "2024-01-01", "2024-01-20", 7, 0, booking.ErrDurationExceedsMaximum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := booking.ValidateInterval(tt.start, tt.end, tt.maxDays)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestIsAvailable(t *testing.T) {
	existing := []booking.Booking{
		{Plate: "AA00AA", StartDate: "2024-02-01", EndDate: "2024-02-05"},
		{Plate: "BB11BB", StartDate: "2024-02-01", EndDate: "2024-02-28"},
		{Plate: "AA00AA", StartDate: "not-a-date", EndDate: "2024-03-01"},
	}
	check := func(plate, start, end string) bool {
		s, err := interval.ParseDate(start)
		require.NoError(t, err)
		e, err := interval.ParseDate(end)
		require.NoError(t, err)
		return booking.IsAvailable(plate, s, e, existing)
	}

	assert.False(t, check("AA00AA", "2024-02-04", "2024-02-10"), "overlap by one day")
	assert.True(t, check("AA00AA", "2024-02-05", "2024-02-10"), "adjacent intervals do not overlap")
	assert.True(t, check("AA00AA", "2024-01-28", "2024-02-01"), "ends when the existing one starts")
	assert.False(t, check("AA00AA", "2024-01-28", "2024-02-02"))
	assert.False(t, check("AA00AA", "2024-02-02", "2024-02-03"), "fully contained")
	assert.True(t, check("CC22CC", "2024-02-01", "2024-02-05"), "other plates do not collide")
	// The malformed record is skipped, not treated as a blocking reservation.
	assert.True(t, check("AA00AA", "2024-02-20", "2024-02-25"))
}

func TestSortByStart(t *testing.T) {
	items := []booking.Booking{
		{ID: "b", StartDate: "2024-03-01"},
		{ID: "a", StartDate: "2024-01-15"},
		{ID: "c", StartDate: "2024-02-01"},
	}
	booking.SortByStart(items)
	assert.Equal(t, []string{"a", "c", "b"}, []string{items[0].ID, items[1].ID, items[2].ID})
}
