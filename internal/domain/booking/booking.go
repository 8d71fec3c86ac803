// Package booking defines the rental booking record and the validation
// rules guarding its creation: date-range sanity, the maximum-duration
// policy and no-overlap availability per vehicle.
package booking

import (
	"context"
	"errors"
	"sort"
	"time"

	"fleetdesk/internal/domain/shared/interval"
)

var (
	ErrEndNotAfterStart       = errors.New("booking: end date must be after start date")
	ErrDurationExceedsMaximum = errors.New("booking: duration exceeds the maximum rental days")
	ErrUnavailable            = errors.New("booking: vehicle unavailable for the requested period")
)

// Booking is an immutable rental record. Dates are kept in their textual
// YYYY-MM-DD form: the collection is sorted lexically by start date (which
// matches chronology for the fixed format) and malformed persisted dates
// must degrade gracefully instead of failing a whole load.
type Booking struct {
	ID              string  `json:"id"`
	CustomerEmail   string  `json:"customer_email"`
	Plate           string  `json:"plate"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	DurationDays    int     `json:"duration_days"`
	DailyPrice      float64 `json:"daily_price"`
	DiscountPercent float64 `json:"discount_percent"`
	Total           float64 `json:"total"`
	CreatedAt       int64   `json:"created_at"`
}

// Interval parses the record's date pair.
func (b Booking) Interval() (start, end time.Time, err error) {
	start, err = interval.ParseDate(b.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = interval.ParseDate(b.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Repository persists the booking collection wholesale, sorted by start
// date ascending.
type Repository interface {
	LoadAll(ctx context.Context) ([]Booking, error)
	SaveAll(ctx context.Context, items []Booking) error
}

// ValidateInterval parses both dates and enforces ordering plus the
// maximum-duration policy, returning the rental length in whole days.
func ValidateInterval(startText, endText string, maxDays int) (int, error) {
	start, err := interval.ParseDate(startText)
	if err != nil {
		return 0, err
	}
	end, err := interval.ParseDate(endText)
	if err != nil {
		return 0, err
	}
	if !end.After(start) {
		return 0, ErrEndNotAfterStart
	}
	days := interval.Days(start, end)
	if days > maxDays {
		return 0, ErrDurationExceedsMaximum
	}
	return days, nil
}

// IsAvailable reports whether the candidate half-open interval overlaps none
// of the plate's existing bookings. Records with unparseable dates are
// skipped: a corrupt row must not block the rest of the collection.
func IsAvailable(plate string, start, end time.Time, existing []Booking) bool {
	for _, b := range existing {
		if b.Plate != plate {
			continue
		}
		bStart, bEnd, err := b.Interval()
		if err != nil {
			continue
		}
		if interval.Overlaps(start, end, bStart, bEnd) {
			return false
		}
	}
	return true
}

// SortByStart orders the collection by start date ascending, in place.
func SortByStart(items []Booking) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartDate < items[j].StartDate
	})
}
