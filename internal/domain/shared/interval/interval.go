// Package interval provides calendar-day parsing and half-open interval
// arithmetic shared by availability checks and reporting.
package interval

import (
	"errors"
	"time"
)

// DateLayout is the only accepted textual date format.
const DateLayout = "2006-01-02"

var ErrInvalidDateFormat = errors.New("interval: date must match YYYY-MM-DD")

// ParseDate parses a date strictly matching YYYY-MM-DD. time.Parse accepts
// unpadded components, so the text is round-tripped to reject e.g. 2024-1-5.
func ParseDate(text string) (time.Time, error) {
	t, err := time.Parse(DateLayout, text)
	if err != nil || t.Format(DateLayout) != text {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// FormatDate renders a date back into the canonical YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Days returns the whole-day length of [start, end). Negative spans count
// as zero.
func Days(start, end time.Time) int {
	d := int(end.Sub(start).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// IntersectionDays returns the whole-day length of the intersection of two
// half-open intervals [aStart, aEnd) and [bStart, bEnd). The result is
// symmetric in the two intervals and never negative.
func IntersectionDays(aStart, aEnd, bStart, bEnd time.Time) int {
	start := maxTime(aStart, bStart)
	end := minTime(aEnd, bEnd)
	if !end.After(start) {
		return 0
	}
	return Days(start, end)
}

// Overlaps reports whether two half-open intervals share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(!aEnd.After(bStart) || !bEnd.After(aStart))
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
