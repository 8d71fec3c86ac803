// Package pricing computes rental totals with duration-tiered discounts.
package pricing

import (
	"math"

	"fleetdesk/internal/domain/settings"
)

// Fallback percentages used when a tier is absent from the settings
// document. The asymmetry (0 / 10 / 20) is deliberate: only the first tier
// defaults to no discount.
const (
	fallbackUpTo3Days = 0.0
	fallbackDays4To7  = 10.0
	fallbackOver7Days = 20.0
)

// DiscountFor selects the discount percentage for a rental duration.
// Tiers are evaluated in order: up to 3 days, 4 to 7 days, over 7 days.
func DiscountFor(durationDays int, tiers settings.DiscountTiers) float64 {
	switch {
	case durationDays <= 3:
		return tierOrDefault(tiers.UpTo3Days, fallbackUpTo3Days)
	case durationDays <= 7:
		return tierOrDefault(tiers.Days4To7, fallbackDays4To7)
	default:
		return tierOrDefault(tiers.Over7Days, fallbackOver7Days)
	}
}

// Quote applies the tiered discount to a duration and daily rate, returning
// the chosen discount percentage and the discounted total.
func Quote(durationDays int, dailyPrice float64, tiers settings.DiscountTiers) (discountPercent, total float64) {
	discountPercent = DiscountFor(durationDays, tiers)
	total = Round2(float64(durationDays) * dailyPrice * (1 - discountPercent/100))
	return discountPercent, total
}

// Round2 rounds to 2 decimal places, half away from zero (math.Round).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func tierOrDefault(tier *float64, fallback float64) float64 {
	if tier == nil {
		return fallback
	}
	return *tier
}
