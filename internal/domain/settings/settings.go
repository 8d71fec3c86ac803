// Package settings holds the global rental policy: the maximum rental
// duration and the duration-tiered discount table.
package settings

import (
	"context"
	"errors"
)

var ErrMaxDaysInvalid = errors.New("settings: maximum rental days must be at least 1")

// DefaultMaxRentalDays applies when no settings document has been saved yet.
const DefaultMaxRentalDays = 7

// DiscountTiers keeps the three duration tiers. Fields are pointers so an
// unset tier is distinguishable from an explicit 0%: each tier has its own
// fallback (0%, 10%, 20%) applied by the pricing engine.
type DiscountTiers struct {
	UpTo3Days *float64 `json:"up_to_3_days,omitempty"`
	Days4To7  *float64 `json:"days_4_to_7,omitempty"`
	Over7Days *float64 `json:"over_7_days,omitempty"`
}

type Settings struct {
	MaxRentalDays int           `json:"maximum_rental_days"`
	Discounts     DiscountTiers `json:"discount_tiers"`
}

// Default returns the seed policy for a fresh installation: a 7-day cap
// and all three tiers explicitly at 0%.
func Default() Settings {
	zero := 0.0
	return Settings{
		MaxRentalDays: DefaultMaxRentalDays,
		Discounts: DiscountTiers{
			UpTo3Days: &zero,
			Days4To7:  &zero,
			Over7Days: &zero,
		},
	}
}

// Validate checks the invariants enforced when an administrator edits the
// policy. Discount percentages are deliberately free-form.
func (s Settings) Validate() error {
	if s.MaxRentalDays < 1 {
		return ErrMaxDaysInvalid
	}
	return nil
}

// Repository loads and stores the singleton settings document. LoadAll
// follows the whole-collection contract used by every other collection; the
// document travels wrapped in a one-element sequence on disk.
type Repository interface {
	LoadAll(ctx context.Context) ([]Settings, error)
	SaveAll(ctx context.Context, items []Settings) error
}

// First unwraps the one-element sequence, falling back to an empty value
// eligible for per-field defaults when the document is missing.
func First(items []Settings) Settings {
	if len(items) == 0 {
		return Settings{MaxRentalDays: DefaultMaxRentalDays}
	}
	s := items[0]
	if s.MaxRentalDays < 1 {
		s.MaxRentalDays = DefaultMaxRentalDays
	}
	return s
}
