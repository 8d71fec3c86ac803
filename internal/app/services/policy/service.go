// Package policy manages the global rental settings document.
package policy

import (
	"context"
	"fmt"
	"log/slog"

	"fleetdesk/internal/domain/settings"
)

type Service struct {
	Settings settings.Repository
	Logger   *slog.Logger
}

// Get returns the current policy, substituting the seeded defaults when no
// document has been saved yet.
func (s *Service) Get(ctx context.Context) (settings.Settings, error) {
	items, err := s.Settings.LoadAll(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if len(items) == 0 {
		return settings.Default(), nil
	}
	return settings.First(items), nil
}

// Update validates and persists the policy, wrapped back into the
// one-element sequence the settings document uses on disk.
func (s *Service) Update(ctx context.Context, cfg settings.Settings) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := s.Settings.SaveAll(ctx, []settings.Settings{cfg}); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Info("settings updated", slog.Int("max_rental_days", cfg.MaxRentalDays))
	}
	return nil
}
