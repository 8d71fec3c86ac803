package policy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/internal/app/services/policy"
	"fleetdesk/internal/domain/settings"
	"fleetdesk/internal/infra/storage/memory"
)

func TestGetFallsBackToDefaults(t *testing.T) {
	svc := &policy.Service{Settings: memory.NewSettingsRepository()}

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultMaxRentalDays, cfg.MaxRentalDays)
	require.NotNil(t, cfg.Discounts.UpTo3Days)
	assert.Zero(t, *cfg.Discounts.UpTo3Days)
}

func TestUpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSettingsRepository()
	svc := &policy.Service{Settings: repo}

	ten := 10.0
	err := svc.Update(ctx, settings.Settings{
		MaxRentalDays: 14,
		Discounts:     settings.DiscountTiers{Days4To7: &ten},
	})
	require.NoError(t, err)

	// Saved as the one-element sequence the disk format uses.
	items, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	cfg, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.MaxRentalDays)
	require.NotNil(t, cfg.Discounts.Days4To7)
	assert.Equal(t, 10.0, *cfg.Discounts.Days4To7)
	assert.Nil(t, cfg.Discounts.Over7Days)
}

func TestUpdateRejectsInvalidMaximum(t *testing.T) {
	svc := &policy.Service{Settings: memory.NewSettingsRepository()}

	err := svc.Update(context.Background(), settings.Settings{MaxRentalDays: 0})
	assert.ErrorIs(t, err, settings.ErrMaxDaysInvalid)
}
