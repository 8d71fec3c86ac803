// Package memory provides mutex-guarded in-memory implementations of the
// collection repositories. Used as test fixtures and as a zero-config demo
// storage mode.
package memory

import (
	"context"
	"sync"

	"fleetdesk/internal/domain/booking"
	"fleetdesk/internal/domain/catalog"
	"fleetdesk/internal/domain/settings"
	"fleetdesk/internal/domain/user"
)

// collection is the generic whole-slice store behind every repository.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

func (c *collection[T]) loadAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...), nil
}

func (c *collection[T]) saveAll(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
	return nil
}

type SettingsRepository struct{ collection[settings.Settings] }

func NewSettingsRepository() *SettingsRepository { return &SettingsRepository{} }

func (r *SettingsRepository) LoadAll(ctx context.Context) ([]settings.Settings, error) {
	return r.loadAll(ctx)
}

func (r *SettingsRepository) SaveAll(ctx context.Context, items []settings.Settings) error {
	return r.saveAll(ctx, items)
}

type ClassRepository struct{ collection[catalog.VehicleClass] }

func NewClassRepository() *ClassRepository { return &ClassRepository{} }

func (r *ClassRepository) LoadAll(ctx context.Context) ([]catalog.VehicleClass, error) {
	return r.loadAll(ctx)
}

func (r *ClassRepository) SaveAll(ctx context.Context, items []catalog.VehicleClass) error {
	return r.saveAll(ctx, items)
}

type VehicleRepository struct{ collection[catalog.Vehicle] }

func NewVehicleRepository() *VehicleRepository { return &VehicleRepository{} }

func (r *VehicleRepository) LoadAll(ctx context.Context) ([]catalog.Vehicle, error) {
	return r.loadAll(ctx)
}

func (r *VehicleRepository) SaveAll(ctx context.Context, items []catalog.Vehicle) error {
	return r.saveAll(ctx, items)
}

type BookingRepository struct{ collection[booking.Booking] }

func NewBookingRepository() *BookingRepository { return &BookingRepository{} }

func (r *BookingRepository) LoadAll(ctx context.Context) ([]booking.Booking, error) {
	return r.loadAll(ctx)
}

func (r *BookingRepository) SaveAll(ctx context.Context, items []booking.Booking) error {
	return r.saveAll(ctx, items)
}

type UserRepository struct{ collection[user.User] }

func NewUserRepository() *UserRepository { return &UserRepository{} }

func (r *UserRepository) LoadAll(ctx context.Context) ([]user.User, error) {
	return r.loadAll(ctx)
}

func (r *UserRepository) SaveAll(ctx context.Context, items []user.User) error {
	return r.saveAll(ctx, items)
}

var (
	_ settings.Repository       = (*SettingsRepository)(nil)
	_ catalog.ClassRepository   = (*ClassRepository)(nil)
	_ catalog.VehicleRepository = (*VehicleRepository)(nil)
	_ booking.Repository        = (*BookingRepository)(nil)
	_ user.Repository           = (*UserRepository)(nil)
)
