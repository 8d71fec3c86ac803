// Package fleet implements the administrator's catalog management: vehicle
// classes and the fleet itself.
package fleet

import (
	"context"
	"fmt"
	"log/slog"

	"fleetdesk/internal/domain/catalog"
)

type Service struct {
	Classes  catalog.ClassRepository
	Vehicles catalog.VehicleRepository
	Logger   *slog.Logger
}

// ListClasses returns the class collection as stored.
func (s *Service) ListClasses(ctx context.Context) ([]catalog.VehicleClass, error) {
	return s.Classes.LoadAll(ctx)
}

// CreateClass appends a new class after enforcing id uniqueness and the
// required-field checks.
func (s *Service) CreateClass(ctx context.Context, class catalog.VehicleClass) error {
	if err := class.Validate(); err != nil {
		return err
	}
	classes, err := s.Classes.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load classes: %w", err)
	}
	if catalog.ClassExists(class.ID, classes) {
		return catalog.ErrDuplicateIdentifier
	}
	classes = append(classes, class)
	if err := s.Classes.SaveAll(ctx, classes); err != nil {
		return fmt.Errorf("save classes: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Info("class created", slog.Int("id", int(class.ID)), slog.String("name", class.Name))
	}
	return nil
}

// UpdateClass replaces the stored record with the same id.
func (s *Service) UpdateClass(ctx context.Context, class catalog.VehicleClass) error {
	if err := class.Validate(); err != nil {
		return err
	}
	classes, err := s.Classes.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load classes: %w", err)
	}
	for i := range classes {
		if classes[i].ID == class.ID {
			classes[i] = class
			return s.Classes.SaveAll(ctx, classes)
		}
	}
	return catalog.ErrClassNotFound
}

// RemoveClass deletes a class. Vehicles referencing it are left untouched:
// their price lookups degrade to 0 until they are reassigned.
func (s *Service) RemoveClass(ctx context.Context, id catalog.ClassID) error {
	classes, err := s.Classes.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load classes: %w", err)
	}
	kept := classes[:0]
	for _, c := range classes {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(classes) {
		return catalog.ErrClassNotFound
	}
	return s.Classes.SaveAll(ctx, kept)
}

// ListVehicles returns the fleet as stored.
func (s *Service) ListVehicles(ctx context.Context) ([]catalog.Vehicle, error) {
	return s.Vehicles.LoadAll(ctx)
}

// AddVehicle registers a fleet unit. The plate is normalized to uppercase
// and must be unique; the class must exist at creation time.
func (s *Service) AddVehicle(ctx context.Context, v catalog.Vehicle) error {
	v.Plate = catalog.NormalizePlate(v.Plate)
	if v.Plate == "" || v.Brand == "" || v.Model == "" {
		return catalog.ErrFieldsRequired
	}
	v.Status = catalog.NormalizeStatus(string(v.Status))

	classes, err := s.Classes.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load classes: %w", err)
	}
	if !catalog.ClassExists(v.ClassID, classes) {
		return catalog.ErrClassNotFound
	}
	vehicles, err := s.Vehicles.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load vehicles: %w", err)
	}
	if _, err := catalog.FindVehicle(v.Plate, vehicles); err == nil {
		return catalog.ErrDuplicatePlate
	}
	vehicles = append(vehicles, v)
	if err := s.Vehicles.SaveAll(ctx, vehicles); err != nil {
		return fmt.Errorf("save vehicles: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Info("vehicle added", slog.String("plate", v.Plate), slog.Int("class", int(v.ClassID)))
	}
	return nil
}

// UpdateVehicle replaces the stored record with the same plate. The class
// reference is re-checked on every edit.
func (s *Service) UpdateVehicle(ctx context.Context, v catalog.Vehicle) error {
	v.Plate = catalog.NormalizePlate(v.Plate)
	v.Status = catalog.NormalizeStatus(string(v.Status))

	classes, err := s.Classes.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load classes: %w", err)
	}
	if !catalog.ClassExists(v.ClassID, classes) {
		return catalog.ErrClassNotFound
	}
	vehicles, err := s.Vehicles.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load vehicles: %w", err)
	}
	for i := range vehicles {
		if vehicles[i].Plate == v.Plate {
			vehicles[i] = v
			return s.Vehicles.SaveAll(ctx, vehicles)
		}
	}
	return catalog.ErrVehicleNotFound
}

// RemoveVehicle deletes a fleet unit by plate.
func (s *Service) RemoveVehicle(ctx context.Context, plate string) error {
	plate = catalog.NormalizePlate(plate)
	vehicles, err := s.Vehicles.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load vehicles: %w", err)
	}
	kept := vehicles[:0]
	for _, v := range vehicles {
		if v.Plate != plate {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(vehicles) {
		return catalog.ErrVehicleNotFound
	}
	return s.Vehicles.SaveAll(ctx, kept)
}
