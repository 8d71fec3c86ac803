package catalog

import (
	"context"
	"strings"
)

type VehicleStatus string

const (
	StatusActive   VehicleStatus = "active"
	StatusInactive VehicleStatus = "inactive"
)

// NormalizeStatus maps arbitrary stored text onto the two valid statuses,
// defaulting to active when the text matches neither.
func NormalizeStatus(raw string) VehicleStatus {
	if strings.ToLower(strings.TrimSpace(raw)) == string(StatusInactive) {
		return StatusInactive
	}
	return StatusActive
}

// Vehicle is one fleet unit, identified by its normalized uppercase plate.
type Vehicle struct {
	Plate   string        `json:"plate"`
	Brand   string        `json:"brand"`
	Model   string        `json:"model"`
	ClassID ClassID       `json:"class_id"`
	Status  VehicleStatus `json:"status"`
}

func (v Vehicle) Active() bool {
	return v.Status == StatusActive
}

// NormalizePlate uppercases and trims a plate for comparison and storage.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// VehicleRepository persists the fleet collection wholesale.
type VehicleRepository interface {
	LoadAll(ctx context.Context) ([]Vehicle, error)
	SaveAll(ctx context.Context, items []Vehicle) error
}

// FindVehicle returns the vehicle with the given plate, or ErrVehicleNotFound.
func FindVehicle(plate string, vehicles []Vehicle) (Vehicle, error) {
	plate = NormalizePlate(plate)
	for _, v := range vehicles {
		if v.Plate == plate {
			return v, nil
		}
	}
	return Vehicle{}, ErrVehicleNotFound
}

// ActiveVehicles filters the fleet down to units offered for rental.
func ActiveVehicles(vehicles []Vehicle) []Vehicle {
	active := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Active() {
			active = append(active, v)
		}
	}
	return active
}

// ClassByPlate maps plates to class ids for report grouping. Plates not in
// the fleet are simply absent from the map.
func ClassByPlate(vehicles []Vehicle) map[string]ClassID {
	m := make(map[string]ClassID, len(vehicles))
	for _, v := range vehicles {
		m[v.Plate] = v.ClassID
	}
	return m
}
