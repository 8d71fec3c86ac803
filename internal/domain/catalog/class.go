// Package catalog holds the vehicle classes and the fleet, plus the pure
// lookup helpers the booking and reporting flows rely on.
package catalog

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrClassNotFound       = errors.New("catalog: class not found")
	ErrVehicleNotFound     = errors.New("catalog: vehicle not found")
	ErrDuplicateIdentifier = errors.New("catalog: class id already in use")
	ErrDuplicatePlate      = errors.New("catalog: plate already registered")
	ErrFieldsRequired      = errors.New("catalog: all fields are required")
	ErrNegativePrice       = errors.New("catalog: daily price must be non-negative")
)

// ClassID is an integer identifier. Legacy documents stored it either as a
// JSON number or a quoted string; both decode to the same typed value so the
// rest of the code compares plain ints.
type ClassID int

func (id *ClassID) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	text = strings.Trim(text, `"`)
	if text == "" || text == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return err
	}
	*id = ClassID(n)
	return nil
}

// VehicleClass describes a pricing category of the fleet.
type VehicleClass struct {
	ID          ClassID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DailyPrice  float64 `json:"daily_price"`
}

func (c VehicleClass) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Description) == "" {
		return ErrFieldsRequired
	}
	if c.DailyPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}

// ClassRepository persists the class collection wholesale.
type ClassRepository interface {
	LoadAll(ctx context.Context) ([]VehicleClass, error)
	SaveAll(ctx context.Context, items []VehicleClass) error
}

// DailyPriceForClass resolves a class id to its daily price. An unknown id
// yields 0 rather than an error: the lookup is degenerate but non-fatal.
func DailyPriceForClass(id ClassID, classes []VehicleClass) float64 {
	for _, c := range classes {
		if c.ID == id {
			return c.DailyPrice
		}
	}
	return 0
}

// ClassExists reports whether a class with the given id is defined.
func ClassExists(id ClassID, classes []VehicleClass) bool {
	for _, c := range classes {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ClassName resolves a class id to its display name, or a generic label.
func ClassName(id ClassID, classes []VehicleClass) string {
	for _, c := range classes {
		if c.ID == id {
			return c.Name
		}
	}
	return "Class " + strconv.Itoa(int(id))
}
