// Package rental orchestrates booking creation: interval validation,
// availability, price snapshot, discount and persistence.
package rental

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fleetdesk/internal/domain/booking"
	"fleetdesk/internal/domain/catalog"
	"fleetdesk/internal/domain/pricing"
	"fleetdesk/internal/domain/settings"
	"fleetdesk/internal/domain/user"
)

type Service struct {
	Settings settings.Repository
	Classes  catalog.ClassRepository
	Vehicles catalog.VehicleRepository
	Bookings booking.Repository
	Logger   *slog.Logger
}

// ActiveVehicles returns the fleet units offered for rental.
func (s *Service) ActiveVehicles(ctx context.Context) ([]catalog.Vehicle, error) {
	vehicles, err := s.Vehicles.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vehicles: %w", err)
	}
	return catalog.ActiveVehicles(vehicles), nil
}

// History returns the customer's bookings, in stored (start date) order.
func (s *Service) History(ctx context.Context, email string) ([]booking.Booking, error) {
	email = user.NormalizeEmail(email)
	all, err := s.Bookings.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	var own []booking.Booking
	for _, b := range all {
		if user.NormalizeEmail(b.CustomerEmail) == email {
			own = append(own, b)
		}
	}
	return own, nil
}

// Create validates and prices a new booking for an active vehicle, inserts
// it into the collection sorted by start date and persists the whole
// collection. The stored daily price and discount are snapshots taken at
// booking time; later catalog edits do not touch existing records.
func (s *Service) Create(ctx context.Context, customerEmail, plate, startText, endText string) (booking.Booking, error) {
	vehicles, err := s.Vehicles.LoadAll(ctx)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("load vehicles: %w", err)
	}
	vehicle, err := catalog.FindVehicle(plate, vehicles)
	if err != nil {
		return booking.Booking{}, err
	}
	if !vehicle.Active() {
		return booking.Booking{}, catalog.ErrVehicleNotFound
	}

	cfgItems, err := s.Settings.LoadAll(ctx)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("load settings: %w", err)
	}
	cfg := settings.First(cfgItems)

	days, err := booking.ValidateInterval(startText, endText, cfg.MaxRentalDays)
	if err != nil {
		return booking.Booking{}, err
	}

	bookings, err := s.Bookings.LoadAll(ctx)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("load bookings: %w", err)
	}
	start, end, err := booking.Booking{StartDate: startText, EndDate: endText}.Interval()
	if err != nil {
		return booking.Booking{}, err
	}
	if !booking.IsAvailable(vehicle.Plate, start, end, bookings) {
		return booking.Booking{}, booking.ErrUnavailable
	}

	classes, err := s.Classes.LoadAll(ctx)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("load classes: %w", err)
	}
	dailyPrice := catalog.DailyPriceForClass(vehicle.ClassID, classes)
	discount, total := pricing.Quote(days, dailyPrice, cfg.Discounts)

	record := booking.Booking{
		ID:              uuid.NewString(),
		CustomerEmail:   user.NormalizeEmail(customerEmail),
		Plate:           vehicle.Plate,
		StartDate:       startText,
		EndDate:         endText,
		DurationDays:    days,
		DailyPrice:      dailyPrice,
		DiscountPercent: discount,
		Total:           total,
		CreatedAt:       time.Now().UTC().Unix(),
	}
	bookings = append(bookings, record)
	booking.SortByStart(bookings)

	if err := s.Bookings.SaveAll(ctx, bookings); err != nil {
		return booking.Booking{}, fmt.Errorf("save bookings: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Info("booking created",
			slog.String("plate", record.Plate),
			slog.String("start", record.StartDate),
			slog.String("end", record.EndDate),
			slog.Float64("total", record.Total))
	}
	return record, nil
}
