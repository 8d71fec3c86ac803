package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/internal/app/services/report"
	"fleetdesk/internal/domain/booking"
	"fleetdesk/internal/domain/catalog"
	"fleetdesk/internal/domain/shared/interval"
	"fleetdesk/internal/infra/storage/memory"
)

func newService(t *testing.T, bookings []booking.Booking) *report.Service {
	t.Helper()
	ctx := context.Background()

	classRepo := memory.NewClassRepository()
	require.NoError(t, classRepo.SaveAll(ctx, []catalog.VehicleClass{
		{ID: 1, Name: "Economy", Description: "Small", DailyPrice: 50},
		{ID: 2, Name: "SUV", Description: "Large", DailyPrice: 120},
	}))

	vehicleRepo := memory.NewVehicleRepository()
	require.NoError(t, vehicleRepo.SaveAll(ctx, []catalog.Vehicle{
		{Plate: "AA00AA", Brand: "Fiat", Model: "Panda", ClassID: 1, Status: catalog.StatusActive},
		{Plate: "BB11BB", Brand: "Jeep", Model: "Renegade", ClassID: 2, Status: catalog.StatusActive},
		{Plate: "CC22CC", Brand: "Opel", Model: "Corsa", ClassID: 1, Status: catalog.StatusInactive},
	}))

	bookingRepo := memory.NewBookingRepository()
	require.NoError(t, bookingRepo.SaveAll(ctx, bookings))

	return &report.Service{Classes: classRepo, Vehicles: vehicleRepo, Bookings: bookingRepo}
}

func TestDailyExtract(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, []booking.Booking{
		{Plate: "AA00AA", CustomerEmail: "ana@example.com", StartDate: "2024-02-01", EndDate: "2024-02-05", DurationDays: 4, Total: 200},
		{Plate: "BB11BB", CustomerEmail: "rui@example.com", StartDate: "2024-02-03", EndDate: "2024-02-10", DurationDays: 7, Total: 756},
		{Plate: "GONE99", CustomerEmail: "eva@example.com", StartDate: "2024-02-01", EndDate: "2024-02-09", DurationDays: 8, Total: 100},
		{Plate: "AA00AA", CustomerEmail: "eva@example.com", StartDate: "broken", EndDate: "2024-02-09", DurationDays: 3, Total: 999},
	})

	r, err := svc.DailyExtract(ctx, "2024-02-04")
	require.NoError(t, err)
	assert.False(t, r.Empty())
	assert.Equal(t, 3, r.Count, "malformed record skipped")
	assert.InDelta(t, 1056.0, r.TotalRevenue, 1e-9)
	assert.Equal(t, 19, r.TotalRentedDays)

	// GONE99 resolves to no vehicle: global totals include it, no class does.
	require.Len(t, r.RevenueByClass, 2)
	assert.Equal(t, catalog.ClassID(1), r.RevenueByClass[0].ClassID)
	assert.Equal(t, "Economy", r.RevenueByClass[0].Name)
	assert.InDelta(t, 200.0, r.RevenueByClass[0].Revenue, 1e-9)
	assert.InDelta(t, 756.0, r.RevenueByClass[1].Revenue, 1e-9)
}

func TestDailyExtractBoundaries(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, []booking.Booking{
		{Plate: "AA00AA", StartDate: "2024-02-01", EndDate: "2024-02-05", DurationDays: 4, Total: 200},
	})

	onStart, err := svc.DailyExtract(ctx, "2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, 1, onStart.Count, "start date is inclusive")

	onEnd, err := svc.DailyExtract(ctx, "2024-02-05")
	require.NoError(t, err)
	assert.True(t, onEnd.Empty(), "end date is exclusive")

	_, err = svc.DailyExtract(ctx, "05/02/2024")
	assert.ErrorIs(t, err, interval.ErrInvalidDateFormat)
}

func TestPeriodStatistics(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, []booking.Booking{
		{Plate: "AA00AA", StartDate: "2024-02-01", EndDate: "2024-02-05", DurationDays: 4, Total: 200},
		{Plate: "AA00AA", StartDate: "2024-02-20", EndDate: "2024-02-25", DurationDays: 5, Total: 250},
		{Plate: "BB11BB", StartDate: "2024-02-03", EndDate: "2024-02-10", DurationDays: 7, Total: 756},
		{Plate: "CC22CC", StartDate: "2024-03-10", EndDate: "2024-03-15", DurationDays: 5, Total: 225},
	})

	stats, err := svc.PeriodStatistics(ctx, "2024-02-01", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count, "march booking has zero overlap and is excluded")
	assert.InDelta(t, 1206.0, stats.TotalRevenue, 1e-9)
	assert.Equal(t, 16, stats.RentedDays)
	assert.InDelta(t, 402.0, stats.AvgRevenuePerBooking, 1e-9)

	require.Len(t, stats.ByClass, 2)
	economy, suv := stats.ByClass[0], stats.ByClass[1]
	assert.Equal(t, "Economy", economy.Name)
	assert.Equal(t, 2, economy.Count)
	assert.Equal(t, 9, economy.RentedDays)
	assert.InDelta(t, 450.0, economy.Revenue, 1e-9)
	assert.InDelta(t, 50.0, economy.RevenuePerDay, 1e-9)
	assert.InDelta(t, 108.0, suv.RevenuePerDay, 1e-9)

	require.Len(t, stats.ByVehicle, 2)
	assert.Equal(t, "AA00AA", stats.ByVehicle[0].Plate)
	assert.Equal(t, "Fiat", stats.ByVehicle[0].Brand)
	assert.Equal(t, 2, stats.ByVehicle[0].Count)

	// Partition consistency: per-class and per-vehicle revenue both sum to
	// the global revenue when every plate resolves.
	var classSum, vehicleSum float64
	for _, c := range stats.ByClass {
		classSum += c.Revenue
	}
	for _, v := range stats.ByVehicle {
		vehicleSum += v.Revenue
	}
	assert.InDelta(t, stats.TotalRevenue, classSum, 1e-9)
	assert.InDelta(t, stats.TotalRevenue, vehicleSum, 1e-9)
}

func TestPeriodStatisticsPartialOverlapCountsOverlapDaysOnly(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, []booking.Booking{
		{Plate: "AA00AA", StartDate: "2024-01-28", EndDate: "2024-02-04", DurationDays: 7, Total: 350},
	})

	stats, err := svc.PeriodStatistics(ctx, "2024-02-01", "2024-02-10")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 3, stats.RentedDays, "only the days inside the period count")
	assert.InDelta(t, 350.0, stats.TotalRevenue, 1e-9, "revenue counts the booking's full total")
}

func TestPeriodStatisticsRejectsBadPeriod(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)

	_, err := svc.PeriodStatistics(ctx, "2024-02-10", "2024-02-01")
	assert.ErrorIs(t, err, booking.ErrEndNotAfterStart)

	_, err = svc.PeriodStatistics(ctx, "2024-02-10", "2024-02-10")
	assert.ErrorIs(t, err, booking.ErrEndNotAfterStart)

	_, err = svc.PeriodStatistics(ctx, "bad", "2024-02-10")
	assert.ErrorIs(t, err, interval.ErrInvalidDateFormat)
}

func TestReclassifyingVehicleMovesHistory(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, []booking.Booking{
		{Plate: "AA00AA", StartDate: "2024-02-01", EndDate: "2024-02-05", DurationDays: 4, Total: 200},
	})

	before, err := svc.PeriodStatistics(ctx, "2024-02-01", "2024-03-01")
	require.NoError(t, err)
	require.Len(t, before.ByClass, 1)
	assert.Equal(t, catalog.ClassID(1), before.ByClass[0].ClassID)

	// Reassign the vehicle to the SUV class: its history follows.
	require.NoError(t, svc.Vehicles.SaveAll(ctx, []catalog.Vehicle{
		{Plate: "AA00AA", Brand: "Fiat", Model: "Panda", ClassID: 2, Status: catalog.StatusActive},
	}))
	after, err := svc.PeriodStatistics(ctx, "2024-02-01", "2024-03-01")
	require.NoError(t, err)
	require.Len(t, after.ByClass, 1)
	assert.Equal(t, catalog.ClassID(2), after.ByClass[0].ClassID)
}
