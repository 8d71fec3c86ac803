// Package report implements the financial reporting over the booking
// collection: the daily extract and the period statistics grouped by class
// and by vehicle.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"fleetdesk/internal/domain/booking"
	"fleetdesk/internal/domain/catalog"
	"fleetdesk/internal/domain/shared/interval"
)

type Service struct {
	Classes  catalog.ClassRepository
	Vehicles catalog.VehicleRepository
	Bookings booking.Repository
	Logger   *slog.Logger
}

// ClassRevenue is one row of the daily extract's per-class breakdown.
type ClassRevenue struct {
	ClassID catalog.ClassID `json:"class_id"`
	Name    string          `json:"name"`
	Revenue float64         `json:"revenue"`
}

// DailyReport lists the bookings active on a target date plus the day's
// totals. Bookings whose plate no longer resolves to a fleet vehicle count
// toward the global totals but appear in no class bucket.
type DailyReport struct {
	Date            string            `json:"date"`
	Bookings        []booking.Booking `json:"bookings"`
	TotalRevenue    float64           `json:"total_revenue"`
	Count           int               `json:"count"`
	TotalRentedDays int               `json:"total_rented_days"`
	RevenueByClass  []ClassRevenue    `json:"revenue_by_class"`
}

// Empty reports whether no booking was active on the target date.
func (r DailyReport) Empty() bool { return r.Count == 0 }

// DailyExtract selects the bookings where start ≤ target < end and
// aggregates revenue, count, rented days and a per-class breakdown.
func (s *Service) DailyExtract(ctx context.Context, targetText string) (DailyReport, error) {
	target, err := interval.ParseDate(targetText)
	if err != nil {
		return DailyReport{}, err
	}
	bookings, err := s.Bookings.LoadAll(ctx)
	if err != nil {
		return DailyReport{}, fmt.Errorf("load bookings: %w", err)
	}
	vehicles, err := s.Vehicles.LoadAll(ctx)
	if err != nil {
		return DailyReport{}, fmt.Errorf("load vehicles: %w", err)
	}
	classes, err := s.Classes.LoadAll(ctx)
	if err != nil {
		return DailyReport{}, fmt.Errorf("load classes: %w", err)
	}

	classByPlate := catalog.ClassByPlate(vehicles)
	out := DailyReport{Date: targetText}
	byClass := make(map[catalog.ClassID]float64)

	for _, b := range bookings {
		start, end, err := b.Interval()
		if err != nil {
			continue // malformed record, skip rather than abort the report
		}
		if target.Before(start) || !target.Before(end) {
			continue
		}
		out.Bookings = append(out.Bookings, b)
		out.TotalRevenue += b.Total
		out.TotalRentedDays += b.DurationDays
		out.Count++
		if classID, ok := classByPlate[b.Plate]; ok {
			byClass[classID] += b.Total
		}
	}

	for classID, revenue := range byClass {
		out.RevenueByClass = append(out.RevenueByClass, ClassRevenue{
			ClassID: classID,
			Name:    catalog.ClassName(classID, classes),
			Revenue: revenue,
		})
	}
	sort.Slice(out.RevenueByClass, func(i, j int) bool {
		return out.RevenueByClass[i].ClassID < out.RevenueByClass[j].ClassID
	})
	return out, nil
}

// ClassStats aggregates the bookings of one class over a period.
type ClassStats struct {
	ClassID       catalog.ClassID `json:"class_id"`
	Name          string          `json:"name"`
	Revenue       float64         `json:"revenue"`
	Count         int             `json:"count"`
	RentedDays    int             `json:"rented_days"`
	RevenuePerDay float64         `json:"revenue_per_day"`
}

// VehicleStats aggregates the bookings of one plate over a period.
type VehicleStats struct {
	Plate      string  `json:"plate"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	Revenue    float64 `json:"revenue"`
	Count      int     `json:"count"`
	RentedDays int     `json:"rented_days"`
}

// PeriodStats holds the global, per-class and per-vehicle aggregates for
// bookings intersecting an arbitrary period. Rented days count only the
// overlap with the period; revenue counts each intersecting booking's full
// total.
type PeriodStats struct {
	From                 string         `json:"from"`
	To                   string         `json:"to"`
	TotalRevenue         float64        `json:"total_revenue"`
	Count                int            `json:"count"`
	RentedDays           int            `json:"rented_days"`
	AvgRevenuePerBooking float64        `json:"avg_revenue_per_booking"`
	ByClass              []ClassStats   `json:"by_class"`
	ByVehicle            []VehicleStats `json:"by_vehicle"`
}

func (s PeriodStats) Empty() bool { return s.Count == 0 }

// PeriodStatistics aggregates every booking whose interval intersects
// [from, to) by at least one day. A booking's class is re-derived from the
// vehicle's current class assignment at call time, so reclassifying a
// vehicle moves its history to the new bucket.
func (s *Service) PeriodStatistics(ctx context.Context, fromText, toText string) (PeriodStats, error) {
	from, err := interval.ParseDate(fromText)
	if err != nil {
		return PeriodStats{}, err
	}
	to, err := interval.ParseDate(toText)
	if err != nil {
		return PeriodStats{}, err
	}
	if !to.After(from) {
		return PeriodStats{}, booking.ErrEndNotAfterStart
	}

	bookings, err := s.Bookings.LoadAll(ctx)
	if err != nil {
		return PeriodStats{}, fmt.Errorf("load bookings: %w", err)
	}
	vehicles, err := s.Vehicles.LoadAll(ctx)
	if err != nil {
		return PeriodStats{}, fmt.Errorf("load vehicles: %w", err)
	}
	classes, err := s.Classes.LoadAll(ctx)
	if err != nil {
		return PeriodStats{}, fmt.Errorf("load classes: %w", err)
	}

	vehicleByPlate := make(map[string]catalog.Vehicle, len(vehicles))
	for _, v := range vehicles {
		vehicleByPlate[v.Plate] = v
	}

	out := PeriodStats{From: fromText, To: toText}
	byClass := make(map[catalog.ClassID]*ClassStats)
	byVehicle := make(map[string]*VehicleStats)

	for _, b := range bookings {
		start, end, err := b.Interval()
		if err != nil {
			continue
		}
		overlap := interval.IntersectionDays(start, end, from, to)
		if overlap <= 0 {
			continue
		}

		out.Count++
		out.TotalRevenue += b.Total
		out.RentedDays += overlap

		if v, ok := vehicleByPlate[b.Plate]; ok {
			cls, ok := byClass[v.ClassID]
			if !ok {
				cls = &ClassStats{ClassID: v.ClassID, Name: catalog.ClassName(v.ClassID, classes)}
				byClass[v.ClassID] = cls
			}
			cls.Revenue += b.Total
			cls.Count++
			cls.RentedDays += overlap
		}

		vs, ok := byVehicle[b.Plate]
		if !ok {
			vs = &VehicleStats{Plate: b.Plate}
			if v, found := vehicleByPlate[b.Plate]; found {
				vs.Brand, vs.Model = v.Brand, v.Model
			}
			byVehicle[b.Plate] = vs
		}
		vs.Revenue += b.Total
		vs.Count++
		vs.RentedDays += overlap
	}

	if out.Count > 0 {
		out.AvgRevenuePerBooking = out.TotalRevenue / float64(out.Count)
	}
	for _, cls := range byClass {
		if cls.RentedDays > 0 {
			cls.RevenuePerDay = cls.Revenue / float64(cls.RentedDays)
		}
		out.ByClass = append(out.ByClass, *cls)
	}
	sort.Slice(out.ByClass, func(i, j int) bool { return out.ByClass[i].ClassID < out.ByClass[j].ClassID })
	for _, vs := range byVehicle {
		out.ByVehicle = append(out.ByVehicle, *vs)
	}
	sort.Slice(out.ByVehicle, func(i, j int) bool { return out.ByVehicle[i].Plate < out.ByVehicle[j].Plate })
	return out, nil
}
