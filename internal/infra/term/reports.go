package term

import "context"

func (m *Menus) dailyExtract(ctx context.Context) {
	date, ok := m.Term.PromptDate("\nExtract date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	extract, err := m.Reports.DailyExtract(ctx, date)
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("\n------ Daily Extract: %s ------\n", extract.Date)
	if extract.Empty() {
		m.Term.Printf("No bookings active on this date.\n")
		return
	}
	for _, b := range extract.Bookings {
		m.Term.Printf("%s | %s | %s -> %s | total %.2f\n",
			b.Plate, b.CustomerEmail, b.StartDate, b.EndDate, b.Total)
	}
	m.Term.Printf("\nActive bookings: %d\n", extract.Count)
	m.Term.Printf("Rented days: %d\n", extract.TotalRentedDays)
	m.Term.Printf("Total revenue: %.2f\n", extract.TotalRevenue)
	if len(extract.RevenueByClass) > 0 {
		m.Term.Printf("Revenue by class:\n")
		for _, row := range extract.RevenueByClass {
			m.Term.Printf("  %s: %.2f\n", row.Name, row.Revenue)
		}
	}
}

func (m *Menus) periodStatistics(ctx context.Context) {
	from, ok := m.Term.PromptDate("\nPeriod start (YYYY-MM-DD): ")
	if !ok {
		return
	}
	to, ok := m.Term.PromptDate("Period end (YYYY-MM-DD): ")
	if !ok {
		return
	}
	stats, err := m.Reports.PeriodStatistics(ctx, from, to)
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("\n------ Statistics: %s to %s ------\n", stats.From, stats.To)
	if stats.Empty() {
		m.Term.Printf("No bookings intersect this period.\n")
		return
	}
	m.Term.Printf("Bookings: %d\n", stats.Count)
	m.Term.Printf("Rented days in period: %d\n", stats.RentedDays)
	m.Term.Printf("Total revenue: %.2f\n", stats.TotalRevenue)
	m.Term.Printf("Average revenue per booking: %.2f\n", stats.AvgRevenuePerBooking)

	if len(stats.ByClass) > 0 {
		m.Term.Printf("\nBy class:\n")
		for _, cls := range stats.ByClass {
			m.Term.Printf("  %s: %.2f over %d bookings (%d days, %.2f/day)\n",
				cls.Name, cls.Revenue, cls.Count, cls.RentedDays, cls.RevenuePerDay)
		}
	}
	if len(stats.ByVehicle) > 0 {
		m.Term.Printf("\nBy vehicle:\n")
		for _, vs := range stats.ByVehicle {
			m.Term.Printf("  %s %s %s: %.2f over %d bookings (%d days)\n",
				vs.Plate, vs.Brand, vs.Model, vs.Revenue, vs.Count, vs.RentedDays)
		}
	}
}
