package term

import (
	"context"

	"fleetdesk/internal/domain/catalog"
	"fleetdesk/internal/domain/user"
)

func (m *Menus) clientMenu(ctx context.Context, account user.User) {
	for {
		m.Term.Printf("\n-------- Customer Menu --------\n")
		m.Term.Printf("1. Available vehicles\n2. Make a booking\n3. Booking history\n4. Sign out\n")
		choice, ok := m.Term.Prompt("Choose an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.showVehicles(ctx)
		case "2":
			m.makeBooking(ctx, account)
		case "3":
			m.showHistory(ctx, account)
		case "4":
			m.Term.Printf("Signing out...\n")
			return
		default:
			m.Term.Printf("Invalid option.\n")
		}
	}
}

func (m *Menus) showVehicles(ctx context.Context) {
	active, err := m.Rental.ActiveVehicles(ctx)
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("\n-------- Available Vehicles --------\n")
	if len(active) == 0 {
		m.Term.Printf("No vehicles are available.\n")
		return
	}
	for _, v := range active {
		m.Term.Printf("%s - %s %s (class %d)\n", v.Plate, v.Brand, v.Model, v.ClassID)
	}
}

func (m *Menus) makeBooking(ctx context.Context, account user.User) {
	active, err := m.Rental.ActiveVehicles(ctx)
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	if len(active) == 0 {
		m.Term.Printf("No active vehicles to book.\n")
		return
	}
	m.showVehicles(ctx)

	plate, ok := m.Term.Prompt("\nPlate to book: ")
	if !ok {
		return
	}
	if _, err := catalog.FindVehicle(plate, active); err != nil {
		m.Term.Printf("Plate not found or inactive.\n")
		return
	}
	start, ok := m.Term.Prompt("Start date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	end, ok := m.Term.Prompt("End date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	created, err := m.Rental.Create(ctx, account.Email, plate, start, end)
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("Booking created. Total: %.2f (discount %.0f%%).\n", created.Total, created.DiscountPercent)
}

func (m *Menus) showHistory(ctx context.Context, account user.User) {
	own, err := m.Rental.History(ctx, account.Email)
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("\n-------- Booking History --------\n")
	if len(own) == 0 {
		m.Term.Printf("You have no bookings yet.\n")
		return
	}
	for i, b := range own {
		m.Term.Printf("%d. %s | %s -> %s | %d days | total %.2f\n",
			i+1, b.Plate, b.StartDate, b.EndDate, b.DurationDays, b.Total)
	}
}
