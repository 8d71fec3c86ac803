package term

import (
	"context"
	"strconv"

	"fleetdesk/internal/domain/catalog"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (m *Menus) adminMenu(ctx context.Context) {
	for {
		m.Term.Printf("\n-------- Administrator Menu --------\n")
		m.Term.Printf("1. General settings\n2. Class management\n3. Fleet management\n4. Daily extract\n5. Statistics\n6. Sign out\n")
		choice, ok := m.Term.Prompt("Choose an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.editSettings(ctx)
		case "2":
			m.classMenu(ctx)
		case "3":
			m.fleetMenu(ctx)
		case "4":
			m.dailyExtract(ctx)
		case "5":
			m.periodStatistics(ctx)
		case "6":
			m.Term.Printf("Leaving the administrator menu...\n")
			return
		default:
			m.Term.Printf("Invalid option.\n")
		}
	}
}

func (m *Menus) editSettings(ctx context.Context) {
	cfg, err := m.Policy.Get(ctx)
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("\n------ General Settings ------\n")
	m.Term.Printf("Current maximum rental days: %d\n", cfg.MaxRentalDays)
	m.Term.Printf("Current discounts (%%):\n")
	m.Term.Printf("  Up to 3 days: %s\n", tierText(cfg.Discounts.UpTo3Days))
	m.Term.Printf("  4 to 7 days: %s\n", tierText(cfg.Discounts.Days4To7))
	m.Term.Printf("  Over 7 days: %s\n", tierText(cfg.Discounts.Over7Days))

	maxDays, ok := m.Term.promptInt("New maximum rental days (ENTER to keep): ", cfg.MaxRentalDays)
	if !ok {
		return
	}
	cfg.MaxRentalDays = maxDays
	if cfg.Discounts.UpTo3Days, ok = m.promptTier("New discount up to 3 days (%)", cfg.Discounts.UpTo3Days); !ok {
		return
	}
	if cfg.Discounts.Days4To7, ok = m.promptTier("New discount 4-7 days (%)", cfg.Discounts.Days4To7); !ok {
		return
	}
	if cfg.Discounts.Over7Days, ok = m.promptTier("New discount over 7 days (%)", cfg.Discounts.Over7Days); !ok {
		return
	}

	if err := m.Policy.Update(ctx, cfg); err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("Settings updated and saved.\n")
}

func tierText(tier *float64) string {
	if tier == nil {
		return "(default)"
	}
	return formatFloat(*tier) + "%"
}

func (m *Menus) promptTier(label string, current *float64) (*float64, bool) {
	text, ok := m.Term.Prompt(label + " [current " + tierText(current) + "] (ENTER to keep): ")
	if !ok {
		return current, false
	}
	if text == "" {
		return current, true
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		m.Term.Printf("Invalid value, keeping the current discount.\n")
		return current, true
	}
	return &v, true
}

func (m *Menus) classMenu(ctx context.Context) {
	for {
		m.Term.Printf("\n------ Class Management ------\n")
		m.Term.Printf("1. List classes\n2. Create class\n3. Edit class\n4. Remove class\n5. Back\n")
		choice, ok := m.Term.Prompt("Option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.listClasses(ctx)
		case "2":
			m.createClass(ctx)
		case "3":
			m.editClass(ctx)
		case "4":
			m.removeClass(ctx)
		case "5":
			return
		default:
			m.Term.Printf("Invalid option.\n")
		}
	}
}

func (m *Menus) listClasses(ctx context.Context) {
	classes, err := m.Fleet.ListClasses(ctx)
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("\n------ Classes ------\n")
	if len(classes) == 0 {
		m.Term.Printf("No classes defined.\n")
		return
	}
	for _, c := range classes {
		m.Term.Printf("ID %d | %s - %s | %.2f/day\n", c.ID, c.Name, c.Description, c.DailyPrice)
	}
}

func (m *Menus) createClass(ctx context.Context) {
	m.listClasses(ctx)
	id, ok := m.Term.promptInt("\nNew class ID: ", -1)
	if !ok {
		return
	}
	name, ok := m.Term.Prompt("Class name: ")
	if !ok {
		return
	}
	description, ok := m.Term.Prompt("Description: ")
	if !ok {
		return
	}
	price, ok := m.Term.promptFloat("Daily price: ", 0)
	if !ok {
		return
	}
	err := m.Fleet.CreateClass(ctx, catalog.VehicleClass{
		ID:          catalog.ClassID(id),
		Name:        name,
		Description: description,
		DailyPrice:  price,
	})
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("Class created.\n")
}

func (m *Menus) editClass(ctx context.Context) {
	classes, err := m.Fleet.ListClasses(ctx)
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	if len(classes) == 0 {
		m.Term.Printf("No classes to edit.\n")
		return
	}
	m.listClasses(ctx)
	id, ok := m.Term.promptInt("\nID of the class to edit: ", -1)
	if !ok {
		return
	}
	var current *catalog.VehicleClass
	for i := range classes {
		if classes[i].ID == catalog.ClassID(id) {
			current = &classes[i]
			break
		}
	}
	if current == nil {
		m.Term.Printf("Class not found.\n")
		return
	}

	m.Term.Printf("ENTER keeps the current value.\n")
	name, ok := m.Term.promptText("Name ["+current.Name+"]: ", current.Name)
	if !ok {
		return
	}
	description, ok := m.Term.promptText("Description ["+current.Description+"]: ", current.Description)
	if !ok {
		return
	}
	price, ok := m.Term.promptFloat("Daily price ["+formatFloat(current.DailyPrice)+"]: ", current.DailyPrice)
	if !ok {
		return
	}
	err = m.Fleet.UpdateClass(ctx, catalog.VehicleClass{
		ID:          current.ID,
		Name:        name,
		Description: description,
		DailyPrice:  price,
	})
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("Class updated.\n")
}

func (m *Menus) removeClass(ctx context.Context) {
	m.listClasses(ctx)
	id, ok := m.Term.promptInt("\nID of the class to remove: ", -1)
	if !ok {
		return
	}
	if err := m.Fleet.RemoveClass(ctx, catalog.ClassID(id)); err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("Class removed.\n")
}

func (m *Menus) fleetMenu(ctx context.Context) {
	for {
		m.Term.Printf("\n------ Fleet Management ------\n")
		m.Term.Printf("1. List vehicles\n2. Add vehicle\n3. Edit vehicle\n4. Remove vehicle\n5. Back\n")
		choice, ok := m.Term.Prompt("Option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.listVehicles(ctx)
		case "2":
			m.addVehicle(ctx)
		case "3":
			m.editVehicle(ctx)
		case "4":
			m.removeVehicle(ctx)
		case "5":
			return
		default:
			m.Term.Printf("Invalid option.\n")
		}
	}
}

func (m *Menus) listVehicles(ctx context.Context) {
	vehicles, err := m.Fleet.ListVehicles(ctx)
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("\n------ Fleet ------\n")
	if len(vehicles) == 0 {
		m.Term.Printf("No vehicles registered.\n")
		return
	}
	for _, v := range vehicles {
		m.Term.Printf("%s | %s %s | class %d | status: %s\n", v.Plate, v.Brand, v.Model, v.ClassID, v.Status)
	}
}

func (m *Menus) addVehicle(ctx context.Context) {
	m.listVehicles(ctx)
	plate, ok := m.Term.Prompt("\nPlate: ")
	if !ok {
		return
	}
	brand, ok := m.Term.Prompt("Brand: ")
	if !ok {
		return
	}
	model, ok := m.Term.Prompt("Model: ")
	if !ok {
		return
	}
	classID, ok := m.Term.promptInt("Class ID: ", -1)
	if !ok {
		return
	}
	status, ok := m.Term.Prompt("Status (active/inactive): ")
	if !ok {
		return
	}
	err := m.Fleet.AddVehicle(ctx, catalog.Vehicle{
		Plate:   plate,
		Brand:   brand,
		Model:   model,
		ClassID: catalog.ClassID(classID),
		Status:  catalog.VehicleStatus(status),
	})
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("Vehicle added.\n")
}

func (m *Menus) editVehicle(ctx context.Context) {
	vehicles, err := m.Fleet.ListVehicles(ctx)
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	if len(vehicles) == 0 {
		m.Term.Printf("No vehicles to edit.\n")
		return
	}
	m.listVehicles(ctx)
	plate, ok := m.Term.Prompt("\nPlate of the vehicle to edit: ")
	if !ok {
		return
	}
	current, err := catalog.FindVehicle(plate, vehicles)
	if err != nil {
		m.Term.Printf("Vehicle not found.\n")
		return
	}

	m.Term.Printf("ENTER keeps the current value.\n")
	brand, ok := m.Term.promptText("Brand ["+current.Brand+"]: ", current.Brand)
	if !ok {
		return
	}
	model, ok := m.Term.promptText("Model ["+current.Model+"]: ", current.Model)
	if !ok {
		return
	}
	classID, ok := m.Term.promptInt("Class ID: ", int(current.ClassID))
	if !ok {
		return
	}
	status, ok := m.Term.promptText("Status (active/inactive) ["+string(current.Status)+"]: ", string(current.Status))
	if !ok {
		return
	}
	err = m.Fleet.UpdateVehicle(ctx, catalog.Vehicle{
		Plate:   current.Plate,
		Brand:   brand,
		Model:   model,
		ClassID: catalog.ClassID(classID),
		Status:  catalog.VehicleStatus(status),
	})
	if err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("Vehicle updated.\n")
}

func (m *Menus) removeVehicle(ctx context.Context) {
	m.listVehicles(ctx)
	plate, ok := m.Term.Prompt("\nPlate of the vehicle to remove: ")
	if !ok {
		return
	}
	if err := m.Fleet.RemoveVehicle(ctx, plate); err != nil {
		m.Term.Printf("Error: %v\n", err)
		return
	}
	m.Term.Printf("Vehicle removed.\n")
}
