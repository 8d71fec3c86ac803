package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fleetdesk/internal/domain/booking"
	"fleetdesk/internal/domain/catalog"
	"fleetdesk/internal/domain/settings"
	"fleetdesk/internal/domain/user"
)

// replaceAll implements the wholesale save contract over a collection:
// delete everything, insert the new state. Mirrors the whole-file overwrite
// of the JSON store.
func replaceAll(ctx context.Context, col *mongo.Collection, docs []any) error {
	if _, err := col.DeleteMany(ctx, bson.D{}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}

type SettingsRepository struct {
	col *mongo.Collection
}

func (c *Client) Settings() *SettingsRepository {
	return &SettingsRepository{col: c.DB.Collection("settings")}
}

type settingsDocument struct {
	MaxRentalDays int      `bson:"maximum_rental_days"`
	UpTo3Days     *float64 `bson:"up_to_3_days,omitempty"`
	Days4To7      *float64 `bson:"days_4_to_7,omitempty"`
	Over7Days     *float64 `bson:"over_7_days,omitempty"`
}

func (r *SettingsRepository) LoadAll(ctx context.Context) ([]settings.Settings, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []settings.Settings
	for cur.Next(ctx) {
		var doc settingsDocument
		if err := cur.Decode(&doc); err != nil {
			continue
		}
		items = append(items, settings.Settings{
			MaxRentalDays: doc.MaxRentalDays,
			Discounts: settings.DiscountTiers{
				UpTo3Days: doc.UpTo3Days,
				Days4To7:  doc.Days4To7,
				Over7Days: doc.Over7Days,
			},
		})
	}
	return items, cur.Err()
}

func (r *SettingsRepository) SaveAll(ctx context.Context, items []settings.Settings) error {
	docs := make([]any, 0, len(items))
	for _, s := range items {
		docs = append(docs, settingsDocument{
			MaxRentalDays: s.MaxRentalDays,
			UpTo3Days:     s.Discounts.UpTo3Days,
			Days4To7:      s.Discounts.Days4To7,
			Over7Days:     s.Discounts.Over7Days,
		})
	}
	return replaceAll(ctx, r.col, docs)
}

type ClassRepository struct {
	col *mongo.Collection
}

func (c *Client) Classes() *ClassRepository {
	return &ClassRepository{col: c.DB.Collection("classes")}
}

type classDocument struct {
	ID          int     `bson:"_id"`
	Name        string  `bson:"name"`
	Description string  `bson:"description"`
	DailyPrice  float64 `bson:"daily_price"`
}

func (r *ClassRepository) LoadAll(ctx context.Context) ([]catalog.VehicleClass, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []catalog.VehicleClass
	for cur.Next(ctx) {
		var doc classDocument
		if err := cur.Decode(&doc); err != nil {
			continue
		}
		items = append(items, catalog.VehicleClass{
			ID:          catalog.ClassID(doc.ID),
			Name:        doc.Name,
			Description: doc.Description,
			DailyPrice:  doc.DailyPrice,
		})
	}
	return items, cur.Err()
}

func (r *ClassRepository) SaveAll(ctx context.Context, items []catalog.VehicleClass) error {
	docs := make([]any, 0, len(items))
	for _, c := range items {
		docs = append(docs, classDocument{
			ID:          int(c.ID),
			Name:        c.Name,
			Description: c.Description,
			DailyPrice:  c.DailyPrice,
		})
	}
	return replaceAll(ctx, r.col, docs)
}

type VehicleRepository struct {
	col *mongo.Collection
}

func (c *Client) Vehicles() *VehicleRepository {
	return &VehicleRepository{col: c.DB.Collection("vehicles")}
}

type vehicleDocument struct {
	Plate   string `bson:"_id"`
	Brand   string `bson:"brand"`
	Model   string `bson:"model"`
	ClassID int    `bson:"class_id"`
	Status  string `bson:"status"`
}

func (r *VehicleRepository) LoadAll(ctx context.Context) ([]catalog.Vehicle, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []catalog.Vehicle
	for cur.Next(ctx) {
		var doc vehicleDocument
		if err := cur.Decode(&doc); err != nil {
			continue
		}
		items = append(items, catalog.Vehicle{
			Plate:   doc.Plate,
			Brand:   doc.Brand,
			Model:   doc.Model,
			ClassID: catalog.ClassID(doc.ClassID),
			Status:  catalog.NormalizeStatus(doc.Status),
		})
	}
	return items, cur.Err()
}

func (r *VehicleRepository) SaveAll(ctx context.Context, items []catalog.Vehicle) error {
	docs := make([]any, 0, len(items))
	for _, v := range items {
		docs = append(docs, vehicleDocument{
			Plate:   v.Plate,
			Brand:   v.Brand,
			Model:   v.Model,
			ClassID: int(v.ClassID),
			Status:  string(v.Status),
		})
	}
	return replaceAll(ctx, r.col, docs)
}

type BookingRepository struct {
	col *mongo.Collection
}

func (c *Client) Bookings() *BookingRepository {
	return &BookingRepository{col: c.DB.Collection("bookings")}
}

type bookingDocument struct {
	ID              string  `bson:"_id"`
	CustomerEmail   string  `bson:"customer_email"`
	Plate           string  `bson:"plate"`
	StartDate       string  `bson:"start_date"`
	EndDate         string  `bson:"end_date"`
	DurationDays    int     `bson:"duration_days"`
	DailyPrice      float64 `bson:"daily_price"`
	DiscountPercent float64 `bson:"discount_percent"`
	Total           float64 `bson:"total"`
	CreatedAt       int64   `bson:"created_at"`
}

func (r *BookingRepository) LoadAll(ctx context.Context) ([]booking.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []booking.Booking
	for cur.Next(ctx) {
		var doc bookingDocument
		if err := cur.Decode(&doc); err != nil {
			continue
		}
		items = append(items, booking.Booking{
			ID:              doc.ID,
			CustomerEmail:   doc.CustomerEmail,
			Plate:           doc.Plate,
			StartDate:       doc.StartDate,
			EndDate:         doc.EndDate,
			DurationDays:    doc.DurationDays,
			DailyPrice:      doc.DailyPrice,
			DiscountPercent: doc.DiscountPercent,
			Total:           doc.Total,
			CreatedAt:       doc.CreatedAt,
		})
	}
	return items, cur.Err()
}

func (r *BookingRepository) SaveAll(ctx context.Context, items []booking.Booking) error {
	docs := make([]any, 0, len(items))
	for _, b := range items {
		docs = append(docs, bookingDocument{
			ID:              b.ID,
			CustomerEmail:   b.CustomerEmail,
			Plate:           b.Plate,
			StartDate:       b.StartDate,
			EndDate:         b.EndDate,
			DurationDays:    b.DurationDays,
			DailyPrice:      b.DailyPrice,
			DiscountPercent: b.DiscountPercent,
			Total:           b.Total,
			CreatedAt:       b.CreatedAt,
		})
	}
	return replaceAll(ctx, r.col, docs)
}

type UserRepository struct {
	col *mongo.Collection
}

func (c *Client) Users() *UserRepository {
	return &UserRepository{col: c.DB.Collection("users")}
}

type userDocument struct {
	Email    string `bson:"_id"`
	Role     string `bson:"role"`
	Password string `bson:"password,omitempty"`
}

func (r *UserRepository) LoadAll(ctx context.Context) ([]user.User, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []user.User
	for cur.Next(ctx) {
		var doc userDocument
		if err := cur.Decode(&doc); err != nil {
			continue
		}
		items = append(items, user.User{
			Email:    doc.Email,
			Role:     user.Role(doc.Role),
			Password: doc.Password,
		})
	}
	return items, cur.Err()
}

func (r *UserRepository) SaveAll(ctx context.Context, items []user.User) error {
	docs := make([]any, 0, len(items))
	for _, u := range items {
		docs = append(docs, userDocument{
			Email:    u.Email,
			Role:     string(u.Role),
			Password: u.Password,
		})
	}
	return replaceAll(ctx, r.col, docs)
}

var (
	_ settings.Repository       = (*SettingsRepository)(nil)
	_ catalog.ClassRepository   = (*ClassRepository)(nil)
	_ catalog.VehicleRepository = (*VehicleRepository)(nil)
	_ booking.Repository        = (*BookingRepository)(nil)
	_ user.Repository           = (*UserRepository)(nil)
)
