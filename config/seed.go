package config

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-pricing/models"
)

// demoID derives a stable ID so the seeded records can be addressed the same
// way on every start.
func demoID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("hotel-pricing/demo/"+name)).String()
}

func price(v float64) *float64 { return &v }

// SeedDatabase inserts a demo hotel with rooms and bookings if no hotel exists.
func SeedDatabase(db *gorm.DB, slogger *slog.Logger) error {
	var hotelCount int64
	if err := db.Model(&models.Hotel{}).Count(&hotelCount).Error; err != nil {
		return err
	}
	if hotelCount > 0 {
		slogger.Info("demo data already present, skipping seed")
		return nil
	}

	hotel := models.Hotel{
		ID:      demoID("hotel"),
		Name:    "Demo Hotel",
		Address: "1 Example Street",
		Phone:   "+1 555 0100",
		Email:   "frontdesk@demo-hotel.local",
	}

	rooms := []models.Room{
		{ID: demoID("room-101"), HotelID: hotel.ID, RoomNumber: "101", Type: "Standard", Status: "available", Floor: "1",
			PriceByHour: price(10), PriceByNight: price(100)},
		{ID: demoID("room-102"), HotelID: hotel.ID, RoomNumber: "102", Type: "Deluxe", Status: "available", Floor: "1",
			PriceByHour: price(20), PriceByNight: price(100)},
		// not priced yet
		{ID: demoID("room-201"), HotelID: hotel.ID, RoomNumber: "201", Type: "Suite", Status: "maintenance", Floor: "2"},
	}

	bookings := []models.Booking{
		{ID: demoID("booking-two-nights"), HotelID: hotel.ID, RoomID: rooms[0].ID, CustomerName: "Nightly Guest",
			Status: "confirmed", BookIn: "2024-01-01", Eta: "14:00", BookOut: "2024-01-03", Etd: "14:00"},
		{ID: demoID("booking-short-stay"), HotelID: hotel.ID, RoomID: rooms[0].ID, CustomerName: "Day Guest",
			Status: "confirmed", BookIn: "2024-01-01", Eta: "09:00", BookOut: "2024-01-01", Etd: "11:30"},
		{ID: demoID("booking-late-checkout"), HotelID: hotel.ID, RoomID: rooms[1].ID, CustomerName: "Late Guest",
			Status: "confirmed", BookIn: "2024-01-01", Eta: "14:00", BookOut: "2024-01-02", Etd: "20:00"},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hotel).Error; err != nil {
			return fmt.Errorf("create hotel: %w", err)
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return fmt.Errorf("create rooms: %w", err)
		}
		if err := tx.Create(&bookings).Error; err != nil {
			return fmt.Errorf("create bookings: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogger.Info("demo data seeded",
		"hotel_id", hotel.ID,
		"rooms", len(rooms),
		"bookings", len(bookings),
		"sample_booking_id", bookings[0].ID,
	)
	return nil
}
