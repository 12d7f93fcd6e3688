// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-pricing/config"
	"hotel-pricing/models"
)

// OpenDB returns a migrated, private in-memory SQLite database that is closed
// when the test ends.
func OpenDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

// Rate returns a pointer for the nullable room rates.
func Rate(v float64) *float64 { return &v }

// MustCreate inserts records and fails the test on error.
func MustCreate(tb testing.TB, db *gorm.DB, values ...interface{}) {
	tb.Helper()
	for _, v := range values {
		if err := db.Create(v).Error; err != nil {
			tb.Fatalf("create %T: %v", v, err)
		}
	}
}

// SeedHotel inserts a hotel with one priced room and returns both.
func SeedHotel(tb testing.TB, db *gorm.DB, hourly, nightly float64) (models.Hotel, models.Room) {
	tb.Helper()
	hotel := models.Hotel{Name: "Test Hotel"}
	MustCreate(tb, db, &hotel)
	room := models.Room{
		HotelID:      hotel.ID,
		RoomNumber:   "101",
		PriceByHour:  Rate(hourly),
		PriceByNight: Rate(nightly),
	}
	MustCreate(tb, db, &room)
	return hotel, room
}
