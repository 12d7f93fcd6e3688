package repositories

import (
	"context"

	"gorm.io/gorm"

	"hotel-pricing/models"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) GetBooking(ctx context.Context, id string) (models.Booking, error) {
	var booking models.Booking
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	return booking, translate(err)
}
