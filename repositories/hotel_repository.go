package repositories

import (
	"context"

	"gorm.io/gorm"

	"hotel-pricing/models"
)

type HotelRepository struct {
	DB *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{DB: db}
}

func (r *HotelRepository) HotelExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Hotel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
