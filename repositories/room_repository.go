package repositories

import (
	"context"

	"gorm.io/gorm"

	"hotel-pricing/models"
)

type RoomRepository struct {
	DB *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{DB: db}
}

func (r *RoomRepository) GetRoom(ctx context.Context, id string) (models.Room, error) {
	var room models.Room
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&room).Error
	return room, translate(err)
}
