package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room carries the two base rates used by the price calculator. Both rates are
// nullable so a room that was never priced can be told apart from a free one.
type Room struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	HotelID    string `gorm:"column:hotel_id;size:36;index" json:"hotelId"`
	RoomNumber string `gorm:"column:room_number;type:varchar(50)" json:"roomNumber"`
	Type       string `gorm:"type:varchar(50)" json:"type"`
	Status     string `gorm:"type:varchar(32)" json:"status"`
	Floor      string `gorm:"type:varchar(10)" json:"floor"`

	PriceByHour  *float64 `gorm:"column:price_by_hour;type:decimal(10,2)" json:"PriceByHour"`
	PriceByNight *float64 `gorm:"column:price_by_night;type:decimal(10,2)" json:"PriceByNight"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
