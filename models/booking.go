package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking stores the stay window as the raw date and clock strings the front
// desk entered; they are parsed only when a price is computed.
type Booking struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	HotelID string `gorm:"column:hotel_id;size:36;index" json:"hotelId"`
	RoomID  string `gorm:"column:room_id;size:36;index" json:"roomId"`

	CustomerName string `gorm:"column:customer_name;size:255" json:"customerName,omitempty"`
	Status       string `gorm:"column:status;size:64" json:"status,omitempty"`

	BookIn  string `gorm:"column:book_in;size:10" json:"bookIn"`
	Eta     string `gorm:"column:eta;size:8" json:"eta"`
	BookOut string `gorm:"column:book_out;size:10" json:"bookOut"`
	Etd     string `gorm:"column:etd;size:8" json:"etd"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
