package models

import "time"

type RoomType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HotelID     uint      `gorm:"index" json:"hotel_id"`
	TypeName    string    `gorm:"size:255" json:"type_name"`
	Description string    `gorm:"type:text" json:"description"`
	MaxGuests   int       `json:"max_guests"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
