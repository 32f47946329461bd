package models

import "time"

const (
	SyncUnconfirmed = "unconfirmed"
	SyncConfirmed   = "confirmed"
)

// RateOverride is a saved (believed persisted) manual override. Pending
// overrides never reach this table; they live in the override service's
// in-memory state until submitted.
type RateOverride struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HotelID    uint      `gorm:"uniqueIndex:idx_override_day" json:"hotel_id"`
	RoomTypeID uint      `gorm:"uniqueIndex:idx_override_day" json:"room_type_id"`
	Date       string    `gorm:"size:10;uniqueIndex:idx_override_day" json:"date"`
	Rate       float64   `json:"rate"`
	SyncStatus string    `gorm:"size:20;default:unconfirmed" json:"sync_status"`
	BatchID    string    `gorm:"size:36;index" json:"batch_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
