package models

import "time"

// DailyRate mirrors the external per-day rate feed for one hotel + room type.
// The scraper/PMS sync writes these rows; the engine only reads them.
type DailyRate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HotelID    uint      `gorm:"uniqueIndex:idx_daily_rate_day" json:"hotel_id"`
	RoomTypeID uint      `gorm:"uniqueIndex:idx_daily_rate_day" json:"room_type_id"`
	Date       string    `gorm:"size:10;uniqueIndex:idx_daily_rate_day" json:"date"` // YYYY-MM-DD
	Rate       float64   `gorm:"default:0" json:"rate"`
	Source     string    `gorm:"size:20;default:external" json:"source"` // ai | manual | external
	LiveRate   float64   `gorm:"default:0" json:"live_rate"`
	Occupancy  float64   `gorm:"default:0" json:"occupancy"`
	ADR        float64   `gorm:"column:adr;default:0" json:"adr"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
