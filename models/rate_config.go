package models

import (
	"time"

	"gorm.io/datatypes"
)

// RateConfig holds the per-hotel pricing rules for the rate calendar.
// The JSON columns are decoded into the typed structures in rate_rules.go
// and validated on load; raw blobs are never read at point of use.
type RateConfig struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	HotelID           uint           `gorm:"uniqueIndex" json:"hotel_id"`
	BaseRoomTypeID    uint           `json:"base_room_type_id"`
	GuardrailMax      float64        `gorm:"default:0" json:"guardrail_max"`
	RateFreezePeriod  int            `gorm:"default:0" json:"rate_freeze_period"` // days from today
	LMFEnabled        bool           `gorm:"default:false" json:"lmf_enabled"`
	LMFRate           float64        `gorm:"default:0" json:"lmf_rate"`
	LMFDays           int            `gorm:"default:0" json:"lmf_days"`
	LMFDow            datatypes.JSON `json:"lmf_dow"`           // ["sun","sat",...]
	MonthlyMinRates   datatypes.JSON `json:"monthly_min_rates"` // {"jan":100,...}
	RoomDifferentials datatypes.JSON `json:"room_differentials"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
