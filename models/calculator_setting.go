package models

import "time"

// CalculatorSetting stores the per-hotel discount toggles used by the
// sell-rate calculator. Campaigns live in their own table.
type CalculatorSetting struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	HotelID              uint      `gorm:"uniqueIndex" json:"hotel_id"`
	Multiplier           float64   `gorm:"default:1" json:"multiplier"`
	MobileActive         bool      `gorm:"default:false" json:"mobile_active"`
	MobilePercent        float64   `gorm:"default:0" json:"mobile_percent"`
	NonRefundableActive  bool      `gorm:"default:false" json:"non_refundable_active"`
	NonRefundablePercent float64   `gorm:"default:0" json:"non_refundable_percent"`
	CountryRateActive    bool      `gorm:"default:false" json:"country_rate_active"`
	CountryRatePercent   float64   `gorm:"default:0" json:"country_rate_percent"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
