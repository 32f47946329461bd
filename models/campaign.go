package models

import "time"

type CampaignRow struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	HotelID   uint       `gorm:"index" json:"hotel_id"`
	Slug      string     `gorm:"size:100" json:"slug"`
	Name      string     `gorm:"size:255" json:"name"`
	Discount  float64    `gorm:"default:0" json:"discount"` // percent
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Active    bool       `gorm:"default:false" json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (CampaignRow) TableName() string {
	return "campaigns"
}
