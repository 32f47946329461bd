package services

import (
	"fmt"

	"gorm.io/gorm"

	"rate-calendar-backend/models"
)

// DailyRateService reads the mirrored external per-day rate feed. The
// engine treats these rows as opaque external data.
type DailyRateService struct {
	DB *gorm.DB
}

func NewDailyRateService(db *gorm.DB) *DailyRateService {
	return &DailyRateService{DB: db}
}

// LoadWindow returns the feed for one hotel + room type keyed by ISO date,
// covering [from, to] inclusive.
func (s *DailyRateService) LoadWindow(hotelID, roomTypeID uint, from, to string) (map[string]models.ExternalDayRate, error) {
	var rows []models.DailyRate
	if err := s.DB.
		Where("hotel_id = ? AND room_type_id = ? AND date >= ? AND date <= ?", hotelID, roomTypeID, from, to).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load daily rates: %w", err)
	}

	out := make(map[string]models.ExternalDayRate, len(rows))
	for _, row := range rows {
		out[row.Date] = models.ExternalDayRate{
			Rate:      row.Rate,
			Source:    models.RateSource(row.Source),
			LiveRate:  row.LiveRate,
			Occupancy: row.Occupancy,
			ADR:       row.ADR,
		}
	}
	return out, nil
}
