package services

import (
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rate-calendar-backend/models"
)

// OverrideEntry is one date/rate pair of a submission batch.
type OverrideEntry struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// SavedOverrideStore persists saved overrides and their sync status.
type SavedOverrideStore interface {
	Load(hotelID, roomTypeID uint) (rates map[string]float64, unconfirmed map[string]bool, err error)
	UpsertBatch(hotelID, roomTypeID uint, entries []OverrideEntry, batchID, status string) error
	MarkConfirmed(hotelID, roomTypeID uint, batchID string) error
}

// GormOverrideStore backs saved overrides with the rate_overrides table.
type GormOverrideStore struct {
	DB *gorm.DB
}

func NewGormOverrideStore(db *gorm.DB) *GormOverrideStore {
	return &GormOverrideStore{DB: db}
}

func (s *GormOverrideStore) Load(hotelID, roomTypeID uint) (map[string]float64, map[string]bool, error) {
	var rows []models.RateOverride
	if err := s.DB.
		Where("hotel_id = ? AND room_type_id = ?", hotelID, roomTypeID).
		Find(&rows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load saved overrides: %w", err)
	}

	rates := make(map[string]float64, len(rows))
	unconfirmed := map[string]bool{}
	for _, row := range rows {
		rates[row.Date] = row.Rate
		if row.SyncStatus == models.SyncUnconfirmed {
			unconfirmed[row.Date] = true
		}
	}
	return rates, unconfirmed, nil
}

func (s *GormOverrideStore) UpsertBatch(hotelID, roomTypeID uint, entries []OverrideEntry, batchID, status string) error {
	if len(entries) == 0 {
		return nil
	}
	rows := make([]models.RateOverride, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, models.RateOverride{
			HotelID:    hotelID,
			RoomTypeID: roomTypeID,
			Date:       e.Date,
			Rate:       e.Rate,
			SyncStatus: status,
			BatchID:    batchID,
		})
	}
	// last write wins per (hotel, room type, date)
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hotel_id"}, {Name: "room_type_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "sync_status", "batch_id", "updated_at"}),
	}).Create(&rows).Error
}

func (s *GormOverrideStore) MarkConfirmed(hotelID, roomTypeID uint, batchID string) error {
	return s.DB.Model(&models.RateOverride{}).
		Where("hotel_id = ? AND room_type_id = ? AND batch_id = ?", hotelID, roomTypeID, batchID).
		Update("sync_status", models.SyncConfirmed).Error
}

// MemoryOverrideStore is the in-memory store used by tests.
type MemoryOverrideStore struct {
	mu   sync.Mutex
	rows map[string]models.RateOverride // key hotel:room:date
}

func NewMemoryOverrideStore() *MemoryOverrideStore {
	return &MemoryOverrideStore{rows: map[string]models.RateOverride{}}
}

func memKey(hotelID, roomTypeID uint, date string) string {
	return fmt.Sprintf("%d:%d:%s", hotelID, roomTypeID, date)
}

func (s *MemoryOverrideStore) Load(hotelID, roomTypeID uint) (map[string]float64, map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rates := map[string]float64{}
	unconfirmed := map[string]bool{}
	for _, row := range s.rows {
		if row.HotelID != hotelID || row.RoomTypeID != roomTypeID {
			continue
		}
		rates[row.Date] = row.Rate
		if row.SyncStatus == models.SyncUnconfirmed {
			unconfirmed[row.Date] = true
		}
	}
	return rates, unconfirmed, nil
}

func (s *MemoryOverrideStore) UpsertBatch(hotelID, roomTypeID uint, entries []OverrideEntry, batchID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.rows[memKey(hotelID, roomTypeID, e.Date)] = models.RateOverride{
			HotelID:    hotelID,
			RoomTypeID: roomTypeID,
			Date:       e.Date,
			Rate:       e.Rate,
			SyncStatus: status,
			BatchID:    batchID,
		}
	}
	return nil
}

func (s *MemoryOverrideStore) MarkConfirmed(hotelID, roomTypeID uint, batchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, row := range s.rows {
		if row.HotelID == hotelID && row.RoomTypeID == roomTypeID && row.BatchID == batchID {
			row.SyncStatus = models.SyncConfirmed
			s.rows[k] = row
		}
	}
	return nil
}
