package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"rate-calendar-backend/models"
)

var (
	ErrConfigNotFound      = errors.New("config_not_found")
	ErrBaseRoomTypeMissing = errors.New("base_room_type_missing")
	ErrHotelNotFound       = errors.New("hotel_not_found")
)

// ConfigService loads the per-hotel configuration rows and decodes their
// JSON columns into typed, validated structures. Malformed negative day
// counts are clamped to zero here, once, so the engine never sees them.
type ConfigService struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewConfigService(db *gorm.DB) *ConfigService {
	return &ConfigService{
		DB:       db,
		validate: validator.New(),
	}
}

func decodeJSON(raw []byte, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// LoadRateRules returns the typed rate rules for a hotel. Missing config or
// base room type is fatal for calendar generation; the caller must render
// an explicit blocked state.
func (s *ConfigService) LoadRateRules(hotelID uint) (models.RateRules, error) {
	var row models.RateConfig
	if err := s.DB.Where("hotel_id = ?", hotelID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RateRules{}, ErrConfigNotFound
		}
		return models.RateRules{}, fmt.Errorf("failed to load rate config: %w", err)
	}

	if row.BaseRoomTypeID == 0 {
		return models.RateRules{}, ErrBaseRoomTypeMissing
	}
	var baseRoom models.RoomType
	if err := s.DB.First(&baseRoom, row.BaseRoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RateRules{}, ErrBaseRoomTypeMissing
		}
		return models.RateRules{}, fmt.Errorf("failed to load base room type: %w", err)
	}

	rules := models.RateRules{
		BaseRoomTypeID:   row.BaseRoomTypeID,
		GuardrailMax:     row.GuardrailMax,
		RateFreezePeriod: clampDays(row.RateFreezePeriod),
		LastMinuteFloor: models.LastMinuteFloorRule{
			Enabled: row.LMFEnabled,
			Rate:    row.LMFRate,
			Days:    clampDays(row.LMFDays),
		},
		MonthlyMinRates: map[string]float64{},
	}

	if err := decodeJSON(row.LMFDow, &rules.LastMinuteFloor.Dow); err != nil {
		return models.RateRules{}, fmt.Errorf("invalid lmf dow config: %w", err)
	}
	if err := decodeJSON(row.MonthlyMinRates, &rules.MonthlyMinRates); err != nil {
		return models.RateRules{}, fmt.Errorf("invalid monthly min rates config: %w", err)
	}
	if err := decodeJSON(row.RoomDifferentials, &rules.RoomDifferentials); err != nil {
		return models.RateRules{}, fmt.Errorf("invalid room differentials config: %w", err)
	}

	if err := s.validate.Struct(rules); err != nil {
		return models.RateRules{}, fmt.Errorf("rate config validation failed: %w", err)
	}
	return rules, nil
}

// LoadCalculatorState assembles the discount configuration from the
// settings row plus the hotel's campaigns.
func (s *ConfigService) LoadCalculatorState(hotelID uint) (models.CalculatorState, error) {
	var setting models.CalculatorSetting
	if err := s.DB.Where("hotel_id = ?", hotelID).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CalculatorState{}, ErrConfigNotFound
		}
		return models.CalculatorState{}, fmt.Errorf("failed to load calculator settings: %w", err)
	}

	var rows []models.CampaignRow
	if err := s.DB.Where("hotel_id = ?", hotelID).Order("id").Find(&rows).Error; err != nil {
		return models.CalculatorState{}, fmt.Errorf("failed to load campaigns: %w", err)
	}

	state := models.CalculatorState{
		Multiplier:           setting.Multiplier,
		MobileActive:         setting.MobileActive,
		MobilePercent:        setting.MobilePercent,
		NonRefundableActive:  setting.NonRefundableActive,
		NonRefundablePercent: setting.NonRefundablePercent,
		CountryRateActive:    setting.CountryRateActive,
		CountryRatePercent:   setting.CountryRatePercent,
		Campaigns:            make([]models.Campaign, 0, len(rows)),
	}
	for _, row := range rows {
		state.Campaigns = append(state.Campaigns, models.Campaign{
			ID:        row.ID,
			Slug:      row.Slug,
			Discount:  row.Discount,
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
			Active:    row.Active,
		})
	}

	if err := s.validate.Struct(state); err != nil {
		return models.CalculatorState{}, fmt.Errorf("calculator config validation failed: %w", err)
	}
	return state, nil
}

// LoadHotel returns the hotel row (source of the loyalty percent).
func (s *ConfigService) LoadHotel(hotelID uint) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Hotel{}, ErrHotelNotFound
		}
		return models.Hotel{}, fmt.Errorf("failed to load hotel: %w", err)
	}
	return hotel, nil
}
