package models

// LastMinuteFloorRule activates a floor price near arrival on configured
// weekdays only.
type LastMinuteFloorRule struct {
	Enabled bool     `json:"enabled"`
	Rate    float64  `json:"rate" validate:"gte=0"`
	Days    int      `json:"days"`
	Dow     []string `json:"dow" validate:"dive,oneof=sun mon tue wed thu fri sat"`
}

// RoomDifferential derives a non-base room type's rate from the base room.
type RoomDifferential struct {
	RoomTypeID uint    `json:"room_type_id" validate:"required"`
	Operator   string  `json:"operator" validate:"oneof=+ -"`
	Value      float64 `json:"value" validate:"gte=0,lte=100"` // percent
}

// RateRules is the typed, validated view of a RateConfig row. Negative
// freeze period and LMF day counts are clamped to zero on load.
type RateRules struct {
	BaseRoomTypeID    uint                `json:"base_room_type_id" validate:"required"`
	GuardrailMax      float64             `json:"guardrail_max" validate:"gte=0"`
	RateFreezePeriod  int                 `json:"rate_freeze_period"`
	LastMinuteFloor   LastMinuteFloorRule `json:"last_minute_floor"`
	MonthlyMinRates   map[string]float64  `json:"monthly_min_rates"`
	RoomDifferentials []RoomDifferential  `json:"room_differentials" validate:"dive"`
}

// DifferentialFor returns the differential for a room type, nil for the base
// room or any room without a configured differential.
func (r RateRules) DifferentialFor(roomTypeID uint) *RoomDifferential {
	if roomTypeID == r.BaseRoomTypeID {
		return nil
	}
	for i := range r.RoomDifferentials {
		if r.RoomDifferentials[i].RoomTypeID == roomTypeID {
			return &r.RoomDifferentials[i]
		}
	}
	return nil
}
