package models

import "time"

// RateSource is the persisted classification of a day's rate.
type RateSource string

const (
	SourceAI       RateSource = "ai"
	SourceManual   RateSource = "manual"
	SourceExternal RateSource = "external"
)

// DayStatus is the mutually exclusive display label for a calendar day.
type DayStatus string

const (
	StatusFrozen   DayStatus = "FROZEN"
	StatusManual   DayStatus = "MANUAL"
	StatusPending  DayStatus = "PENDING"
	StatusExternal DayStatus = "EXTERNAL"
	StatusAI       DayStatus = "AI"
)

// CalendarDay is one skeleton entry in the planning window, keyed by ISO date.
type CalendarDay struct {
	Date         string     `json:"date"` // YYYY-MM-DD
	LiveRate     float64    `json:"live_rate"`
	Source       RateSource `json:"source"`
	IsFrozen     bool       `json:"is_frozen"`
	GuardrailMin float64    `json:"guardrail_min"`
	FloorRateLMF *float64   `json:"floor_rate_lmf,omitempty"`
	Occupancy    float64    `json:"occupancy"`
	ADR          float64    `json:"adr"`
}

// ExternalDayRate is one entry of the per-day rate feed keyed by date.
type ExternalDayRate struct {
	Rate      float64    `json:"rate"`
	Source    RateSource `json:"source"`
	LiveRate  float64    `json:"live_rate"`
	Occupancy float64    `json:"occupancy"`
	ADR       float64    `json:"adr"`
}

// ResolvedDay is the read-only projection the calendar UI renders.
type ResolvedDay struct {
	CalendarDay
	Rate              float64   `json:"rate"` // persisted rate from the feed
	Status            DayStatus `json:"status"`
	OverrideValue     *float64  `json:"override_value,omitempty"`
	HasPending        bool      `json:"has_pending"`
	HasSaved          bool      `json:"has_saved"`
	Unconfirmed       bool      `json:"unconfirmed"`
	EffectiveBase     float64   `json:"effective_base"`
	SellRateLive      float64   `json:"sell_rate_live"`
	SellRateEffective float64   `json:"sell_rate_effective"`
	BelowGuardrailMin bool      `json:"below_guardrail_min"`
	AboveGuardrailMax bool      `json:"above_guardrail_max"`
}

// Campaign is the typed, validated view of a campaigns row used by the
// sell-rate calculator.
type Campaign struct {
	ID        uint       `json:"id"`
	Slug      string     `json:"slug"`
	Discount  float64    `json:"discount" validate:"gte=0,lte=100"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Active    bool       `json:"active"`
}

// CalculatorState is the full discount configuration fed into the pricing
// pipeline. Loaded once per hotel, mutated only by explicit saves.
type CalculatorState struct {
	Multiplier           float64    `json:"multiplier" validate:"gte=0"`
	Campaigns            []Campaign `json:"campaigns" validate:"dive"`
	MobileActive         bool       `json:"mobile_active"`
	MobilePercent        float64    `json:"mobile_percent" validate:"gte=0,lte=100"`
	NonRefundableActive  bool       `json:"non_refundable_active"`
	NonRefundablePercent float64    `json:"non_refundable_percent" validate:"gte=0,lte=100"`
	CountryRateActive    bool       `json:"country_rate_active"`
	CountryRatePercent   float64    `json:"country_rate_percent" validate:"gte=0,lte=100"`
}
