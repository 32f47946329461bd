package services

import (
	"rate-calendar-backend/models"
	"rate-calendar-backend/utils"
)

// ResolverService merges the skeleton with the external feed and both
// override layers into the projection the calendar UI renders. Pure; no
// state is mutated here.
type ResolverService struct {
	Pricing PricingService
}

// MergeCalendar overlays external per-day rates onto the skeleton and
// resolves, per day, the displayed status label and override value. A
// pending value always shadows the saved value.
func (s ResolverService) MergeCalendar(
	skeleton []models.CalendarDay,
	external map[string]models.ExternalDayRate,
	saved map[string]float64,
	pending map[string]float64,
	unconfirmed map[string]bool,
) []models.ResolvedDay {
	out := make([]models.ResolvedDay, 0, len(skeleton))
	for _, day := range skeleton {
		rd := models.ResolvedDay{CalendarDay: day}

		if ext, ok := external[day.Date]; ok {
			rd.Rate = ext.Rate
			rd.LiveRate = ext.LiveRate
			rd.Occupancy = ext.Occupancy
			rd.ADR = ext.ADR
			if ext.Source != "" {
				rd.Source = ext.Source
			}
		}

		pendingVal, hasPending := pending[day.Date]
		savedVal, hasSaved := saved[day.Date]
		rd.HasPending = hasPending
		rd.HasSaved = hasSaved
		rd.Unconfirmed = unconfirmed[day.Date]

		switch {
		case rd.IsFrozen:
			rd.Status = models.StatusFrozen
		case rd.Source == models.SourceManual && !hasPending:
			rd.Status = models.StatusManual
		case hasPending:
			rd.Status = models.StatusPending
		case rd.Source == models.SourceExternal:
			rd.Status = models.StatusExternal
		default:
			rd.Status = models.StatusAI
		}

		switch {
		case hasPending:
			v := pendingVal
			rd.OverrideValue = &v
		case hasSaved:
			v := savedVal
			rd.OverrideValue = &v
		}

		rd.EffectiveBase = rd.Rate
		if rd.OverrideValue != nil {
			rd.EffectiveBase = *rd.OverrideValue
		}

		out = append(out, rd)
	}
	return out
}

// ScaleForRoomType derives a non-base room type's calendar from the base
// room projection by applying the configured differential to every base
// figure. Returns the input untouched when no differential applies.
func (s ResolverService) ScaleForRoomType(days []models.ResolvedDay, rules models.RateRules, roomTypeID uint) []models.ResolvedDay {
	diff := rules.DifferentialFor(roomTypeID)
	if diff == nil {
		return days
	}
	out := make([]models.ResolvedDay, len(days))
	for i, d := range days {
		d.Rate = s.Pricing.ApplyDifferential(d.Rate, *diff)
		d.LiveRate = s.Pricing.ApplyDifferential(d.LiveRate, *diff)
		d.EffectiveBase = s.Pricing.ApplyDifferential(d.EffectiveBase, *diff)
		if d.OverrideValue != nil {
			v := s.Pricing.ApplyDifferential(*d.OverrideValue, *diff)
			d.OverrideValue = &v
		}
		out[i] = d
	}
	return out
}

// PriceCalendar fills the computed sell rates for both the live base and
// the effective (override-aware) base, plus guardrail breach flags.
func (s ResolverService) PriceCalendar(days []models.ResolvedDay, loyaltyPct float64, calc models.CalculatorState, rules models.RateRules) []models.ResolvedDay {
	out := make([]models.ResolvedDay, len(days))
	for i, d := range days {
		date, err := utils.ParseDate(d.Date)
		if err != nil {
			out[i] = d
			continue
		}
		d.SellRateLive = s.Pricing.ComputeSellRate(d.LiveRate, loyaltyPct, calc, date)
		d.SellRateEffective = s.Pricing.ComputeSellRate(d.EffectiveBase, loyaltyPct, calc, date)
		d.BelowGuardrailMin = d.GuardrailMin > 0 && d.EffectiveBase > 0 && d.EffectiveBase < d.GuardrailMin
		d.AboveGuardrailMax = rules.GuardrailMax > 0 && d.EffectiveBase > rules.GuardrailMax
		out[i] = d
	}
	return out
}
