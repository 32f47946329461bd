package services

import (
	"time"

	"rate-calendar-backend/models"
	"rate-calendar-backend/utils"
)

// CalendarService builds the per-day skeleton for the rolling planning
// window. Pure date arithmetic over the rate rules; never errors.
type CalendarService struct{}

func clampDays(d int) int {
	if d < 0 {
		return 0
	}
	return d
}

// GenerateSkeleton produces one CalendarDay per offset in [0, horizonDays)
// from referenceDate. Live data stays zeroed until the resolver merges the
// external feed in.
func (s CalendarService) GenerateSkeleton(rules models.RateRules, referenceDate time.Time, horizonDays int) []models.CalendarDay {
	ref := utils.DateAtUTC(referenceDate)
	freeze := clampDays(rules.RateFreezePeriod)
	lmfDays := clampDays(rules.LastMinuteFloor.Days)

	dow := make(map[string]bool, len(rules.LastMinuteFloor.Dow))
	for _, d := range rules.LastMinuteFloor.Dow {
		dow[d] = true
	}

	days := make([]models.CalendarDay, 0, clampDays(horizonDays))
	for i := 0; i < horizonDays; i++ {
		date := ref.AddDate(0, 0, i)
		day := models.CalendarDay{
			Date:         utils.FormatDate(date),
			Source:       models.SourceExternal,
			IsFrozen:     i <= freeze,
			GuardrailMin: rules.MonthlyMinRates[utils.MonthKey(date)],
		}
		if rules.LastMinuteFloor.Enabled && !day.IsFrozen && i <= lmfDays && dow[utils.WeekdayCode(date)] {
			floor := rules.LastMinuteFloor.Rate
			day.FloorRateLMF = &floor
		}
		days = append(days, day)
	}
	return days
}

// IsFrozen reports whether a date falls inside the freeze window measured
// from referenceDate. Dates before the reference count as frozen too; the
// past is never editable.
func (s CalendarService) IsFrozen(rules models.RateRules, referenceDate, date time.Time) bool {
	ref := utils.DateAtUTC(referenceDate)
	d := utils.DateAtUTC(date)
	offset := int(d.Sub(ref).Hours() / 24)
	if offset < 0 {
		return true
	}
	return offset <= clampDays(rules.RateFreezePeriod)
}
