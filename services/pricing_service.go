package services

import (
	"time"

	"rate-calendar-backend/models"
)

// Reserved campaign slugs. Deep deals are exclusive of every other
// discount; mobile-blocking campaigns suppress the mobile discount.
var deepDealSlugs = map[string]bool{
	"black-friday": true,
	"limited-time": true,
}

var mobileBlockingSlugs = map[string]bool{
	"early-deal":   true,
	"late-escape":  true,
	"getaway-deal": true,
}

// PricingService is the pure sell-rate pipeline: (base rate, date, discount
// configuration) -> final guest-facing price. No rounding; display layers
// round for presentation.
type PricingService struct{}

func applyPct(rate, pct float64) float64 {
	return rate * (1 - pct/100)
}

// campaignValidOn reports whether a campaign covers the date. A campaign
// missing either endpoint is never valid; containment is inclusive of both
// endpoints.
func campaignValidOn(c models.Campaign, date time.Time) bool {
	if !c.Active || c.StartDate == nil || c.EndDate == nil {
		return false
	}
	return !date.Before(*c.StartDate) && !date.After(*c.EndDate)
}

// findDeepDeal returns the valid deep-deal campaign for the date, lowest
// campaign ID first so overlapping deep deals resolve deterministically.
func findDeepDeal(calc models.CalculatorState, date time.Time) *models.Campaign {
	var found *models.Campaign
	for i := range calc.Campaigns {
		c := &calc.Campaigns[i]
		if !deepDealSlugs[c.Slug] || !campaignValidOn(*c, date) {
			continue
		}
		if found == nil || c.ID < found.ID {
			found = c
		}
	}
	return found
}

// bestStandardCampaign selects the valid non-deep-deal campaign with the
// highest discount percent. Equal discounts break to the lowest campaign ID
// so the result never depends on input order. It also reports whether any
// valid standard campaign carries a mobile-blocking slug.
func bestStandardCampaign(calc models.CalculatorState, date time.Time) (best *models.Campaign, mobileBlocked bool) {
	for i := range calc.Campaigns {
		c := &calc.Campaigns[i]
		if deepDealSlugs[c.Slug] || !campaignValidOn(*c, date) {
			continue
		}
		if mobileBlockingSlugs[c.Slug] {
			mobileBlocked = true
		}
		if best == nil || c.Discount > best.Discount || (c.Discount == best.Discount && c.ID < best.ID) {
			best = c
		}
	}
	return best, mobileBlocked
}

// ComputeSellRate applies the fixed discount stack:
// multiplier -> non-refundable -> deep deal (exclusive) | loyalty ->
// best standard campaign -> mobile (unless blocked) -> country.
func (s PricingService) ComputeSellRate(baseRate, loyaltyPct float64, calc models.CalculatorState, date time.Time) float64 {
	if baseRate <= 0 {
		return 0
	}

	rate := baseRate * calc.Multiplier

	if calc.NonRefundableActive {
		rate = applyPct(rate, calc.NonRefundablePercent)
	}

	if deal := findDeepDeal(calc, date); deal != nil {
		// deep deals are exclusive of loyalty, standard campaigns,
		// mobile and country discounts
		return applyPct(rate, deal.Discount)
	}

	if loyaltyPct > 0 {
		rate = applyPct(rate, loyaltyPct)
	}

	best, mobileBlocked := bestStandardCampaign(calc, date)
	if best != nil {
		rate = applyPct(rate, best.Discount)
	}

	if calc.MobileActive && !mobileBlocked {
		rate = applyPct(rate, calc.MobilePercent)
	}

	if calc.CountryRateActive {
		rate = applyPct(rate, calc.CountryRatePercent)
	}

	return rate
}

// ApplyDifferential derives another room type's rate from the base room
// rate using the configured +/- percent.
func (s PricingService) ApplyDifferential(rate float64, diff models.RoomDifferential) float64 {
	if diff.Operator == "-" {
		return rate * (1 - diff.Value/100)
	}
	return rate * (1 + diff.Value/100)
}
