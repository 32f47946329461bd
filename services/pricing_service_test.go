package services

import (
	"math"
	"testing"
	"time"

	"rate-calendar-backend/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func campaign(id uint, slug string, discount float64, start, end string, active bool) models.Campaign {
	c := models.Campaign{ID: id, Slug: slug, Discount: discount, Active: active}
	if start != "" {
		c.StartDate = dayPtr(start)
	}
	if end != "" {
		c.EndDate = dayPtr(end)
	}
	return c
}

func TestComputeSellRateZeroOrNegativeBase(t *testing.T) {
	var p PricingService
	calc := models.CalculatorState{
		Multiplier:          2,
		NonRefundableActive: true, NonRefundablePercent: 50,
		MobileActive: true, MobilePercent: 10,
		CountryRateActive: true, CountryRatePercent: 5,
	}

	for _, base := range []float64{0, -1, -120.5} {
		if got := p.ComputeSellRate(base, 20, calc, day("2026-07-01")); got != 0 {
			t.Errorf("ComputeSellRate(%v) = %v, want 0", base, got)
		}
	}
}

func TestComputeSellRateMultiplierAndNonRefundable(t *testing.T) {
	var p PricingService

	tests := []struct {
		name string
		calc models.CalculatorState
		want float64
	}{
		{"multiplier only", models.CalculatorState{Multiplier: 1.2}, 120},
		{"non-refundable only", models.CalculatorState{Multiplier: 1, NonRefundableActive: true, NonRefundablePercent: 5}, 95},
		{"both", models.CalculatorState{Multiplier: 2, NonRefundableActive: true, NonRefundablePercent: 10}, 180},
		{"non-refundable toggled off", models.CalculatorState{Multiplier: 1, NonRefundablePercent: 50}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ComputeSellRate(100, 0, tt.calc, day("2026-07-01"))
			if !approxEqual(got, tt.want) {
				t.Errorf("ComputeSellRate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeSellRateDeepDealExclusivity(t *testing.T) {
	var p PricingService
	calc := models.CalculatorState{
		Multiplier: 1,
		Campaigns: []models.Campaign{
			campaign(1, "black-friday", 50, "2026-11-27", "2026-11-30", true),
			campaign(2, "summer-deal", 20, "2026-01-01", "2026-12-31", true),
		},
		MobileActive: true, MobilePercent: 10,
		CountryRateActive: true, CountryRatePercent: 5,
	}

	// loyalty 20% must be skipped: 100 * 0.5 = 50, not 50 * 0.8 = 40
	got := p.ComputeSellRate(100, 20, calc, day("2026-11-28"))
	if !approxEqual(got, 50) {
		t.Fatalf("deep deal result = %v, want 50", got)
	}

	// outside the deep-deal window the standard stack applies:
	// 100 * 0.8 (loyalty) * 0.8 (summer-deal) * 0.9 (mobile) * 0.95 (country)
	got = p.ComputeSellRate(100, 20, calc, day("2026-07-15"))
	if !approxEqual(got, 100*0.8*0.8*0.9*0.95) {
		t.Fatalf("standard stack result = %v, want %v", got, 100*0.8*0.8*0.9*0.95)
	}
}

func TestComputeSellRateMobileBlocking(t *testing.T) {
	var p PricingService

	blocking := models.CalculatorState{
		Multiplier: 1,
		Campaigns: []models.Campaign{
			campaign(1, "early-deal", 10, "2026-01-01", "2026-12-31", true),
		},
		MobileActive: true, MobilePercent: 10,
	}
	if got := p.ComputeSellRate(100, 0, blocking, day("2026-07-01")); !approxEqual(got, 90) {
		t.Errorf("blocking campaign result = %v, want 90 (mobile skipped)", got)
	}

	nonBlocking := models.CalculatorState{
		Multiplier: 1,
		Campaigns: []models.Campaign{
			campaign(1, "summer-deal", 10, "2026-01-01", "2026-12-31", true),
		},
		MobileActive: true, MobilePercent: 10,
	}
	if got := p.ComputeSellRate(100, 0, nonBlocking, day("2026-07-01")); !approxEqual(got, 81) {
		t.Errorf("non-blocking campaign result = %v, want 81", got)
	}

	// any valid blocking campaign blocks mobile, even when a non-blocking
	// campaign wins the discount selection
	mixed := models.CalculatorState{
		Multiplier: 1,
		Campaigns: []models.Campaign{
			campaign(1, "early-deal", 5, "2026-01-01", "2026-12-31", true),
			campaign(2, "summer-deal", 10, "2026-01-01", "2026-12-31", true),
		},
		MobileActive: true, MobilePercent: 10,
	}
	if got := p.ComputeSellRate(100, 0, mixed, day("2026-07-01")); !approxEqual(got, 90) {
		t.Errorf("mixed campaigns result = %v, want 90", got)
	}
}

func TestComputeSellRateCountryNeverBlocked(t *testing.T) {
	var p PricingService
	calc := models.CalculatorState{
		Multiplier: 1,
		Campaigns: []models.Campaign{
			campaign(1, "early-deal", 10, "2026-01-01", "2026-12-31", true),
		},
		MobileActive: true, MobilePercent: 10,
		CountryRateActive: true, CountryRatePercent: 5,
	}

	// mobile is blocked, country still applies: 90 * 0.95 = 85.5
	if got := p.ComputeSellRate(100, 0, calc, day("2026-07-01")); !approxEqual(got, 85.5) {
		t.Errorf("result = %v, want 85.5", got)
	}
}

func TestCampaignValidity(t *testing.T) {
	tests := []struct {
		name string
		c    models.Campaign
		date string
		want bool
	}{
		{"inside window", campaign(1, "summer-deal", 10, "2026-06-01", "2026-08-31", true), "2026-07-15", true},
		{"start endpoint inclusive", campaign(1, "summer-deal", 10, "2026-06-01", "2026-08-31", true), "2026-06-01", true},
		{"end endpoint inclusive", campaign(1, "summer-deal", 10, "2026-06-01", "2026-08-31", true), "2026-08-31", true},
		{"before window", campaign(1, "summer-deal", 10, "2026-06-01", "2026-08-31", true), "2026-05-31", false},
		{"after window", campaign(1, "summer-deal", 10, "2026-06-01", "2026-08-31", true), "2026-09-01", false},
		{"inactive", campaign(1, "summer-deal", 10, "2026-06-01", "2026-08-31", false), "2026-07-15", false},
		{"missing start", campaign(1, "summer-deal", 10, "", "2026-08-31", true), "2026-07-15", false},
		{"missing end", campaign(1, "summer-deal", 10, "2026-06-01", "", true), "2026-07-15", false},
		{"missing both", campaign(1, "summer-deal", 10, "", "", true), "2026-07-15", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := campaignValidOn(tt.c, day(tt.date)); got != tt.want {
				t.Errorf("campaignValidOn = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBestStandardCampaignSelection(t *testing.T) {
	date := day("2026-07-01")

	// highest discount wins
	calc := models.CalculatorState{Campaigns: []models.Campaign{
		campaign(1, "summer-deal", 10, "2026-01-01", "2026-12-31", true),
		campaign(2, "getaway", 25, "2026-01-01", "2026-12-31", true),
		campaign(3, "black-friday", 50, "2026-01-01", "2026-12-31", true), // deep deal, excluded here
	}}
	best, _ := bestStandardCampaign(calc, date)
	if best == nil || best.ID != 2 {
		t.Fatalf("best = %+v, want campaign 2", best)
	}

	// equal discounts break to the lowest campaign ID regardless of order
	calc = models.CalculatorState{Campaigns: []models.Campaign{
		campaign(7, "autumn-deal", 15, "2026-01-01", "2026-12-31", true),
		campaign(3, "spring-deal", 15, "2026-01-01", "2026-12-31", true),
	}}
	best, _ = bestStandardCampaign(calc, date)
	if best == nil || best.ID != 3 {
		t.Fatalf("tie-break best = %+v, want campaign 3", best)
	}
}

func TestFindDeepDealLowestID(t *testing.T) {
	date := day("2026-11-28")
	calc := models.CalculatorState{Campaigns: []models.Campaign{
		campaign(5, "limited-time", 40, "2026-11-01", "2026-12-31", true),
		campaign(2, "black-friday", 30, "2026-11-27", "2026-11-30", true),
	}}
	deal := findDeepDeal(calc, date)
	if deal == nil || deal.ID != 2 {
		t.Fatalf("deal = %+v, want campaign 2", deal)
	}
}

func TestApplyDifferential(t *testing.T) {
	var p PricingService

	plus := models.RoomDifferential{RoomTypeID: 2, Operator: "+", Value: 15}
	if got := p.ApplyDifferential(100, plus); !approxEqual(got, 115) {
		t.Errorf("+15%% = %v, want 115", got)
	}
	minus := models.RoomDifferential{RoomTypeID: 3, Operator: "-", Value: 20}
	if got := p.ApplyDifferential(100, minus); !approxEqual(got, 80) {
		t.Errorf("-20%% = %v, want 80", got)
	}
}
