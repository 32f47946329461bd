package services

import (
	"testing"
	"time"

	"rate-calendar-backend/models"
)

func baseRules() models.RateRules {
	return models.RateRules{
		BaseRoomTypeID:   1,
		RateFreezePeriod: 2,
		MonthlyMinRates:  map[string]float64{"jan": 100, "jul": 120},
	}
}

func TestGenerateSkeletonWindow(t *testing.T) {
	var s CalendarService
	ref := day("2026-07-01")

	days := s.GenerateSkeleton(baseRules(), ref, 10)
	if len(days) != 10 {
		t.Fatalf("len = %d, want 10", len(days))
	}
	for i, d := range days {
		want := ref.AddDate(0, 0, i).Format("2006-01-02")
		if d.Date != want {
			t.Errorf("days[%d].Date = %s, want %s", i, d.Date, want)
		}
		if d.Source != models.SourceExternal {
			t.Errorf("days[%d].Source = %s, want external default", i, d.Source)
		}
		if d.LiveRate != 0 {
			t.Errorf("days[%d].LiveRate = %v, want 0 before merge", i, d.LiveRate)
		}
	}
}

func TestGenerateSkeletonFreezeWindow(t *testing.T) {
	var s CalendarService
	ref := day("2026-07-01")

	days := s.GenerateSkeleton(baseRules(), ref, 5)
	wantFrozen := []bool{true, true, true, false, false} // i <= 2
	for i, d := range days {
		if d.IsFrozen != wantFrozen[i] {
			t.Errorf("days[%d].IsFrozen = %v, want %v", i, d.IsFrozen, wantFrozen[i])
		}
	}
}

func TestGenerateSkeletonNegativeFreezeClampsToZero(t *testing.T) {
	var s CalendarService
	rules := baseRules()
	rules.RateFreezePeriod = -5

	days := s.GenerateSkeleton(rules, day("2026-07-01"), 3)
	if !days[0].IsFrozen {
		t.Error("offset 0 should still be frozen with clamped freeze period")
	}
	if days[1].IsFrozen || days[2].IsFrozen {
		t.Error("offsets past 0 must not be frozen after clamping a negative freeze period")
	}
}

func TestGenerateSkeletonGuardrailByMonth(t *testing.T) {
	var s CalendarService
	// window crosses July into August; only July has a configured minimum
	days := s.GenerateSkeleton(baseRules(), day("2026-07-25"), 14)
	for _, d := range days {
		date, _ := time.Parse("2006-01-02", d.Date)
		want := 0.0
		if date.Month() == time.July {
			want = 120
		}
		if d.GuardrailMin != want {
			t.Errorf("%s GuardrailMin = %v, want %v", d.Date, d.GuardrailMin, want)
		}
	}
}

func TestGenerateSkeletonLastMinuteFloor(t *testing.T) {
	var s CalendarService
	rules := baseRules()
	rules.RateFreezePeriod = 1
	rules.LastMinuteFloor = models.LastMinuteFloorRule{
		Enabled: true,
		Rate:    90,
		Days:    7,
		Dow:     []string{"sun"},
	}

	// 2026-07-01 is a Wednesday; Sundays in the window are offsets 4 and 11
	days := s.GenerateSkeleton(rules, day("2026-07-01"), 14)
	for i, d := range days {
		date, _ := time.Parse("2006-01-02", d.Date)
		shouldHaveFloor := date.Weekday() == time.Sunday && i <= 7 && !d.IsFrozen
		if shouldHaveFloor {
			if d.FloorRateLMF == nil || *d.FloorRateLMF != 90 {
				t.Errorf("days[%d] (%s) floor = %v, want 90", i, d.Date, d.FloorRateLMF)
			}
		} else if d.FloorRateLMF != nil {
			t.Errorf("days[%d] (%s) floor = %v, want absent", i, d.Date, *d.FloorRateLMF)
		}
	}
}

func TestGenerateSkeletonFloorSuppressed(t *testing.T) {
	var s CalendarService

	// disabled rule: no floors at all
	rules := baseRules()
	rules.LastMinuteFloor = models.LastMinuteFloorRule{Enabled: false, Rate: 90, Days: 7, Dow: []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}}
	for _, d := range s.GenerateSkeleton(rules, day("2026-07-01"), 14) {
		if d.FloorRateLMF != nil {
			t.Fatalf("%s has floor with LMF disabled", d.Date)
		}
	}

	// negative day count clamps to zero; offset 0 is frozen, so no floors
	rules.LastMinuteFloor = models.LastMinuteFloorRule{Enabled: true, Rate: 90, Days: -3, Dow: []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}}
	for _, d := range s.GenerateSkeleton(rules, day("2026-07-01"), 14) {
		if d.FloorRateLMF != nil {
			t.Fatalf("%s has floor with clamped negative LMF days", d.Date)
		}
	}
}

func TestIsFrozen(t *testing.T) {
	var s CalendarService
	rules := baseRules() // freeze period 2
	ref := day("2026-07-10")

	tests := []struct {
		date string
		want bool
	}{
		{"2026-07-09", true}, // past dates never editable
		{"2026-07-10", true},
		{"2026-07-12", true},
		{"2026-07-13", false},
	}
	for _, tt := range tests {
		if got := s.IsFrozen(rules, ref, day(tt.date)); got != tt.want {
			t.Errorf("IsFrozen(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}
