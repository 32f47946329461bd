package utils

import (
	"testing"
	"time"
)

func TestMonthKey(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2026-01-15", "jan"},
		{"2026-06-01", "jun"},
		{"2026-12-31", "dec"},
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := MonthKey(d); got != tt.want {
			t.Errorf("MonthKey(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}

func TestWeekdayCode(t *testing.T) {
	// 2026-07-05 is a Sunday
	d, err := ParseDate("2026-07-05")
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"} {
		if got := WeekdayCode(d.AddDate(0, 0, i)); got != want {
			t.Errorf("WeekdayCode(+%d) = %s, want %s", i, got, want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-07-01")
	if err != nil {
		t.Fatal(err)
	}
	if FormatDate(d) != "2026-07-01" {
		t.Errorf("round trip = %s", FormatDate(d))
	}
	if d.Location() != time.UTC || d.Hour() != 0 {
		t.Errorf("not normalized to UTC midnight: %v", d)
	}

	// RFC3339 input collapses to its UTC date
	d, err = ParseDate("2026-07-01T23:30:00+02:00")
	if err != nil {
		t.Fatal(err)
	}
	if FormatDate(d) != "2026-07-01" {
		t.Errorf("RFC3339 date = %s, want 2026-07-01", FormatDate(d))
	}

	for _, bad := range []string{"", "  ", "07/01/2026", "2026-13-01"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) accepted", bad)
		}
	}
}

func TestParseOverrideValue(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		hasVal bool
	}{
		{"120", 120, true},
		{" 99.5 ", 99.5, true},
		{"", 0, false},
		{"   ", 0, false},
		{"-", 0, false},
		{"abc", 0, false},
		{"12a", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseOverrideValue(tt.raw)
		if ok != tt.hasVal || (ok && got != tt.want) {
			t.Errorf("ParseOverrideValue(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.hasVal)
		}
	}
}
