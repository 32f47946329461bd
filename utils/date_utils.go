package utils

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

var monthKeys = [12]string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

var weekdayCodes = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// MonthKey returns the month key ("jan".."dec") used by monthly_min_rates.
func MonthKey(t time.Time) string {
	return monthKeys[int(t.Month())-1]
}

// WeekdayCode returns the weekday code ("sun".."sat") used by LMF dow sets.
func WeekdayCode(t time.Time) string {
	return weekdayCodes[int(t.Weekday())]
}

// DateAtUTC truncates a time to its calendar date in UTC. All calendar
// arithmetic happens in UTC to avoid timezone drift across the window.
func DateAtUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders the ISO date key for a day.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate accepts YYYY-MM-DD or RFC3339 and normalizes to a UTC date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateAtUTC(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateAtUTC(t), nil
}

// ParseOverrideValue interprets user input for an override cell. Empty,
// "-" and non-numeric input mean "clear the override", never an error.
func ParseOverrideValue(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
