package model

import (
	"fmt"
	"time"
)

// MonthKeyLayout is the Go time layout for "YYYY-MM" month keys.
// Keys compare lexicographically in chronological order.
const MonthKeyLayout = "2006-01"

// MonthKey returns the month key for a date.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// ParseMonthKey parses a "YYYY-MM" key into the first day of that month.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", key, err)
	}
	return t, nil
}

// SameMonth reports whether two dates fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysIn returns the number of days in a month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay clamps a day-of-month to what actually exists in the month,
// so day 31 in February becomes the 28th (or 29th).
func ClampDay(year int, month time.Month, day int) int {
	if day < 1 {
		return 1
	}
	if last := DaysIn(year, month); day > last {
		return last
	}
	return day
}

// AddMonths shifts a date by whole months, anchored to the first of the
// month so that month navigation never skips short months.
func AddMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
}
