// Package period implements the pay-period engine: calendar splitting,
// forecast resolution, bill assignment, and income lookup. Everything here
// is a pure function over immutable inputs.
package period

import (
	"time"

	"paysplit/internal/model"
)

// A Period is one of the two half-month windows of a calendar month,
// inclusive on both ends.
type Period struct {
	Start time.Time
	End   time.Time
}

// ForMonth splits the anchor date's month into its two pay periods:
// index 0 covers days 1-15, index 1 covers day 16 through month end.
func ForMonth(anchor time.Time) [2]Period {
	y, m := anchor.Year(), anchor.Month()
	last := model.DaysIn(y, m)
	return [2]Period{
		{Start: date(y, m, 1), End: date(y, m, 15)},
		{Start: date(y, m, 16), End: date(y, m, last)},
	}
}

// Contains reports whether the calendar day of t falls inside p.
// Comparison is by ordinal day, never time of day.
func (p Period) Contains(t time.Time) bool {
	d := date(t.Year(), t.Month(), t.Day())
	return !d.Before(p.Start) && !d.After(p.End)
}

// ContainsDay reports whether a recurring day-of-month belongs to p.
// The direct day-range check runs first. If it misses, the half-month
// fallback applies: a period starting on day 1 claims any day <= 15, one
// starting on day 16 claims any day > 15. The fallback keeps days that
// don't exist in short months (31 in a 30-day month) assigned to the
// second period instead of dropping them.
func (p Period) ContainsDay(day int) bool {
	if p.Start.Day() <= day && day <= p.End.Day() {
		return true
	}
	switch p.Start.Day() {
	case 1:
		return day <= 15
	case 16:
		return day > 15
	}
	return false
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
