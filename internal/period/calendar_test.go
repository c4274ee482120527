package period

import (
	"testing"
	"time"
)

func TestForMonth_CoversWholeMonth(t *testing.T) {
	tests := []struct {
		name    string
		anchor  time.Time
		lastDay int
	}{
		{"31-day month", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 31},
		{"30-day month", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 30},
		{"february", time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), 28},
		{"leap february", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := ForMonth(tt.anchor)

			if got := periods[0].Start.Day(); got != 1 {
				t.Errorf("first period starts on day %d, want 1", got)
			}
			if got := periods[0].End.Day(); got != 15 {
				t.Errorf("first period ends on day %d, want 15", got)
			}
			if got := periods[1].Start.Day(); got != 16 {
				t.Errorf("second period starts on day %d, want 16", got)
			}
			if got := periods[1].End.Day(); got != tt.lastDay {
				t.Errorf("second period ends on day %d, want %d", got, tt.lastDay)
			}

			// Every day of the month belongs to exactly one period.
			for day := 1; day <= tt.lastDay; day++ {
				d := time.Date(tt.anchor.Year(), tt.anchor.Month(), day, 0, 0, 0, 0, time.UTC)
				count := 0
				for _, p := range periods {
					if p.Contains(d) {
						count++
					}
				}
				if count != 1 {
					t.Errorf("day %d matched %d periods, want exactly 1", day, count)
				}
			}
		})
	}
}

func TestPeriod_Contains_IgnoresTimeOfDay(t *testing.T) {
	periods := ForMonth(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	lastMoment := time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC)
	if !periods[0].Contains(lastMoment) {
		t.Error("end of day 15 should still be in the first period")
	}
	firstMoment := time.Date(2025, 3, 16, 0, 0, 1, 0, time.UTC)
	if periods[0].Contains(firstMoment) {
		t.Error("day 16 should not be in the first period")
	}
}

func TestPeriod_ContainsDay(t *testing.T) {
	april := ForMonth(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) // 30 days

	tests := []struct {
		name   string
		period Period
		day    int
		want   bool
	}{
		{"direct hit first period", april[0], 10, true},
		{"day 15 boundary", april[0], 15, true},
		{"day 16 not in first", april[0], 16, false},
		{"direct hit second period", april[1], 20, true},
		// Day 31 doesn't exist in April; the fallback claims it for the
		// second period anyway.
		{"day 31 in 30-day month", april[1], 31, true},
		{"day 31 not in first period", april[0], 31, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.period.ContainsDay(tt.day); got != tt.want {
				t.Errorf("ContainsDay(%d) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}
