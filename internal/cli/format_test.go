package cli

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{79.99, "$79.99"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{-42.25, "-$42.25"},
		{0.995, "$1.00"}, // cents rounding carries into the whole part
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatOrdinalDay(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {22, "22nd"}, {23, "23rd"}, {31, "31st"},
	}

	for _, tt := range tests {
		if got := FormatOrdinalDay(tt.day); got != tt.want {
			t.Errorf("FormatOrdinalDay(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestFormatPeriodRange(t *testing.T) {
	start := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	if got, want := FormatPeriodRange(start, end), "Jun 16 - Jun 30"; got != want {
		t.Errorf("FormatPeriodRange() = %q, want %q", got, want)
	}
}
