// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats a currency amount with a dollar sign, comma
// separators, and two decimals. e.g., 1234.5 -> "$1,234.50"
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	whole := int64(amount)
	cents := int64((amount-float64(whole))*100 + 0.5)
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return fmt.Sprintf("$%s.%02d", FormatNumber(whole), cents)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatAPR formats an APR fraction with the precision card statements use.
func FormatAPR(apr float64) string {
	return fmt.Sprintf("%.2f%%", apr*100)
}

// FormatDate formats a date for bill rows. e.g., "Jun 21"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatDateLong formats a date for payment history. e.g., "Jun 21, 2025"
func FormatDateLong(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatPeriodRange formats a pay period's span. e.g., "Jun 1 - Jun 15"
func FormatPeriodRange(start, end time.Time) string {
	return start.Format("Jan 2") + " - " + end.Format("Jan 2")
}

// FormatMonth formats a month anchor for titles. e.g., "June 2025"
func FormatMonth(t time.Time) string {
	return t.Format("January 2006")
}

// FormatOrdinalDay renders a day of month as "1st", "2nd", "21st", etc.
func FormatOrdinalDay(day int) string {
	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
		// 11th, 12th, 13th
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
