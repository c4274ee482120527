package period

import "paysplit/internal/model"

// ResolveAmount returns the amount a bill charges in the given month.
// Non-recurring bills always charge their flat amount. Recurring bills use
// the forecast entry matching the month key when one exists, otherwise the
// flat amount. There is no interpolation across months.
func ResolveAmount(b model.Bill, monthKey string) float64 {
	if !b.Recurring {
		return b.Amount
	}
	for _, f := range b.Forecasts {
		if f.Month == monthKey {
			return f.EstimatedAmount
		}
	}
	return b.Amount
}

// SetForecast returns the bill with its forecast for the month replaced or
// appended. The input bill is not modified.
func SetForecast(b model.Bill, monthKey string, amount float64) model.Bill {
	out := b
	out.Forecasts = make([]model.BillForecast, 0, len(b.Forecasts)+1)
	replaced := false
	for _, f := range b.Forecasts {
		if f.Month == monthKey {
			f.EstimatedAmount = amount
			replaced = true
		}
		out.Forecasts = append(out.Forecasts, f)
	}
	if !replaced {
		out.Forecasts = append(out.Forecasts, model.BillForecast{Month: monthKey, EstimatedAmount: amount})
	}
	return out
}

// ClearForecast returns the bill without any forecast for the month.
func ClearForecast(b model.Bill, monthKey string) model.Bill {
	out := b
	out.Forecasts = nil
	for _, f := range b.Forecasts {
		if f.Month != monthKey {
			out.Forecasts = append(out.Forecasts, f)
		}
	}
	return out
}
