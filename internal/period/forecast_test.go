package period

import (
	"testing"
	"time"

	"paysplit/internal/model"
)

func TestResolveAmount(t *testing.T) {
	recurring := model.Bill{
		Name:      "Electric",
		Amount:    120,
		Recurring: true,
		Forecasts: []model.BillForecast{
			{Month: "2025-07", EstimatedAmount: 180},
			{Month: "2025-08", EstimatedAmount: 0},
		},
	}

	tests := []struct {
		name     string
		bill     model.Bill
		monthKey string
		want     float64
	}{
		{"non-recurring ignores forecasts", model.Bill{Amount: 42, Forecasts: []model.BillForecast{{Month: "2025-07", EstimatedAmount: 99}}}, "2025-07", 42},
		{"forecast match", recurring, "2025-07", 180},
		{"no forecast falls back to flat", recurring, "2025-06", 120},
		{"explicit zero forecast resolves to zero", recurring, "2025-08", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveAmount(tt.bill, tt.monthKey); got != tt.want {
				t.Errorf("ResolveAmount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetForecast_ReplacesExistingMonth(t *testing.T) {
	b := model.Bill{
		Recurring: true,
		DueDate:   time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Forecasts: []model.BillForecast{{Month: "2025-07", EstimatedAmount: 100}},
	}

	updated := SetForecast(b, "2025-07", 150)
	if len(updated.Forecasts) != 1 {
		t.Fatalf("got %d forecasts, want 1 (replace, not append)", len(updated.Forecasts))
	}
	if updated.Forecasts[0].EstimatedAmount != 150 {
		t.Errorf("forecast amount = %v, want 150", updated.Forecasts[0].EstimatedAmount)
	}
	if b.Forecasts[0].EstimatedAmount != 100 {
		t.Error("SetForecast modified its input")
	}

	added := SetForecast(b, "2025-08", 90)
	if len(added.Forecasts) != 2 {
		t.Fatalf("got %d forecasts, want 2", len(added.Forecasts))
	}
}

func TestClearForecast(t *testing.T) {
	b := model.Bill{
		Recurring: true,
		Forecasts: []model.BillForecast{
			{Month: "2025-07", EstimatedAmount: 100},
			{Month: "2025-08", EstimatedAmount: 90},
		},
	}

	cleared := ClearForecast(b, "2025-07")
	if len(cleared.Forecasts) != 1 || cleared.Forecasts[0].Month != "2025-08" {
		t.Errorf("ClearForecast left %v, want only 2025-08", cleared.Forecasts)
	}
}
