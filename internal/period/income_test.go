package period

import (
	"testing"
	"time"

	"paysplit/internal/model"
)

func TestEstimatedIncome(t *testing.T) {
	estimates := []model.PayPeriodEstimate{
		{Month: "2025-02", PeriodIndex: 0, EstimatedIncome: 1800},
		{Month: "2025-04", PeriodIndex: 0, EstimatedIncome: 2000},
		{Month: "2025-03", PeriodIndex: 1, EstimatedIncome: 2100},
	}

	tests := []struct {
		name        string
		monthKey    string
		periodIndex int
		want        float64
		wantOK      bool
	}{
		{"exact match", "2025-04", 0, 2000, true},
		{"missing month uses latest for index", "2025-06", 0, 2000, true},
		{"latest ignores other index", "2025-06", 1, 2100, true},
		{"no estimates for index", "2025-06", 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EstimatedIncome(estimates, tt.monthKey, tt.periodIndex)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("EstimatedIncome() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if _, ok := EstimatedIncome(nil, "2025-01", 0); ok {
		t.Error("empty estimate store returned a value")
	}
}

func TestSetIncome_CurrentMonth(t *testing.T) {
	now := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	est := 1500.0
	periods := model.MonthPeriods{
		"2025-05": {{Income: 0, EstimatedIncome: &est}, {}},
	}

	outPeriods, outEstimates := SetIncome(periods, nil, "2025-05", 0, 2400, now)

	got := outPeriods["2025-05"][0]
	if got.Income != 2400 {
		t.Errorf("income = %v, want 2400", got.Income)
	}
	if got.EstimatedIncome != nil {
		t.Error("estimated income not cleared for the current month")
	}
	if len(outEstimates) != 0 {
		t.Errorf("current-month edit wrote %d estimates, want none", len(outEstimates))
	}
	if periods["2025-05"][0].Income != 0 {
		t.Error("SetIncome modified its input map")
	}
}

func TestSetIncome_OtherMonth(t *testing.T) {
	now := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	estimates := []model.PayPeriodEstimate{
		{Month: "2025-07", PeriodIndex: 1, EstimatedIncome: 1000},
		{Month: "2025-06", PeriodIndex: 1, EstimatedIncome: 900},
	}

	outPeriods, outEstimates := SetIncome(model.MonthPeriods{}, estimates, "2025-07", 1, 1750, now)

	sp := outPeriods["2025-07"][1]
	if sp.Income != 0 {
		t.Errorf("income = %v, want untouched 0", sp.Income)
	}
	if sp.EstimatedIncome == nil || *sp.EstimatedIncome != 1750 {
		t.Errorf("estimated income = %v, want 1750", sp.EstimatedIncome)
	}

	// The (2025-07, 1) entry is replaced, not appended.
	if len(outEstimates) != 2 {
		t.Fatalf("got %d estimates, want 2", len(outEstimates))
	}
	got, ok := EstimatedIncome(outEstimates, "2025-07", 1)
	if !ok || got != 1750 {
		t.Errorf("stored estimate = %v, %v; want 1750, true", got, ok)
	}
}
