package period

import (
	"testing"
	"time"

	"paysplit/internal/model"
)

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entryIDs(a Assigned) []string {
	ids := make([]string, 0, len(a.Entries))
	for _, e := range a.Entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func hasEntry(a Assigned, id string) bool {
	for _, e := range a.Entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

func TestAssign_NonRecurringByDueDate(t *testing.T) {
	bills := []model.Bill{
		{ID: "rent", Name: "Rent", Amount: 1400, DueDate: utc(2025, 1, 1)},
		{ID: "car", Name: "Car Payment", Amount: 350, DueDate: utc(2025, 1, 20)},
	}
	now := utc(2025, 1, 5)

	periods := Assign(bills, nil, now, now, [2]model.StoredPeriod{}, nil)

	if !hasEntry(periods[0], "rent") || hasEntry(periods[1], "rent") {
		t.Errorf("rent assigned to %v / %v, want first period only", entryIDs(periods[0]), entryIDs(periods[1]))
	}
	if !hasEntry(periods[1], "car") || hasEntry(periods[0], "car") {
		t.Errorf("day-20 bill assigned to %v / %v, want second period only", entryIDs(periods[0]), entryIDs(periods[1]))
	}
}

func TestAssign_RecurringDay31InShortMonth(t *testing.T) {
	bills := []model.Bill{{
		ID:         "gym",
		Name:       "Gym",
		Amount:     45,
		DueDate:    utc(2025, 1, 31),
		Recurring:  true,
		DayOfMonth: 31,
	}}
	anchor := utc(2025, 4, 1) // April has 30 days

	periods := Assign(bills, nil, anchor, utc(2025, 4, 10), [2]model.StoredPeriod{}, nil)

	if hasEntry(periods[0], "gym") {
		t.Error("day-31 recurring bill landed in the first period")
	}
	if !hasEntry(periods[1], "gym") {
		t.Error("day-31 recurring bill missing from the second period in a 30-day month")
	}
}

func TestAssign_RecurringAmountFollowsViewedMonth(t *testing.T) {
	bills := []model.Bill{{
		ID:         "electric",
		Name:       "Electric",
		Amount:     120,
		DueDate:    utc(2025, 1, 10),
		Recurring:  true,
		DayOfMonth: 10,
		Forecasts:  []model.BillForecast{{Month: "2025-07", EstimatedAmount: 195}},
	}}

	july := Assign(bills, nil, utc(2025, 7, 1), utc(2025, 1, 5), [2]model.StoredPeriod{}, nil)
	if got := july[0].Entries[0].Amount; got != 195 {
		t.Errorf("july amount = %v, want forecast 195", got)
	}

	march := Assign(bills, nil, utc(2025, 3, 1), utc(2025, 1, 5), [2]model.StoredPeriod{}, nil)
	if got := march[0].Entries[0].Amount; got != 120 {
		t.Errorf("march amount = %v, want flat 120", got)
	}
}

func TestAssign_CardMinimumSynthesized(t *testing.T) {
	limit := 5000.0
	debts := []model.Debt{
		{
			ID: "visa", Name: "Visa", Kind: model.DebtCreditCard,
			CurrentBalance: 1200, MinimumPayment: 35,
			Card: &model.CreditCardInfo{CreditLimit: limit, APR: 0.24, DueDay: 21},
		},
		{
			ID: "student", Name: "Student Loan", Kind: model.DebtLoan,
			CurrentBalance: 9000, MinimumPayment: 150,
		},
	}
	anchor := utc(2025, 6, 1)

	periods := Assign(nil, debts, anchor, anchor, [2]model.StoredPeriod{}, nil)

	if hasEntry(periods[0], "visa") {
		t.Error("day-21 card minimum landed in the first period")
	}
	if !hasEntry(periods[1], "visa") {
		t.Fatal("card minimum entry missing from the second period")
	}
	if hasEntry(periods[0], "student") || hasEntry(periods[1], "student") {
		t.Error("non-card debt produced a synthesized entry")
	}

	var e Entry
	for _, cand := range periods[1].Entries {
		if cand.ID == "visa" {
			e = cand
		}
	}
	if e.Kind != EntryCardMinimum {
		t.Errorf("entry kind = %q, want %q", e.Kind, EntryCardMinimum)
	}
	if e.Amount != 35 {
		t.Errorf("entry amount = %v, want minimum payment 35", e.Amount)
	}
	if want := utc(2025, 6, 21); !e.DueDate.Equal(want) {
		t.Errorf("entry due date = %v, want %v", e.DueDate, want)
	}
	if e.CardBalance != 1200 || e.CreditLimit != 5000 {
		t.Errorf("card display fields = %v/%v, want 1200/5000", e.CardBalance, e.CreditLimit)
	}
}

func TestAssign_CardDueDayClampedInFebruary(t *testing.T) {
	debts := []model.Debt{{
		ID: "visa", Name: "Visa", Kind: model.DebtCreditCard,
		CurrentBalance: 800, MinimumPayment: 25,
		Card: &model.CreditCardInfo{CreditLimit: 3000, APR: 0.22, DueDay: 31},
	}}
	anchor := utc(2025, 2, 1)

	periods := Assign(nil, debts, anchor, anchor, [2]model.StoredPeriod{}, nil)

	if !hasEntry(periods[1], "visa") {
		t.Fatal("day-31 card missing from the second period of February")
	}
	got := periods[1].Entries[0].DueDate
	if want := utc(2025, 2, 28); !got.Equal(want) {
		t.Errorf("due date = %v, want clamped to %v", got, want)
	}
}

func TestAssign_IncomeSelection(t *testing.T) {
	now := utc(2025, 5, 10)
	stored := [2]model.StoredPeriod{{Income: 2100}, {Income: 2200}}
	estimates := []model.PayPeriodEstimate{
		{Month: "2025-04", PeriodIndex: 0, EstimatedIncome: 1900},
		{Month: "2025-03", PeriodIndex: 0, EstimatedIncome: 1700},
	}

	current := Assign(nil, nil, now, now, stored, estimates)
	if current[0].Income != 2100 || current[0].EstimatedIncome != nil {
		t.Errorf("current month period 0: income=%v est=%v, want entered income and no estimate",
			current[0].Income, current[0].EstimatedIncome)
	}

	// Viewing June: no exact estimate, latest for index 0 is April's.
	future := Assign(nil, nil, utc(2025, 6, 1), now, [2]model.StoredPeriod{}, estimates)
	if future[0].Income != 0 {
		t.Errorf("future month income = %v, want 0", future[0].Income)
	}
	if future[0].EstimatedIncome == nil || *future[0].EstimatedIncome != 1900 {
		t.Errorf("future month estimate = %v, want fallback 1900", future[0].EstimatedIncome)
	}
	if future[1].EstimatedIncome != nil {
		t.Error("period index 1 has no estimates but one was returned")
	}
}

func TestAssigned_Totals(t *testing.T) {
	est := 1500.0
	a := Assigned{
		EstimatedIncome: &est,
		Entries: []Entry{
			{Amount: 400}, {Amount: 100.50},
		},
	}

	if got := a.TotalBills(); got != 500.50 {
		t.Errorf("TotalBills() = %v, want 500.50", got)
	}
	if got := a.DisplayIncome(); got != 1500 {
		t.Errorf("DisplayIncome() = %v, want estimate 1500", got)
	}
	if got := a.Leftover(); got != 999.50 {
		t.Errorf("Leftover() = %v, want 999.50", got)
	}

	a.Income = 2000
	if got := a.DisplayIncome(); got != 2000 {
		t.Errorf("DisplayIncome() with entered income = %v, want 2000", got)
	}
}
