package store

import (
	"path/filepath"
	"testing"
	"time"

	"paysplit/internal/model"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "paysplit.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_DefaultsWhenEmpty(t *testing.T) {
	s := openTemp(t)

	bills, err := s.Bills()
	if err != nil {
		t.Fatalf("Bills: %v", err)
	}
	if len(bills) != 0 {
		t.Errorf("fresh store has %d bills, want 0", len(bills))
	}

	state, err := s.DebtState()
	if err != nil {
		t.Fatalf("DebtState: %v", err)
	}
	if state.Settings != model.DefaultDebtSettings() {
		t.Errorf("fresh settings = %+v, want defaults", state.Settings)
	}

	periods, err := s.Periods()
	if err != nil {
		t.Fatalf("Periods: %v", err)
	}
	if len(periods) != 0 {
		t.Errorf("fresh store has %d period months, want 0", len(periods))
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := openTemp(t)

	bills := []model.Bill{{
		ID:        "b1",
		Name:      "Internet",
		Amount:    79.99,
		DueDate:   time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
		Recurring: true, DayOfMonth: 7,
		Forecasts: []model.BillForecast{{Month: "2025-08", EstimatedAmount: 85}},
		Method:    model.PayChecking,
	}}
	if err := s.SaveBills(bills); err != nil {
		t.Fatalf("SaveBills: %v", err)
	}

	got, err := s.Bills()
	if err != nil {
		t.Fatalf("Bills: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Internet" || got[0].Forecasts[0].EstimatedAmount != 85 {
		t.Errorf("loaded bills = %+v, want saved value back", got)
	}
	if !got[0].DueDate.Equal(bills[0].DueDate) {
		t.Errorf("due date = %v, want %v", got[0].DueDate, bills[0].DueDate)
	}
}

func TestStore_ReplaceOnWrite(t *testing.T) {
	s := openTemp(t)

	est := 1500.0
	periods := model.MonthPeriods{
		"2025-06": {{Income: 2000}, {EstimatedIncome: &est}},
	}
	if err := s.SavePeriods(periods); err != nil {
		t.Fatalf("SavePeriods: %v", err)
	}
	if err := s.SavePeriods(model.MonthPeriods{"2025-07": {{Income: 1}, {}}}); err != nil {
		t.Fatalf("SavePeriods: %v", err)
	}

	got, err := s.Periods()
	if err != nil {
		t.Fatalf("Periods: %v", err)
	}
	if _, ok := got["2025-06"]; ok {
		t.Error("old document contents survived a whole-document replace")
	}
	if got["2025-07"][0].Income != 1 {
		t.Errorf("loaded periods = %+v, want the replacement document", got)
	}
}

func TestStore_DebtStateRoundTrip(t *testing.T) {
	s := openTemp(t)

	amt := 120.0
	at := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	state := model.DebtState{
		Debts: []model.Debt{{
			ID: "visa", Name: "Visa", Kind: model.DebtCreditCard,
			CurrentBalance: 900, MinimumPayment: 35,
			PaymentHistory: []model.DebtPayment{{ID: "p1", Date: at, Amount: 120}},
			Card: &model.CreditCardInfo{
				CreditLimit: 3000, APR: 0.23, DueDay: 12,
				LastPaymentDate: &at, LastPaymentAmount: &amt,
			},
		}},
		Settings: model.DebtSettings{VariableThreshold: 300, MinimumExtraPayment: 25},
	}
	if err := s.SaveDebtState(state); err != nil {
		t.Fatalf("SaveDebtState: %v", err)
	}

	got, err := s.DebtState()
	if err != nil {
		t.Fatalf("DebtState: %v", err)
	}
	if got.Settings.VariableThreshold != 300 {
		t.Errorf("settings = %+v, want saved values", got.Settings)
	}
	card, ok := got.Debts[0].AsCard()
	if !ok {
		t.Fatal("card discriminant lost in round trip")
	}
	if card.DueDay != 12 || card.LastPaymentAmount == nil || *card.LastPaymentAmount != 120 {
		t.Errorf("card info = %+v, want due day 12 and snapshot 120", card)
	}
}
