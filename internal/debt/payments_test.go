package debt

import (
	"testing"
	"time"

	"paysplit/internal/model"
)

func TestApplyPayment(t *testing.T) {
	d := model.Debt{
		ID: "visa", Kind: model.DebtCreditCard,
		CurrentBalance: 1000,
		Card:           &model.CreditCardInfo{CreditLimit: 4000, APR: 0.21},
	}
	at := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	paid := ApplyPayment(d, 150, at)

	if paid.CurrentBalance != 850 {
		t.Errorf("balance = %v, want 850", paid.CurrentBalance)
	}
	if len(paid.PaymentHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(paid.PaymentHistory))
	}
	p := paid.PaymentHistory[0]
	if p.Amount != 150 || !p.Date.Equal(at) || p.ID == "" {
		t.Errorf("payment = %+v, want amount 150 at %v with an ID", p, at)
	}
	if paid.Card.LastPaymentDate == nil || !paid.Card.LastPaymentDate.Equal(at) {
		t.Errorf("last payment date = %v, want %v", paid.Card.LastPaymentDate, at)
	}
	if paid.Card.LastPaymentAmount == nil || *paid.Card.LastPaymentAmount != 150 {
		t.Errorf("last payment amount = %v, want 150", paid.Card.LastPaymentAmount)
	}

	// Input untouched.
	if d.CurrentBalance != 1000 || len(d.PaymentHistory) != 0 || d.Card.LastPaymentDate != nil {
		t.Error("ApplyPayment modified its input")
	}
}

func TestUndoLastPayment(t *testing.T) {
	d := model.Debt{
		ID: "visa", Kind: model.DebtCreditCard,
		CurrentBalance: 1000,
		Card:           &model.CreditCardInfo{CreditLimit: 4000, APR: 0.21},
	}
	first := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	second := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	d = ApplyPayment(d, 150, first)
	d = ApplyPayment(d, 200, second)
	if d.CurrentBalance != 650 {
		t.Fatalf("balance after two payments = %v, want 650", d.CurrentBalance)
	}

	undone := UndoLastPayment(d)
	if undone.CurrentBalance != 850 {
		t.Errorf("balance = %v, want restored 850", undone.CurrentBalance)
	}
	if len(undone.PaymentHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(undone.PaymentHistory))
	}
	if undone.Card.LastPaymentDate == nil || !undone.Card.LastPaymentDate.Equal(first) {
		t.Errorf("snapshot date = %v, want rewound to %v", undone.Card.LastPaymentDate, first)
	}
	if undone.Card.LastPaymentAmount == nil || *undone.Card.LastPaymentAmount != 150 {
		t.Errorf("snapshot amount = %v, want 150", undone.Card.LastPaymentAmount)
	}

	// Undoing the only remaining payment clears the snapshot.
	undone = UndoLastPayment(undone)
	if undone.CurrentBalance != 1000 {
		t.Errorf("balance = %v, want original 1000", undone.CurrentBalance)
	}
	if undone.Card.LastPaymentDate != nil || undone.Card.LastPaymentAmount != nil {
		t.Error("snapshot not cleared after undoing the only payment")
	}
}

func TestUndoLastPayment_EmptyHistoryIsNoop(t *testing.T) {
	d := model.Debt{ID: "visa", Kind: model.DebtCreditCard, CurrentBalance: 500,
		Card: &model.CreditCardInfo{}}

	got := UndoLastPayment(d)
	if got.CurrentBalance != 500 || len(got.PaymentHistory) != 0 {
		t.Errorf("undo on empty history changed the debt: %+v", got)
	}
}

func TestPaymentOps_LoanHasNoSnapshot(t *testing.T) {
	d := model.Debt{ID: "loan", Kind: model.DebtLoan, CurrentBalance: 5000}

	paid := ApplyPayment(d, 300, time.Now())
	if paid.CurrentBalance != 4700 {
		t.Errorf("balance = %v, want 4700", paid.CurrentBalance)
	}
	if paid.Card != nil {
		t.Error("loan payment created card fields")
	}

	undone := UndoLastPayment(paid)
	if undone.CurrentBalance != 5000 {
		t.Errorf("balance = %v, want 5000", undone.CurrentBalance)
	}
}
