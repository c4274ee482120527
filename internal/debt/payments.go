package debt

import (
	"time"

	"github.com/google/uuid"

	"paysplit/internal/model"
)

// ApplyPayment appends a payment to the debt's history and reduces the
// balance. Card debts also record the last-payment snapshot. The input debt
// is not modified.
func ApplyPayment(d model.Debt, amount float64, at time.Time) model.Debt {
	out := d
	out.PaymentHistory = make([]model.DebtPayment, len(d.PaymentHistory), len(d.PaymentHistory)+1)
	copy(out.PaymentHistory, d.PaymentHistory)
	out.PaymentHistory = append(out.PaymentHistory, model.DebtPayment{
		ID:     uuid.NewString(),
		Date:   at,
		Amount: amount,
	})
	out.CurrentBalance = d.CurrentBalance - amount

	if card, ok := d.AsCard(); ok {
		c := *card
		date, amt := at, amount
		c.LastPaymentDate = &date
		c.LastPaymentAmount = &amt
		out.Card = &c
	}
	return out
}

// UndoLastPayment pops the most recent payment, restores the prior balance,
// and rewinds the card's last-payment snapshot to the payment before it (or
// clears the snapshot if none exists). A debt with no history is returned
// unchanged.
func UndoLastPayment(d model.Debt) model.Debt {
	n := len(d.PaymentHistory)
	if n == 0 {
		return d
	}

	last := d.PaymentHistory[n-1]
	out := d
	out.PaymentHistory = make([]model.DebtPayment, n-1)
	copy(out.PaymentHistory, d.PaymentHistory[:n-1])
	out.CurrentBalance = d.CurrentBalance + last.Amount

	if card, ok := d.AsCard(); ok {
		c := *card
		if n > 1 {
			prev := d.PaymentHistory[n-2]
			date, amt := prev.Date, prev.Amount
			c.LastPaymentDate = &date
			c.LastPaymentAmount = &amt
		} else {
			c.LastPaymentDate = nil
			c.LastPaymentAmount = nil
		}
		out.Card = &c
	}
	return out
}
