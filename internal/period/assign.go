package period

import (
	"time"

	"paysplit/internal/model"
)

// EntryKind discriminates regular bills from synthesized card minimums.
type EntryKind string

const (
	EntryBill        EntryKind = "bill"
	EntryCardMinimum EntryKind = "card_minimum"
)

// Entry is one line of a period's bill list, carrying the amount resolved
// for the viewed month.
type Entry struct {
	ID      string
	Name    string
	Amount  float64
	DueDate time.Time
	AutoPay bool
	Method  model.PaymentMethod
	Kind    EntryKind

	// Card display fields, set on EntryCardMinimum entries only.
	CardBalance float64
	CreditLimit float64
	APR         float64
}

// Assigned is one pay period of the viewed month with its resolved bill
// list and income. It is a projection: recomputed from the source documents
// on every read, never stored.
type Assigned struct {
	Period          Period
	Index           int
	Income          float64
	EstimatedIncome *float64
	Entries         []Entry
}

// TotalBills sums the resolved amounts assigned to the period.
func (a Assigned) TotalBills() float64 {
	var sum float64
	for _, e := range a.Entries {
		sum += e.Amount
	}
	return sum
}

// DisplayIncome is the income shown for the period: the entered amount for
// the current month, otherwise the estimate when one exists.
func (a Assigned) DisplayIncome() float64 {
	if a.Income != 0 {
		return a.Income
	}
	if a.EstimatedIncome != nil {
		return *a.EstimatedIncome
	}
	return 0
}

// Leftover is the discretionary amount after bills, fed to the debt
// suggestion engine.
func (a Assigned) Leftover() float64 {
	return a.DisplayIncome() - a.TotalBills()
}

// Assign builds the two periods of the anchor month and places every bill
// and credit-card minimum into them.
//
// Non-recurring bills land in the period whose date range contains their
// due date. Recurring bills try the literal due date first, then fall back
// to the configured day-of-month membership rule. Amounts are resolved
// against the viewed month, so a recurring bill's amount follows that
// month's forecast as the user navigates.
//
// Each credit card contributes a synthesized minimum-payment entry whose
// due date combines the viewed month with the card's due day, clamped to
// the last day of short months; membership uses the unclamped day so the
// half-month fallback still applies.
//
// Income comes from the stored periods when the viewed month is the current
// calendar month, otherwise from the estimate store.
func Assign(
	bills []model.Bill,
	debts []model.Debt,
	anchor, now time.Time,
	stored [2]model.StoredPeriod,
	estimates []model.PayPeriodEstimate,
) [2]Assigned {
	periods := ForMonth(anchor)
	monthKey := model.MonthKey(anchor)
	current := model.SameMonth(anchor, now)

	var out [2]Assigned
	for i := range periods {
		out[i] = Assigned{Period: periods[i], Index: i}
		if current {
			out[i].Income = stored[i].Income
		} else if est, ok := EstimatedIncome(estimates, monthKey, i); ok {
			out[i].EstimatedIncome = &est
		}
	}

	for _, b := range bills {
		for i := range periods {
			in := periods[i].Contains(b.DueDate)
			if !in && b.Recurring {
				day := b.DayOfMonth
				if day == 0 {
					day = b.DueDate.Day()
				}
				in = periods[i].ContainsDay(day)
			}
			if !in {
				continue
			}
			out[i].Entries = append(out[i].Entries, Entry{
				ID:      b.ID,
				Name:    b.Name,
				Amount:  ResolveAmount(b, monthKey),
				DueDate: b.DueDate,
				AutoPay: b.AutoPay,
				Method:  b.Method,
				Kind:    EntryBill,
			})
		}
	}

	y, m := anchor.Year(), anchor.Month()
	for _, d := range debts {
		card, ok := d.AsCard()
		if !ok {
			continue
		}
		due := date(y, m, model.ClampDay(y, m, card.DueDay))
		for i := range periods {
			if !periods[i].ContainsDay(card.DueDay) {
				continue
			}
			out[i].Entries = append(out[i].Entries, Entry{
				ID:          d.ID,
				Name:        d.Name,
				Amount:      d.MinimumPayment,
				DueDate:     due,
				Method:      model.PayChecking,
				Kind:        EntryCardMinimum,
				CardBalance: d.CurrentBalance,
				CreditLimit: card.CreditLimit,
				APR:         card.APR,
			})
		}
	}

	return out
}
