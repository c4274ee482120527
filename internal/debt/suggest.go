// Package debt implements payment-history bookkeeping and the extra-payment
// suggestion heuristic for revolving balances.
package debt

import (
	"fmt"
	"math"
	"sort"

	"paysplit/internal/model"
)

// Suggest computes ranked extra-payment suggestions for a period's leftover
// income.
//
// The variable threshold is carved off first; whatever remains must cover
// every card's minimum payment before any extra is distributed. Each card's
// share of the extra is the average of its APR share and its balance share,
// floored to whole currency units, raised to the configured minimum extra,
// and capped at the card's balance. Priority is 90 minus the card's position
// in APR-descending order, ties keeping their original relative order.
//
// The per-card flooring means suggested amounts need not sum to the extra
// exactly. That slack is part of the contract: this is a heuristic, not a
// solver.
func Suggest(available float64, debts []model.Debt, settings model.DebtSettings) []model.PaymentSuggestion {
	remaining := available - settings.VariableThreshold
	if remaining <= 0 {
		return nil
	}

	type card struct {
		debt model.Debt
		info *model.CreditCardInfo
	}
	var cards []card
	for _, d := range debts {
		if info, ok := d.AsCard(); ok && d.CurrentBalance > 0 {
			cards = append(cards, card{debt: d, info: info})
		}
	}
	if len(cards) == 0 {
		return nil
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].info.APR > cards[j].info.APR
	})

	var totalMin, aprSum, balanceSum float64
	for _, c := range cards {
		totalMin += c.debt.MinimumPayment
		aprSum += c.info.APR
		balanceSum += c.debt.CurrentBalance
	}

	extra := remaining - totalMin
	if extra <= 0 {
		return nil
	}

	var out []model.PaymentSuggestion
	for i, c := range cards {
		// Zero sums degrade that factor to zero weight rather than dividing.
		var aprShare, balanceShare float64
		if aprSum > 0 {
			aprShare = c.info.APR / aprSum
		}
		if balanceSum > 0 {
			balanceShare = c.debt.CurrentBalance / balanceSum
		}
		weight := (aprShare + balanceShare) / 2

		suggested := math.Floor(extra * weight)
		if suggested < settings.MinimumExtraPayment {
			suggested = settings.MinimumExtraPayment
		}
		if suggested > c.debt.CurrentBalance {
			suggested = c.debt.CurrentBalance
		}
		if suggested <= 0 {
			continue
		}

		out = append(out, model.PaymentSuggestion{
			DebtID:          c.debt.ID,
			SuggestedAmount: suggested,
			Reason:          fmt.Sprintf("Suggested payment for %s", c.debt.Name),
			Priority:        90 - i,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}
