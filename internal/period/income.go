package period

import (
	"time"

	"paysplit/internal/model"
)

// EstimatedIncome returns the best income estimate for (monthKey, index):
// the exact match when present, otherwise the most recent estimate recorded
// for that period index across all months. Month keys sort chronologically,
// so a plain string comparison finds the latest.
func EstimatedIncome(estimates []model.PayPeriodEstimate, monthKey string, periodIndex int) (float64, bool) {
	var (
		latest      model.PayPeriodEstimate
		foundLatest bool
	)
	for _, e := range estimates {
		if e.PeriodIndex != periodIndex {
			continue
		}
		if e.Month == monthKey {
			return e.EstimatedIncome, true
		}
		if !foundLatest || e.Month > latest.Month {
			latest = e
			foundLatest = true
		}
	}
	if foundLatest {
		return latest.EstimatedIncome, true
	}
	return 0, false
}

// SetIncome applies an income edit and returns the new documents; the
// inputs are not modified.
//
// For the current calendar month the amount is written to the live period's
// income and any estimate display is cleared. For any other month the
// amount replaces the (month, index) entry in the estimate store and is
// mirrored into the stored period's estimated income for immediate display,
// leaving the entered income untouched.
func SetIncome(
	periods model.MonthPeriods,
	estimates []model.PayPeriodEstimate,
	monthKey string,
	periodIndex int,
	amount float64,
	now time.Time,
) (model.MonthPeriods, []model.PayPeriodEstimate) {
	outPeriods := make(model.MonthPeriods, len(periods)+1)
	for k, v := range periods {
		outPeriods[k] = v
	}

	sp := outPeriods[monthKey]
	if monthKey == model.MonthKey(now) {
		sp[periodIndex].Income = amount
		sp[periodIndex].EstimatedIncome = nil
		outPeriods[monthKey] = sp
		return outPeriods, estimates
	}

	est := amount
	sp[periodIndex].EstimatedIncome = &est
	outPeriods[monthKey] = sp

	outEstimates := make([]model.PayPeriodEstimate, 0, len(estimates)+1)
	for _, e := range estimates {
		if e.Month == monthKey && e.PeriodIndex == periodIndex {
			continue
		}
		outEstimates = append(outEstimates, e)
	}
	outEstimates = append(outEstimates, model.PayPeriodEstimate{
		Month:           monthKey,
		PeriodIndex:     periodIndex,
		EstimatedIncome: amount,
	})

	return outPeriods, outEstimates
}
