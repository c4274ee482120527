// Package model defines the domain types shared across paysplit.
package model

import "time"

// PaymentMethod identifies how a bill gets paid.
type PaymentMethod string

const (
	PayChecking PaymentMethod = "checking"
	PayCredit   PaymentMethod = "credit"
)

// RecurrenceFrequency describes how often a recurring bill repeats.
type RecurrenceFrequency string

const (
	Weekly   RecurrenceFrequency = "weekly"
	BiWeekly RecurrenceFrequency = "bi-weekly"
	Monthly  RecurrenceFrequency = "monthly"
	Annually RecurrenceFrequency = "annually"
)

// BillForecast is a per-month override of a recurring bill's expected amount.
// At most one forecast exists per month key per bill.
type BillForecast struct {
	Month           string  `json:"month"` // "YYYY-MM"
	EstimatedAmount float64 `json:"estimatedAmount"`
}

// Bill is a one-off or recurring obligation. DayOfMonth and Forecasts are
// meaningful only when Recurring is true.
type Bill struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Amount        float64             `json:"amount"`
	DueDate       time.Time           `json:"dueDate"`
	Notes         string              `json:"notes,omitempty"`
	AutoPay       bool                `json:"autoPay"`
	Method        PaymentMethod       `json:"paymentMethod"`
	Recurring     bool                `json:"recurring"`
	Frequency     RecurrenceFrequency `json:"frequency,omitempty"`
	DayOfMonth    int                 `json:"dayOfMonth,omitempty"` // 1-31
	Forecasts     []BillForecast      `json:"forecasts,omitempty"`
	CompanyDomain string              `json:"companyDomain,omitempty"`
	LogoURL       string              `json:"logoUrl,omitempty"`
}

// DebtKind discriminates the Debt variant.
type DebtKind string

const (
	DebtLoan       DebtKind = "loan"
	DebtCreditCard DebtKind = "credit_card"
)

// DebtPayment is one entry of a debt's append-only payment history.
type DebtPayment struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// CreditCardInfo holds the card-only fields of a Debt.
// Set iff Kind == DebtCreditCard.
type CreditCardInfo struct {
	CreditLimit       float64    `json:"creditLimit"`
	UtilizationTarget float64    `json:"utilizationTarget"`
	APR               float64    `json:"apr"`
	DueDay            int        `json:"dueDay"` // day of month, 1-31
	StatementBalance  *float64   `json:"statementBalance,omitempty"`
	LastPaymentDate   *time.Time `json:"lastPaymentDate,omitempty"`
	LastPaymentAmount *float64   `json:"lastPaymentAmount,omitempty"`
}

// Utilization returns balance over limit for display. A zero limit yields 0.
func (c CreditCardInfo) Utilization(balance float64) float64 {
	if c.CreditLimit <= 0 {
		return 0
	}
	return balance / c.CreditLimit
}

// Debt is a tracked liability. Card fields live behind the Kind discriminant;
// CurrentBalance changes only through the payment history operations.
type Debt struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Kind           DebtKind        `json:"kind"`
	TotalAmount    float64         `json:"totalAmount"`
	CurrentBalance float64         `json:"currentBalance"`
	InterestRate   float64         `json:"interestRate"`
	MinimumPayment float64         `json:"minimumPayment"`
	PaymentHistory []DebtPayment   `json:"paymentHistory"`
	Card           *CreditCardInfo `json:"card,omitempty"`
}

// AsCard returns the card fields when the debt is a credit card.
func (d Debt) AsCard() (*CreditCardInfo, bool) {
	switch d.Kind {
	case DebtCreditCard:
		return d.Card, d.Card != nil
	case DebtLoan:
		return nil, false
	}
	return nil, false
}

// DebtSettings tunes the payment suggestion heuristic.
type DebtSettings struct {
	// VariableThreshold is the leftover income preserved before any
	// suggestion is made.
	VariableThreshold float64 `json:"variableThreshold"`
	// AggressivePayoff is reserved for future strategy selection and is
	// currently informational only.
	AggressivePayoff bool `json:"aggressivePayoff"`
	// MinimumExtraPayment floors every non-zero suggestion.
	MinimumExtraPayment float64 `json:"minimumExtraPayment"`
}

// DefaultDebtSettings returns the stock settings for a fresh install.
func DefaultDebtSettings() DebtSettings {
	return DebtSettings{
		VariableThreshold:   500,
		AggressivePayoff:    false,
		MinimumExtraPayment: 50,
	}
}

// DebtState is the persisted debts-plus-settings document.
type DebtState struct {
	Debts    []Debt       `json:"debts"`
	Settings DebtSettings `json:"settings"`
}

// PaymentSuggestion is a ranked extra-payment recommendation. Ephemeral:
// recomputed on demand, never persisted.
type PaymentSuggestion struct {
	DebtID          string
	SuggestedAmount float64
	Reason          string
	Priority        int
}

// PayPeriodEstimate is a user-entered income guess for one period of a
// non-current month, unique per (month, period index).
type PayPeriodEstimate struct {
	Month           string  `json:"month"`
	PeriodIndex     int     `json:"periodIndex"` // 0 or 1
	EstimatedIncome float64 `json:"estimatedIncome"`
}

// StoredPeriod is the persisted slice of a pay period. Only income survives
// navigation; the bill list is a projection recomputed on every read.
type StoredPeriod struct {
	Income          float64  `json:"income"`
	EstimatedIncome *float64 `json:"estimatedIncome,omitempty"`
}

// MonthPeriods maps month keys to the two stored periods of that month.
type MonthPeriods map[string][2]StoredPeriod
