package model

// BillStatus marks a bill paid or unpaid within one period.
type BillStatus string

const (
	StatusPaid   BillStatus = "paid"
	StatusUnpaid BillStatus = "unpaid"
)

// BillStatusRecord tracks the paid state of a bill (or card minimum) for a
// specific period, keyed by (bill ID, period key).
type BillStatusRecord struct {
	BillID    string     `json:"billId"`
	PeriodKey string     `json:"periodKey"`
	Status    BillStatus `json:"status"`
}

// StatusFor returns the recorded status for a bill in a period,
// defaulting to unpaid.
func StatusFor(records []BillStatusRecord, billID, periodKey string) BillStatus {
	for _, r := range records {
		if r.BillID == billID && r.PeriodKey == periodKey {
			return r.Status
		}
	}
	return StatusUnpaid
}

// SetStatus returns a new record list with the status for (billID, periodKey)
// replaced or appended. The input is not modified.
func SetStatus(records []BillStatusRecord, billID, periodKey string, status BillStatus) []BillStatusRecord {
	out := make([]BillStatusRecord, 0, len(records)+1)
	replaced := false
	for _, r := range records {
		if r.BillID == billID && r.PeriodKey == periodKey {
			r.Status = status
			replaced = true
		}
		out = append(out, r)
	}
	if !replaced {
		out = append(out, BillStatusRecord{BillID: billID, PeriodKey: periodKey, Status: status})
	}
	return out
}

// DropStatuses returns a new record list without any entries for the bill.
func DropStatuses(records []BillStatusRecord, billID string) []BillStatusRecord {
	var out []BillStatusRecord
	for _, r := range records {
		if r.BillID != billID {
			out = append(out, r)
		}
	}
	return out
}
