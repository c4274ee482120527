// Package store persists paysplit's documents in a local SQLite database.
//
// Every document is written whole: a read of the current value, a pure
// transformation, and a replace-on-write. There is no field-level update and
// no transaction spanning documents, matching the single-user session model.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"paysplit/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// Document keys.
const (
	keyBills     = "bills"
	keyDebtState = "debt_state"
	keyPeriods   = "pay_periods"
	keyEstimates = "estimates"
	keyStatuses  = "bill_statuses"
)

// Store is the SQLite-backed document store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DefaultPath returns the XDG-compliant location of the database file.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "paysplit", "paysplit.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "paysplit", "paysplit.db")
}

// load unmarshals the document at key into out, reporting whether it exists.
func (s *Store) load(key string, out any) (bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM documents WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

// save replaces the document at key.
func (s *Store) save(key string, doc any) error {
	value, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO documents (key, value, updated_at) VALUES (?, ?, ?)",
		key, string(value), now,
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	slog.Debug("document saved", "key", key, "bytes", len(value))
	return nil
}

// Bills loads the bill list, empty when never saved.
func (s *Store) Bills() ([]model.Bill, error) {
	var bills []model.Bill
	if _, err := s.load(keyBills, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// SaveBills replaces the bill list.
func (s *Store) SaveBills(bills []model.Bill) error {
	return s.save(keyBills, bills)
}

// DebtState loads the debts-plus-settings document, with default settings
// when never saved.
func (s *Store) DebtState() (model.DebtState, error) {
	state := model.DebtState{Settings: model.DefaultDebtSettings()}
	if _, err := s.load(keyDebtState, &state); err != nil {
		return model.DebtState{}, err
	}
	return state, nil
}

// SaveDebtState replaces the debts-plus-settings document.
func (s *Store) SaveDebtState(state model.DebtState) error {
	return s.save(keyDebtState, state)
}

// Periods loads the pay-periods-by-month document.
func (s *Store) Periods() (model.MonthPeriods, error) {
	periods := model.MonthPeriods{}
	if _, err := s.load(keyPeriods, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

// SavePeriods replaces the pay-periods-by-month document.
func (s *Store) SavePeriods(periods model.MonthPeriods) error {
	return s.save(keyPeriods, periods)
}

// Estimates loads the income estimate list.
func (s *Store) Estimates() ([]model.PayPeriodEstimate, error) {
	var estimates []model.PayPeriodEstimate
	if _, err := s.load(keyEstimates, &estimates); err != nil {
		return nil, err
	}
	return estimates, nil
}

// SaveEstimates replaces the income estimate list.
func (s *Store) SaveEstimates(estimates []model.PayPeriodEstimate) error {
	return s.save(keyEstimates, estimates)
}

// Statuses loads the bill status records.
func (s *Store) Statuses() ([]model.BillStatusRecord, error) {
	var records []model.BillStatusRecord
	if _, err := s.load(keyStatuses, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveStatuses replaces the bill status records.
func (s *Store) SaveStatuses(records []model.BillStatusRecord) error {
	return s.save(keyStatuses, records)
}
