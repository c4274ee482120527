package cmd

import (
	"fmt"
	"time"

	"paysplit/internal/cli"
	"paysplit/internal/debt"
	"paysplit/internal/model"
	"paysplit/internal/store"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <bill>",
	Short: "Mark a bill paid for the viewed month",
	Long: "Mark a bill or card minimum paid. Checking a card minimum also\n" +
		"records the payment against the card's balance.",
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return setPaid(args[0], true)
	},
}

var uncheckCmd = &cobra.Command{
	Use:   "uncheck <bill>",
	Short: "Mark a bill unpaid for the viewed month",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return setPaid(args[0], false)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(uncheckCmd)
}

func setPaid(arg string, paid bool) error {
	anchor, err := viewedMonth()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	bills, err := s.Bills()
	if err != nil {
		return err
	}

	var (
		id   string
		name string
	)
	if b, err := findBill(bills, arg); err == nil {
		id, name = b.ID, b.Name
	} else {
		// Not a bill; card minimums are checkable too and the payment
		// flows through to the balance.
		d, derr := cardMinimumPayment(s, arg, paid)
		if derr != nil {
			return fmt.Errorf("no bill or card matches %q", arg)
		}
		id, name = d.ID, d.Name
	}

	monthKey := model.MonthKey(anchor)
	statuses, err := s.Statuses()
	if err != nil {
		return err
	}

	status := model.StatusUnpaid
	if paid {
		status = model.StatusPaid
	}
	if err := s.SaveStatuses(model.SetStatus(statuses, id, monthKey, status)); err != nil {
		return err
	}

	if !flagQuiet {
		verb := "unpaid"
		if paid {
			verb = "paid"
		}
		fmt.Printf("Marked %s %s for %s\n", name, verb, cli.FormatMonth(anchor))
	}
	return nil
}

// cardMinimumPayment applies (or undoes) a card's minimum payment when a
// card minimum entry is checked or unchecked.
func cardMinimumPayment(s *store.Store, arg string, paid bool) (model.Debt, error) {
	state, err := s.DebtState()
	if err != nil {
		return model.Debt{}, err
	}
	target, err := findDebt(state.Debts, arg)
	if err != nil {
		return model.Debt{}, err
	}
	if _, ok := target.AsCard(); !ok {
		return model.Debt{}, fmt.Errorf("%s is not a credit card", target.Name)
	}

	var updated model.Debt
	if paid {
		updated = debt.ApplyPayment(target, target.MinimumPayment, time.Now())
	} else {
		updated = debt.UndoLastPayment(target)
	}
	for i, d := range state.Debts {
		if d.ID == target.ID {
			state.Debts[i] = updated
		}
	}
	if err := s.SaveDebtState(state); err != nil {
		return model.Debt{}, err
	}
	return updated, nil
}
