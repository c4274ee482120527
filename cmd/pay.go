package cmd

import (
	"fmt"
	"time"

	"paysplit/internal/cli"
	"paysplit/internal/debt"
	"paysplit/internal/model"

	"github.com/spf13/cobra"
)

var payCmd = &cobra.Command{
	Use:   "pay <debt> <amount>",
	Short: "Record a payment against a debt",
	Args:  cobra.ExactArgs(2),
	RunE:  runPay,
}

var payUndoCmd = &cobra.Command{
	Use:   "undo <debt>",
	Short: "Undo a debt's most recent payment",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayUndo,
}

var payHistoryCmd = &cobra.Command{
	Use:   "history <debt>",
	Short: "Show a debt's payment history",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayHistory,
}

func init() {
	payCmd.AddCommand(payUndoCmd)
	payCmd.AddCommand(payHistoryCmd)
	rootCmd.AddCommand(payCmd)
}

// mutateDebt loads the debt state, applies fn to the matched debt, and
// saves the result.
func mutateDebt(arg string, fn func(model.Debt) model.Debt) (model.Debt, error) {
	s, err := openStore()
	if err != nil {
		return model.Debt{}, err
	}
	defer func() { _ = s.Close() }()

	state, err := s.DebtState()
	if err != nil {
		return model.Debt{}, err
	}
	target, err := findDebt(state.Debts, arg)
	if err != nil {
		return model.Debt{}, err
	}

	updated := fn(target)
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

func runPay(_ *cobra.Command, args []string) error {
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	updated, err := mutateDebt(args[0], func(d model.Debt) model.Debt {
		return debt.ApplyPayment(d, amount, time.Now())
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Paid %s toward %s, balance now %s\n",
			cli.FormatMoney(amount), updated.Name, cli.FormatMoney(updated.CurrentBalance))
	}
	return nil
}

func runPayUndo(_ *cobra.Command, args []string) error {
	var had bool
	updated, err := mutateDebt(args[0], func(d model.Debt) model.Debt {
		had = len(d.PaymentHistory) > 0
		return debt.UndoLastPayment(d)
	})
	if err != nil {
		return err
	}

	if !had {
		fmt.Printf("%s has no payments to undo\n", updated.Name)
		return nil
	}
	if !flagQuiet {
		fmt.Printf("Undid last payment on %s, balance now %s\n",
			updated.Name, cli.FormatMoney(updated.CurrentBalance))
	}
	return nil
}

func runPayHistory(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	state, err := s.DebtState()
	if err != nil {
		return err
	}
	target, err := findDebt(state.Debts, args[0])
	if err != nil {
		return err
	}

	if len(target.PaymentHistory) == 0 {
		fmt.Printf("No payments recorded for %s\n", target.Name)
		return nil
	}

	rows := make([][]string, 0, len(target.PaymentHistory))
	for _, p := range target.PaymentHistory {
		rows = append(rows, []string{cli.FormatDateLong(p.Date), cli.FormatMoney(p.Amount)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   target.Name + " Payments",
		Headers: []string{"Date", "Amount"},
		Rows:    rows,
	}))
	return nil
}
