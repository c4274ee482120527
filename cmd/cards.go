package cmd

import (
	"fmt"

	"paysplit/internal/cli"
	"paysplit/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	cardLimit  float64
	cardAPR    float64
	cardMin    float64
	cardDueDay int
	cardTarget float64
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List credit cards and other debts",
	RunE:  runCardsList,
}

var cardsAddCmd = &cobra.Command{
	Use:   "add <name> <balance>",
	Short: "Add a credit card",
	Args:  cobra.ExactArgs(2),
	RunE:  runCardsAdd,
}

var loansAddCmd = &cobra.Command{
	Use:   "add-loan <name> <balance>",
	Short: "Add a loan",
	Args:  cobra.ExactArgs(2),
	RunE:  runLoansAdd,
}

func init() {
	cardsAddCmd.Flags().Float64Var(&cardLimit, "limit", 0, "Credit limit")
	cardsAddCmd.Flags().Float64Var(&cardAPR, "apr", 0, "APR as a percentage, e.g. 22.99")
	cardsAddCmd.Flags().Float64Var(&cardMin, "min", 0, "Minimum monthly payment")
	cardsAddCmd.Flags().IntVar(&cardDueDay, "due-day", 1, "Payment due day of month (1-31)")
	cardsAddCmd.Flags().Float64Var(&cardTarget, "target", 0.3, "Utilization target, 0-1")

	loansAddCmd.Flags().Float64Var(&cardAPR, "apr", 0, "APR as a percentage, e.g. 6.5")
	loansAddCmd.Flags().Float64Var(&cardMin, "min", 0, "Minimum monthly payment")

	cardsCmd.AddCommand(cardsAddCmd)
	cardsCmd.AddCommand(loansAddCmd)
	rootCmd.AddCommand(cardsCmd)
}

func runCardsList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	state, err := s.DebtState()
	if err != nil {
		return err
	}
	if len(state.Debts) == 0 {
		fmt.Println("No debts yet. Add one with: paysplit cards add <name> <balance>")
		return nil
	}

	rows := make([][]string, 0, len(state.Debts))
	for _, d := range state.Debts {
		if card, ok := d.AsCard(); ok {
			util := card.Utilization(d.CurrentBalance)
			rows = append(rows, []string{
				d.ID[:8],
				d.Name,
				cli.FormatMoney(d.CurrentBalance),
				cli.FormatMoney(card.CreditLimit),
				cli.RenderUtilizationBar(util, 10) + " " + cli.FormatPercent(util),
				cli.FormatAPR(card.APR),
				cli.FormatMoney(d.MinimumPayment),
				cli.FormatOrdinalDay(card.DueDay),
			})
			continue
		}
		rows = append(rows, []string{
			d.ID[:8],
			d.Name + " (loan)",
			cli.FormatMoney(d.CurrentBalance),
			"",
			"",
			cli.FormatAPR(d.InterestRate),
			cli.FormatMoney(d.MinimumPayment),
			"",
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Debts",
		Headers: []string{"ID", "Name", "Balance", "Limit", "Utilization", "APR", "Min", "Due"},
		Rows:    rows,
	}))
	return nil
}

func runCardsAdd(_ *cobra.Command, args []string) error {
	balance, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	if cardDueDay < 1 || cardDueDay > 31 {
		return fmt.Errorf("due day must be 1-31, got %d", cardDueDay)
	}

	d := model.Debt{
		ID:             uuid.NewString(),
		Name:           args[0],
		Kind:           model.DebtCreditCard,
		TotalAmount:    balance,
		CurrentBalance: balance,
		InterestRate:   cardAPR / 100,
		MinimumPayment: cardMin,
		Card: &model.CreditCardInfo{
			CreditLimit:       cardLimit,
			UtilizationTarget: cardTarget,
			APR:               cardAPR / 100,
			DueDay:            cardDueDay,
		},
	}
	return addDebt(d)
}

func runLoansAdd(_ *cobra.Command, args []string) error {
	balance, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	d := model.Debt{
		ID:             uuid.NewString(),
		Name:           args[0],
		Kind:           model.DebtLoan,
		TotalAmount:    balance,
		CurrentBalance: balance,
		InterestRate:   cardAPR / 100,
		MinimumPayment: cardMin,
	}
	return addDebt(d)
}

func addDebt(d model.Debt) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	state, err := s.DebtState()
	if err != nil {
		return err
	}
	state.Debts = append(state.Debts, d)
	if err := s.SaveDebtState(state); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("Added %s with balance %s\n", d.Name, cli.FormatMoney(d.CurrentBalance))
	}
	return nil
}
