package cmd

import (
	"fmt"
	"strconv"

	"paysplit/internal/cli"
	"paysplit/internal/debt"

	"github.com/spf13/cobra"
)

var suggestAvailable float64

var suggestCmd = &cobra.Command{
	Use:   "suggest [period]",
	Short: "Suggest extra debt payments from leftover income",
	Long: "Rank credit cards by APR and split the income left after bills and\n" +
		"the spending threshold into weighted extra payments. With no period\n" +
		"argument both periods of the viewed month are shown; --available\n" +
		"overrides the computed leftover.",
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().Float64Var(&suggestAvailable, "available", -1, "Override available income")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, args []string) error {
	anchor, err := viewedMonth()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	assigned, state, _, err := loadMonth(s, anchor)
	if err != nil {
		return err
	}

	indices := []int{0, 1}
	if len(args) == 1 {
		i, err := strconv.Atoi(args[0])
		if err != nil || (i != 0 && i != 1) {
			return fmt.Errorf("period must be 0 or 1, got %q", args[0])
		}
		indices = []int{i}
	}

	for _, i := range indices {
		a := assigned[i]
		available := a.Leftover()
		if suggestAvailable >= 0 {
			available = suggestAvailable
		}

		suggestions := debt.Suggest(available, state.Debts, state.Settings)
		title := cli.FormatPeriodRange(a.Period.Start, a.Period.End) +
			" (available " + cli.FormatMoney(available) + ")"
		if len(suggestions) == 0 {
			fmt.Printf("%s: nothing to suggest\n", title)
			continue
		}

		rows := make([][]string, 0, len(suggestions))
		for _, sg := range suggestions {
			rows = append(rows, []string{
				debtName(state.Debts, sg.DebtID),
				cli.FormatMoney(sg.SuggestedAmount),
				strconv.Itoa(sg.Priority),
				sg.Reason,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   title,
			Headers: []string{"Card", "Extra", "Priority", "Why"},
			Rows:    rows,
		}))
	}
	return nil
}
