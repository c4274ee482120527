package cmd

import (
	"fmt"
	"strconv"
	"time"

	"paysplit/internal/cli"
	"paysplit/internal/model"
	"paysplit/internal/period"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income <period> <amount>",
	Short: "Record income for a pay period",
	Long: "Record income for period 0 (1st-15th) or period 1 (16th-end) of the\n" +
		"viewed month. For the current month this sets the actual income; for\n" +
		"any other month it records an estimate instead.",
	Args: cobra.ExactArgs(2),
	RunE: runIncome,
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}

func runIncome(_ *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil || (index != 0 && index != 1) {
		return fmt.Errorf("period must be 0 or 1, got %q", args[0])
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	anchor, err := viewedMonth()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	periods, err := s.Periods()
	if err != nil {
		return err
	}
	estimates, err := s.Estimates()
	if err != nil {
		return err
	}

	now := time.Now()
	monthKey := model.MonthKey(anchor)
	newPeriods, newEstimates := period.SetIncome(periods, estimates, monthKey, index, amount, now)

	if err := s.SavePeriods(newPeriods); err != nil {
		return err
	}
	if err := s.SaveEstimates(newEstimates); err != nil {
		return err
	}

	if !flagQuiet {
		kind := "income"
		if !model.SameMonth(anchor, now) {
			kind = "estimated income"
		}
		span := period.ForMonth(anchor)[index]
		fmt.Printf("Set %s for %s to %s\n",
			kind, cli.FormatPeriodRange(span.Start, span.End), cli.FormatMoney(amount))
	}
	return nil
}
