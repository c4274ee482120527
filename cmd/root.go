package cmd

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"paysplit/internal/cli"
	"paysplit/internal/config"
	"paysplit/internal/debt"
	"paysplit/internal/logging"
	"paysplit/internal/model"
	"paysplit/internal/period"
	"paysplit/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagData    string
	flagMonth   string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "paysplit",
	Short: "Pay-period bill tracker and debt payoff planner",
	Long:  "Track bills across twice-monthly pay periods and prioritize extra payments against credit-card debt.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Setup(flagVerbose)
	},
	RunE: runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagData, "data", "d", "", "Database file (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month to view, YYYY-MM (default: current)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// openStore opens the database, preferring --data, then the configured
// path, then the default location.
func openStore() (*store.Store, error) {
	path := flagData
	if path == "" {
		cfg, _ := config.Load()
		path = cfg.General.DataPath
	}
	if path == "" {
		path = store.DefaultPath()
	}
	return store.Open(path)
}

// viewedMonth resolves the --month flag, defaulting to today.
func viewedMonth() (time.Time, error) {
	if flagMonth == "" {
		return time.Now(), nil
	}
	return model.ParseMonthKey(flagMonth)
}

// parseAmount validates a currency argument at the boundary so bad input
// never reaches the engines.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount must not be negative: %q", s)
	}
	return v, nil
}

// findBill matches an argument against bill IDs (prefix) and names
// (case-insensitive substring).
func findBill(bills []model.Bill, arg string) (model.Bill, error) {
	var matches []model.Bill
	for _, b := range bills {
		if strings.HasPrefix(b.ID, arg) || containsIgnoreCase(b.Name, arg) {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Bill{}, fmt.Errorf("no bill matches %q", arg)
	}
	return model.Bill{}, fmt.Errorf("%q matches %d bills, be more specific", arg, len(matches))
}

// findDebt matches an argument against debt IDs and names.
func findDebt(debts []model.Debt, arg string) (model.Debt, error) {
	var matches []model.Debt
	for _, d := range debts {
		if strings.HasPrefix(d.ID, arg) || containsIgnoreCase(d.Name, arg) {
			matches = append(matches, d)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Debt{}, fmt.Errorf("no debt matches %q", arg)
	}
	return model.Debt{}, fmt.Errorf("%q matches %d debts, be more specific", arg, len(matches))
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// loadMonth assembles the projected periods for the viewed month from the
// source documents.
func loadMonth(s *store.Store, anchor time.Time) ([2]period.Assigned, model.DebtState, []model.BillStatusRecord, error) {
	var none [2]period.Assigned

	bills, err := s.Bills()
	if err != nil {
		return none, model.DebtState{}, nil, err
	}
	state, err := s.DebtState()
	if err != nil {
		return none, model.DebtState{}, nil, err
	}
	periods, err := s.Periods()
	if err != nil {
		return none, model.DebtState{}, nil, err
	}
	estimates, err := s.Estimates()
	if err != nil {
		return none, model.DebtState{}, nil, err
	}
	statuses, err := s.Statuses()
	if err != nil {
		return none, model.DebtState{}, nil, err
	}

	assigned := period.Assign(bills, state.Debts, anchor, time.Now(),
		periods[model.MonthKey(anchor)], estimates)
	return assigned, state, statuses, nil
}

func runOverview(_ *cobra.Command, _ []string) error {
	anchor, err := viewedMonth()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	assigned, state, statuses, err := loadMonth(s, anchor)
	if err != nil {
		return err
	}

	monthKey := model.MonthKey(anchor)

	fmt.Println()
	fmt.Println(cli.RenderTitle(strings.ToUpper(cli.FormatMonth(anchor))))
	fmt.Println()

	for _, a := range assigned {
		rows := make([][]string, 0, len(a.Entries)+3)
		for _, e := range a.Entries {
			name := e.Name
			if e.Kind == period.EntryCardMinimum {
				name += " (min)"
			}
			paid := ""
			if model.StatusFor(statuses, e.ID, monthKey) == model.StatusPaid {
				paid = "paid"
			}
			auto := ""
			if e.AutoPay {
				auto = "auto"
			}
			rows = append(rows, []string{
				name,
				cli.FormatDate(e.DueDate),
				cli.FormatMoney(e.Amount),
				auto,
				paid,
			})
		}
		if len(rows) == 0 {
			rows = append(rows, []string{"(no bills)", "", "", "", ""})
		}
		rows = append(rows, []string{"---"})

		income := a.DisplayIncome()
		incomeLabel := "Income"
		if a.Income == 0 && a.EstimatedIncome != nil {
			incomeLabel = "Income (est)"
		}
		rows = append(rows, []string{incomeLabel, "", cli.FormatMoney(income), "", ""})
		rows = append(rows, []string{"Bills", "", cli.FormatMoney(a.TotalBills()), "", ""})
		rows = append(rows, []string{"Leftover", "", cli.FormatMoney(a.Leftover()), "", ""})

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   cli.FormatPeriodRange(a.Period.Start, a.Period.End),
			Headers: []string{"Bill", "Due", "Amount", "", ""},
			Rows:    rows,
		}))

		suggestions := debt.Suggest(a.Leftover(), state.Debts, state.Settings)
		if len(suggestions) > 0 {
			srows := make([][]string, 0, len(suggestions))
			for _, sg := range suggestions {
				srows = append(srows, []string{
					debtName(state.Debts, sg.DebtID),
					cli.FormatMoney(sg.SuggestedAmount),
					strconv.Itoa(sg.Priority),
				})
			}
			fmt.Print(cli.RenderTable(cli.Table{
				Title:   "Suggested Debt Payments",
				Headers: []string{"Card", "Extra", "Priority"},
				Rows:    srows,
			}))
		}
		fmt.Println()
	}

	return nil
}

func debtName(debts []model.Debt, id string) string {
	for _, d := range debts {
		if d.ID == id {
			return d.Name
		}
	}
	return id
}
