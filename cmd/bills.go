package cmd

import (
	"fmt"
	"time"

	"paysplit/internal/cli"
	"paysplit/internal/company"
	"paysplit/internal/config"
	"paysplit/internal/model"
	"paysplit/internal/period"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	billDue     string
	billDay     int
	billRecur   bool
	billAutoPay bool
	billCredit  bool
	billNotes   string
)

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "List tracked bills",
	RunE:  runBillsList,
}

var billsAddCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Add a bill",
	Args:  cobra.ExactArgs(2),
	RunE:  runBillsAdd,
}

var billsRmCmd = &cobra.Command{
	Use:   "rm <bill>",
	Short: "Remove a bill by ID prefix or name",
	Args:  cobra.ExactArgs(1),
	RunE:  runBillsRm,
}

var billsForecastCmd = &cobra.Command{
	Use:   "forecast <bill> <amount>",
	Short: "Override a recurring bill's amount for the viewed month",
	Long: "Set a per-month estimate for a recurring bill, e.g. a utility that\n" +
		"runs high in summer. Pass \"clear\" as the amount to remove the override.",
	Args: cobra.ExactArgs(2),
	RunE: runBillsForecast,
}

func init() {
	billsAddCmd.Flags().StringVar(&billDue, "due", "", "Due date, YYYY-MM-DD (default: today)")
	billsAddCmd.Flags().IntVar(&billDay, "day", 0, "Day of month for recurring bills (1-31)")
	billsAddCmd.Flags().BoolVar(&billRecur, "recurring", false, "Bill repeats monthly")
	billsAddCmd.Flags().BoolVar(&billAutoPay, "autopay", false, "Bill is on autopay")
	billsAddCmd.Flags().BoolVar(&billCredit, "credit", false, "Paid by credit card instead of checking")
	billsAddCmd.Flags().StringVar(&billNotes, "notes", "", "Free-form notes")

	billsCmd.AddCommand(billsAddCmd)
	billsCmd.AddCommand(billsRmCmd)
	billsCmd.AddCommand(billsForecastCmd)
	rootCmd.AddCommand(billsCmd)
}

func runBillsList(_ *cobra.Command, _ []string) error {
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
	if len(bills) == 0 {
		fmt.Println("No bills yet. Add one with: paysplit bills add <name> <amount>")
		return nil
	}

	monthKey := model.MonthKey(anchor)
	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		when := cli.FormatDate(b.DueDate)
		kind := "once"
		if b.Recurring {
			day := b.DayOfMonth
			if day == 0 {
				day = b.DueDate.Day()
			}
			when = cli.FormatOrdinalDay(day)
			kind = "monthly"
		}
		amount := cli.FormatMoney(period.ResolveAmount(b, monthKey))
		if b.Recurring && period.ResolveAmount(b, monthKey) != b.Amount {
			amount += " *"
		}
		auto := ""
		if b.AutoPay {
			auto = "auto"
		}
		rows = append(rows, []string{b.ID[:8], b.Name, when, kind, amount, auto})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Bills (" + cli.FormatMonth(anchor) + ")",
		Headers: []string{"ID", "Name", "Due", "Repeats", "Amount", ""},
		Rows:    rows,
	}))
	return nil
}

func runBillsAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	due := time.Now()
	if billDue != "" {
		due, err = time.Parse("2006-01-02", billDue)
		if err != nil {
			return fmt.Errorf("invalid due date %q, want YYYY-MM-DD", billDue)
		}
	}
	if billDay < 0 || billDay > 31 {
		return fmt.Errorf("day of month must be 1-31, got %d", billDay)
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

	method := model.PayChecking
	if billCredit {
		method = model.PayCredit
	}
	b := model.Bill{
		ID:         uuid.NewString(),
		Name:       name,
		Amount:     amount,
		DueDate:    due,
		Notes:      billNotes,
		AutoPay:    billAutoPay,
		Method:     method,
		Recurring:  billRecur,
		DayOfMonth: billDay,
	}
	if billRecur {
		b.Frequency = model.Monthly
	}

	// Best-effort company match for the logo; silence means no match.
	cfg, _ := config.Load()
	if cfg.Lookup.Enabled {
		matches := company.NewClient(cfg.Lookup.BaseURL).Suggest(cmd.Context(), name)
		if len(matches) > 0 {
			b.CompanyDomain = matches[0].Domain
			b.LogoURL = matches[0].Logo
		}
	}

	if err := s.SaveBills(append(bills, b)); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("Added %s (%s) due %s\n", b.Name, cli.FormatMoney(b.Amount), cli.FormatDate(b.DueDate))
	}
	return nil
}

func runBillsRm(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	bills, err := s.Bills()
	if err != nil {
		return err
	}
	target, err := findBill(bills, args[0])
	if err != nil {
		return err
	}

	kept := make([]model.Bill, 0, len(bills)-1)
	for _, b := range bills {
		if b.ID != target.ID {
			kept = append(kept, b)
		}
	}
	if err := s.SaveBills(kept); err != nil {
		return err
	}

	statuses, err := s.Statuses()
	if err != nil {
		return err
	}
	if err := s.SaveStatuses(model.DropStatuses(statuses, target.ID)); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Removed %s\n", target.Name)
	}
	return nil
}

func runBillsForecast(_ *cobra.Command, args []string) error {
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
	target, err := findBill(bills, args[0])
	if err != nil {
		return err
	}
	if !target.Recurring {
		return fmt.Errorf("%s is not recurring; edit its amount instead", target.Name)
	}

	monthKey := model.MonthKey(anchor)
	if args[1] == "clear" {
		target = period.ClearForecast(target, monthKey)
	} else {
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		target = period.SetForecast(target, monthKey, amount)
	}

	for i, b := range bills {
		if b.ID == target.ID {
			bills[i] = target
		}
	}
	if err := s.SaveBills(bills); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("%s now resolves to %s in %s\n",
			target.Name,
			cli.FormatMoney(period.ResolveAmount(target, monthKey)),
			cli.FormatMonth(anchor))
	}
	return nil
}
