package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"paysplit/internal/cli"
	"paysplit/internal/company"
	"paysplit/internal/model"
	"paysplit/internal/period"
	"paysplit/internal/tui/components"
	"paysplit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// billsState tracks the bills tab: list cursor and the add-bill form. Form
// values live behind a pointer so the huh bindings survive model copies.
type billsState struct {
	cursor int
	form   *huh.Form
	vals   *billFormValues
}

type billFormValues struct {
	name      string
	amount    string
	day       string
	recurring bool
	autopay   bool
	credit    bool
}

// companyFoundMsg carries an async company-lookup result for a just-added
// bill.
type companyFoundMsg struct {
	billID string
	match  company.Suggestion
}

func newBillForm(vals *billFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&vals.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Amount").
				Placeholder("120.00").
				Value(&vals.amount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v < 0 {
						return fmt.Errorf("enter a non-negative amount")
					}
					return nil
				}),
			huh.NewInput().
				Title("Due day of month").
				Placeholder("15").
				Value(&vals.day).
				Validate(func(s string) error {
					d, err := strconv.Atoi(s)
					if err != nil || d < 1 || d > 31 {
						return fmt.Errorf("enter a day 1-31")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Repeats monthly?").
				Value(&vals.recurring),
			huh.NewConfirm().
				Title("On autopay?").
				Value(&vals.autopay),
			huh.NewConfirm().
				Title("Paid by credit card?").
				Value(&vals.credit),
		),
	)
}

func (a App) updateBillsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.billsTab.cursor < len(a.bills)-1 {
			a.billsTab.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.billsTab.cursor > 0 {
			a.billsTab.cursor--
		}
		return a, nil, true
	case "a":
		a.billsTab.vals = &billFormValues{}
		a.billsTab.form = newBillForm(a.billsTab.vals)
		if a.width > 0 {
			a.billsTab.form = a.billsTab.form.WithWidth(a.width)
		}
		return a, a.billsTab.form.Init(), true
	case "D":
		a.deleteBillAtCursor()
		return a, nil, true
	}
	return a, nil, false
}

func (a App) updateBillForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return a, tea.Quit
	}

	form, cmd := a.billsTab.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.billsTab.form = f
	}

	switch a.billsTab.form.State {
	case huh.StateCompleted:
		a.billsTab.form = nil
		return a.addBillFromForm()
	case huh.StateAborted:
		a.billsTab.form = nil
		return a, nil
	}

	return a, cmd
}

func (a App) addBillFromForm() (tea.Model, tea.Cmd) {
	vals := *a.billsTab.vals
	amount, _ := strconv.ParseFloat(vals.amount, 64)
	day, _ := strconv.Atoi(vals.day)

	y, m := a.anchor.Year(), a.anchor.Month()
	due := time.Date(y, m, model.ClampDay(y, m, day), 0, 0, 0, 0, time.UTC)

	method := model.PayChecking
	if vals.credit {
		method = model.PayCredit
	}
	b := model.Bill{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(vals.name),
		Amount:    amount,
		DueDate:   due,
		AutoPay:   vals.autopay,
		Method:    method,
		Recurring: vals.recurring,
	}
	if vals.recurring {
		b.Frequency = model.Monthly
		b.DayOfMonth = day
	}

	a.bills = append(a.bills, b)
	if err := a.store.SaveBills(a.bills); err != nil {
		a.err = err
		return a, nil
	}
	a.recompute()

	if !a.cfg.Lookup.Enabled {
		return a, nil
	}
	return a, lookupCompanyCmd(a.cfg.Lookup.BaseURL, b.ID, b.Name)
}

// lookupCompanyCmd fetches a company match for the bill name off the Update
// loop. No match means no message.
func lookupCompanyCmd(baseURL, billID, name string) tea.Cmd {
	return func() tea.Msg {
		matches := company.NewClient(baseURL).Suggest(context.Background(), name)
		if len(matches) == 0 {
			return nil
		}
		return companyFoundMsg{billID: billID, match: matches[0]}
	}
}

func (a App) applyCompanyMatch(msg companyFoundMsg) App {
	for i, b := range a.bills {
		if b.ID == msg.billID {
			a.bills[i].CompanyDomain = msg.match.Domain
			a.bills[i].LogoURL = msg.match.Logo
		}
	}
	if err := a.store.SaveBills(a.bills); err != nil {
		a.err = err
	}
	return a
}

func (a *App) deleteBillAtCursor() {
	if a.billsTab.cursor >= len(a.bills) {
		return
	}
	target := a.bills[a.billsTab.cursor]

	kept := make([]model.Bill, 0, len(a.bills)-1)
	for _, b := range a.bills {
		if b.ID != target.ID {
			kept = append(kept, b)
		}
	}
	a.bills = kept
	if err := a.store.SaveBills(a.bills); err != nil {
		a.err = err
		return
	}

	a.statuses = model.DropStatuses(a.statuses, target.ID)
	if err := a.store.SaveStatuses(a.statuses); err != nil {
		a.err = err
		return
	}
	a.recompute()
}

func (a App) renderBillsTab(cw int) string {
	t := theme.Active
	monthKey := model.MonthKey(a.anchor)
	innerW := components.CardInnerWidth(cw)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	yellowStyle := lipgloss.NewStyle().Foreground(t.Yellow)

	var b strings.Builder
	for i, bill := range a.bills {
		when := bill.DueDate.Format("Jan 2")
		kind := "once   "
		if bill.Recurring {
			day := bill.DayOfMonth
			if day == 0 {
				day = bill.DueDate.Day()
			}
			when = cli.FormatOrdinalDay(day)
			kind = "monthly"
		}

		resolved := period.ResolveAmount(bill, monthKey)
		amount := fmt.Sprintf("%10s", cli.FormatMoney(resolved))

		flags := "    "
		if bill.AutoPay {
			flags = "auto"
		}

		nameW := innerW - 8 - 9 - 12 - 6 - 4
		if nameW < 10 {
			nameW = 10
		}
		line := fmt.Sprintf("%-*s %-8s %-9s %s %s",
			nameW, truncate(bill.Name, nameW), when, kind, amount, flags)

		switch {
		case i == a.billsTab.cursor:
			b.WriteString(selStyle.Render(line))
		case bill.Recurring && resolved != bill.Amount:
			// Forecast override in effect for this month
			b.WriteString(yellowStyle.Render(line))
		default:
			b.WriteString(nameStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if len(a.bills) == 0 {
		b.WriteString(dimStyle.Render("no bills yet, press [a] to add one"))
		b.WriteString("\n")
	}

	// Detail pane for the highlighted bill
	if a.billsTab.cursor < len(a.bills) {
		bill := a.bills[a.billsTab.cursor]
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Method:   ") + nameStyle.Render(string(bill.Method)) + "\n")
		if bill.CompanyDomain != "" {
			b.WriteString(mutedStyle.Render("Company:  ") + nameStyle.Render(bill.CompanyDomain) + "\n")
		}
		if bill.Notes != "" {
			b.WriteString(mutedStyle.Render("Notes:    ") + nameStyle.Render(bill.Notes) + "\n")
		}
		if len(bill.Forecasts) > 0 {
			b.WriteString(mutedStyle.Render("Forecasts:") + "\n")
			for _, f := range bill.Forecasts {
				fmt.Fprintf(&b, "  %s  %s\n",
					mutedStyle.Render(f.Month),
					nameStyle.Render(cli.FormatMoney(f.EstimatedAmount)))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[a] add  [D] delete  [j/k] navigate"))

	return components.ContentCard(
		fmt.Sprintf("Bills — %s", cli.FormatMonth(a.anchor)),
		b.String(), cw)
}
