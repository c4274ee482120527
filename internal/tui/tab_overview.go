package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"paysplit/internal/cli"
	"paysplit/internal/debt"
	"paysplit/internal/model"
	"paysplit/internal/period"
	"paysplit/internal/tui/components"
	"paysplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// overviewState tracks the overview tab: which period has focus, the entry
// cursor inside it, and the inline income editor.
type overviewState struct {
	period        int // 0 or 1
	cursor        int
	editingIncome bool
	incomeInput   textinput.Model
}

func (a App) updateOverviewKeys(key string) (tea.Model, tea.Cmd, bool) {
	entries := a.assigned[a.overview.period].Entries

	switch key {
	case "1":
		a.overview.period = 0
		a.overview.cursor = 0
		return a, nil, true
	case "2":
		a.overview.period = 1
		a.overview.cursor = 0
		return a, nil, true
	case "j", "down":
		if a.overview.cursor < len(entries)-1 {
			a.overview.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.overview.cursor > 0 {
			a.overview.cursor--
		}
		return a, nil, true
	case " ":
		a.togglePaid()
		return a, nil, true
	case "i":
		ti := textinput.New()
		ti.Placeholder = "0.00"
		ti.CharLimit = 12
		ti.Width = 14
		if inc := a.assigned[a.overview.period].DisplayIncome(); inc != 0 {
			ti.SetValue(strconv.FormatFloat(inc, 'f', 2, 64))
		}
		ti.Focus()
		a.overview.incomeInput = ti
		a.overview.editingIncome = true
		return a, ti.Cursor.BlinkCmd(), true
	}
	return a, nil, false
}

// togglePaid flips the paid status of the highlighted entry. Checking a card
// minimum also pushes the payment through to the card's balance.
func (a *App) togglePaid() {
	entries := a.assigned[a.overview.period].Entries
	if a.overview.cursor >= len(entries) {
		return
	}
	e := entries[a.overview.cursor]
	monthKey := model.MonthKey(a.anchor)
	paid := model.StatusFor(a.statuses, e.ID, monthKey) == model.StatusPaid

	if e.Kind == period.EntryCardMinimum {
		for i, d := range a.state.Debts {
			if d.ID != e.ID {
				continue
			}
			if paid {
				a.state.Debts[i] = debt.UndoLastPayment(d)
			} else {
				a.state.Debts[i] = debt.ApplyPayment(d, d.MinimumPayment, time.Now())
			}
		}
		if err := a.store.SaveDebtState(a.state); err != nil {
			a.err = err
			return
		}
	}

	status := model.StatusPaid
	if paid {
		status = model.StatusUnpaid
	}
	a.statuses = model.SetStatus(a.statuses, e.ID, monthKey, status)
	if err := a.store.SaveStatuses(a.statuses); err != nil {
		a.err = err
		return
	}
	a.recompute()
}

func (a App) updateIncomeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.overview.editingIncome = false
		val := strings.TrimSpace(a.overview.incomeInput.Value())
		amount, err := strconv.ParseFloat(val, 64)
		if err != nil || amount < 0 {
			return a, nil
		}
		monthKey := model.MonthKey(a.anchor)
		a.periods, a.estimates = period.SetIncome(
			a.periods, a.estimates, monthKey, a.overview.period, amount, time.Now())
		if err := a.store.SavePeriods(a.periods); err != nil {
			a.err = err
			return a, nil
		}
		if err := a.store.SaveEstimates(a.estimates); err != nil {
			a.err = err
			return a, nil
		}
		a.recompute()
		return a, nil
	case "esc":
		a.overview.editingIncome = false
		return a, nil
	}

	var cmd tea.Cmd
	a.overview.incomeInput, cmd = a.overview.incomeInput.Update(msg)
	return a, cmd
}

func (a App) renderOverviewTab(cw int) string {
	monthKey := model.MonthKey(a.anchor)

	// Metric cards across the top
	var totalBills, totalIncome float64
	for _, p := range a.assigned {
		totalBills += p.TotalBills()
		totalIncome += p.DisplayIncome()
	}
	var totalDebt float64
	for _, d := range a.state.Debts {
		totalDebt += d.CurrentBalance
	}

	cards := []struct{ Label, Value, Sub string }{
		{"Income", cli.FormatMoney(totalIncome), cli.FormatMonth(a.anchor)},
		{"Bills", cli.FormatMoney(totalBills), fmt.Sprintf("%d due", len(a.assigned[0].Entries)+len(a.assigned[1].Entries))},
		{"Leftover", cli.FormatMoney(totalIncome - totalBills), ""},
		{"Total Debt", cli.FormatMoney(totalDebt), fmt.Sprintf("%d accounts", len(a.state.Debts))},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// The two pay periods side by side
	halves := components.LayoutRow(cw, 2)
	left := a.renderPeriodCard(0, monthKey, halves[0])
	right := a.renderPeriodCard(1, monthKey, halves[1])
	b.WriteString(components.CardRow([]string{left, right}))
	b.WriteString("\n")

	// Suggestions for the focused period
	if sugg := a.suggestions[a.overview.period]; len(sugg) > 0 {
		b.WriteString(a.renderSuggestionsCard(sugg, cw))
	}

	return b.String()
}

func (a App) renderPeriodCard(idx int, monthKey string, outerW int) string {
	t := theme.Active
	p := a.assigned[idx]
	innerW := components.CardInnerWidth(outerW)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	paidStyle := lipgloss.NewStyle().Foreground(t.Green)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)

	focused := idx == a.overview.period

	var b strings.Builder
	for i, e := range p.Entries {
		check := "[ ]"
		style := nameStyle
		if model.StatusFor(a.statuses, e.ID, monthKey) == model.StatusPaid {
			check = "[x]"
			style = paidStyle
		}
		name := e.Name
		if e.Kind == period.EntryCardMinimum {
			name += " (min)"
		}

		amountW := 10
		nameW := innerW - len(check) - 1 - 7 - amountW
		if nameW < 8 {
			nameW = 8
		}
		line := fmt.Sprintf("%s %-*s %-6s %*s",
			check, nameW, truncate(name, nameW),
			e.DueDate.Format("Jan 2"),
			amountW, cli.FormatMoney(e.Amount))

		if focused && i == a.overview.cursor {
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString(style.Render(line))
		}
		b.WriteString("\n")
	}
	if len(p.Entries) == 0 {
		b.WriteString(dimStyle.Render("no bills this period"))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")

	incomeLabel := "Income"
	if p.Income == 0 && p.EstimatedIncome != nil {
		incomeLabel = "Income (est)"
	}
	if focused && a.overview.editingIncome {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-14s", incomeLabel)))
		b.WriteString(a.overview.incomeInput.View())
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "%s %s\n",
			mutedStyle.Render(fmt.Sprintf("%-14s", incomeLabel)),
			nameStyle.Render(cli.FormatMoney(p.DisplayIncome())))
	}
	fmt.Fprintf(&b, "%s %s\n",
		mutedStyle.Render(fmt.Sprintf("%-14s", "Bills")),
		nameStyle.Render(cli.FormatMoney(p.TotalBills())))

	leftoverStyle := paidStyle
	if p.Leftover() < 0 {
		leftoverStyle = lipgloss.NewStyle().Foreground(t.Red)
	}
	fmt.Fprintf(&b, "%s %s",
		mutedStyle.Render(fmt.Sprintf("%-14s", "Leftover")),
		leftoverStyle.Render(cli.FormatMoney(p.Leftover())))

	title := cli.FormatPeriodRange(p.Period.Start, p.Period.End)
	if focused {
		title = "▸ " + title
	}
	return components.ContentCard(title, b.String(), outerW)
}

func (a App) renderSuggestionsCard(sugg []model.PaymentSuggestion, cw int) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	var b strings.Builder
	for _, s := range sugg {
		name := s.DebtID
		for _, d := range a.state.Debts {
			if d.ID == s.DebtID {
				name = d.Name
			}
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-24s", truncate(name, 24))),
			accentStyle.Render(fmt.Sprintf("%10s", cli.FormatMoney(s.SuggestedAmount))),
			mutedStyle.Render(fmt.Sprintf("priority %d", s.Priority)))
	}
	return components.ContentCard("Suggested Extra Payments", strings.TrimRight(b.String(), "\n"), cw)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
