package tui

import (
	"fmt"
	"strings"
	"time"

	"paysplit/internal/cli"
	"paysplit/internal/debt"
	"paysplit/internal/tui/components"
	"paysplit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// debtsState tracks the debts tab cursor.
type debtsState struct {
	cursor int
}

func (a App) updateDebtsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.debts.cursor < len(a.state.Debts)-1 {
			a.debts.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.debts.cursor > 0 {
			a.debts.cursor--
		}
		return a, nil, true
	case "p":
		a.payMinimumAtCursor()
		return a, nil, true
	case "u":
		a.undoPaymentAtCursor()
		return a, nil, true
	}
	return a, nil, false
}

func (a *App) payMinimumAtCursor() {
	if a.debts.cursor >= len(a.state.Debts) {
		return
	}
	d := a.state.Debts[a.debts.cursor]
	a.state.Debts[a.debts.cursor] = debt.ApplyPayment(d, d.MinimumPayment, time.Now())
	if err := a.store.SaveDebtState(a.state); err != nil {
		a.err = err
		return
	}
	a.recompute()
}

func (a *App) undoPaymentAtCursor() {
	if a.debts.cursor >= len(a.state.Debts) {
		return
	}
	d := a.state.Debts[a.debts.cursor]
	a.state.Debts[a.debts.cursor] = debt.UndoLastPayment(d)
	if err := a.store.SaveDebtState(a.state); err != nil {
		a.err = err
		return
	}
	a.recompute()
}

func (a App) renderDebtsTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)

	var b strings.Builder
	for i, d := range a.state.Debts {
		name := d.Name
		detail := ""
		if card, ok := d.AsCard(); ok {
			util := card.Utilization(d.CurrentBalance)
			detail = fmt.Sprintf("%s %s  %s APR",
				utilizationBar(util, 10),
				cli.FormatPercent(util),
				cli.FormatAPR(card.APR))
		} else {
			name += " (loan)"
			detail = fmt.Sprintf("%s APR", cli.FormatAPR(d.InterestRate))
		}

		nameW := innerW / 3
		if nameW < 12 {
			nameW = 12
		}
		// The bar carries its own colors, so only the name/balance half of
		// the row takes the selection highlight.
		row := fmt.Sprintf("%-*s %12s  ",
			nameW, truncate(name, nameW), cli.FormatMoney(d.CurrentBalance))
		if i == a.debts.cursor {
			b.WriteString(selStyle.Render(row))
		} else {
			b.WriteString(nameStyle.Render(row))
		}
		b.WriteString(detail)
		b.WriteString("\n")
	}
	if len(a.state.Debts) == 0 {
		b.WriteString(dimStyle.Render("no debts tracked"))
		b.WriteString("\n")
	}

	listCard := components.ContentCard("Debts", b.String(), cw)

	// Payment history for the highlighted debt
	var hist strings.Builder
	if a.debts.cursor < len(a.state.Debts) {
		d := a.state.Debts[a.debts.cursor]
		if card, ok := d.AsCard(); ok {
			hist.WriteString(mutedStyle.Render("Limit:     ") + nameStyle.Render(cli.FormatMoney(card.CreditLimit)) + "\n")
			hist.WriteString(mutedStyle.Render("Min:       ") + nameStyle.Render(cli.FormatMoney(d.MinimumPayment)) + "\n")
			hist.WriteString(mutedStyle.Render("Due day:   ") + nameStyle.Render(cli.FormatOrdinalDay(card.DueDay)) + "\n")
			if card.LastPaymentDate != nil && card.LastPaymentAmount != nil {
				hist.WriteString(mutedStyle.Render("Last paid: ") +
					nameStyle.Render(fmt.Sprintf("%s on %s",
						cli.FormatMoney(*card.LastPaymentAmount),
						cli.FormatDateLong(*card.LastPaymentDate))) + "\n")
			}
		}
		if len(d.PaymentHistory) > 0 {
			hist.WriteString("\n")
			// Most recent first, capped so the card stays short
			n := len(d.PaymentHistory)
			limit := 8
			for i := n - 1; i >= 0 && n-i <= limit; i-- {
				p := d.PaymentHistory[i]
				fmt.Fprintf(&hist, "%s  %s\n",
					mutedStyle.Render(cli.FormatDateLong(p.Date)),
					nameStyle.Render(cli.FormatMoney(p.Amount)))
			}
		} else {
			hist.WriteString(dimStyle.Render("no payments recorded"))
			hist.WriteString("\n")
		}
	}
	hist.WriteString("\n")
	hist.WriteString(dimStyle.Render("[p] pay minimum  [u] undo  [j/k] navigate"))

	histCard := components.ContentCard("Payment History", hist.String(), cw)

	return listCard + "\n" + histCard
}

// utilizationBar renders a colored utilization bar: green below 50%, orange
// to 80%, red above.
func utilizationBar(pct float64, width int) string {
	t := theme.Active
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))
	empty := width - filled

	color := t.Green
	if pct >= 0.8 {
		color = t.Red
	} else if pct >= 0.5 {
		color = t.Orange
	}

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("░", empty))
}
