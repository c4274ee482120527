// Package tui provides the interactive Bubble Tea dashboard for paysplit.
package tui

import (
	"fmt"
	"strings"
	"time"

	"paysplit/internal/cli"
	"paysplit/internal/config"
	"paysplit/internal/debt"
	"paysplit/internal/model"
	"paysplit/internal/period"
	"paysplit/internal/store"
	"paysplit/internal/tui/components"
	"paysplit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabOverview = iota
	tabBills
	tabDebts
	tabSettings
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
)

// App is the root Bubble Tea model.
type App struct {
	store *store.Store
	cfg   config.Config

	anchor time.Time // first day of the viewed month
	now    time.Time

	// Source documents, reloaded after every mutation
	bills     []model.Bill
	state     model.DebtState
	periods   model.MonthPeriods
	estimates []model.PayPeriodEstimate
	statuses  []model.BillStatusRecord

	// Projections derived from the documents
	assigned    [2]period.Assigned
	suggestions [2][]model.PaymentSuggestion

	err error // last load/save failure, shown in the status area

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	overview overviewState
	billsTab billsState
	debts    debtsState
	settings settingsState

	// First-run setup (huh form). Values live behind a pointer so the form's
	// bindings survive the model being copied between updates.
	needSetup bool
	setupForm *huh.Form
	setupVals *setupValues
}

// NewApp creates the dashboard model and loads the documents.
func NewApp(s *store.Store, cfg config.Config, anchor, now time.Time) App {
	a := App{
		store:     s,
		cfg:       cfg,
		anchor:    time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC),
		now:       now,
		needSetup: !config.Exists(),
	}
	a.reload()
	if a.needSetup {
		a.setupVals = &setupValues{}
		a.setupForm = newSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// reload pulls every document from the store and recomputes the projections.
func (a *App) reload() {
	var err error
	if a.bills, err = a.store.Bills(); err != nil {
		a.err = err
		return
	}
	if a.state, err = a.store.DebtState(); err != nil {
		a.err = err
		return
	}
	if a.periods, err = a.store.Periods(); err != nil {
		a.err = err
		return
	}
	if a.estimates, err = a.store.Estimates(); err != nil {
		a.err = err
		return
	}
	if a.statuses, err = a.store.Statuses(); err != nil {
		a.err = err
		return
	}
	a.err = nil
	a.recompute()
}

// recompute rebuilds the period projections and payment suggestions for the
// viewed month. Cheap enough to run on every keystroke that changes data.
func (a *App) recompute() {
	monthKey := model.MonthKey(a.anchor)
	a.assigned = period.Assign(a.bills, a.state.Debts, a.anchor, a.now,
		a.periods[monthKey], a.estimates)
	for i := range a.assigned {
		a.suggestions[i] = debt.Suggest(a.assigned[i].Leftover(), a.state.Debts, a.state.Settings)
	}

	if a.billsTab.cursor >= len(a.bills) {
		a.billsTab.cursor = len(a.bills) - 1
	}
	if a.billsTab.cursor < 0 {
		a.billsTab.cursor = 0
	}
	if a.debts.cursor >= len(a.state.Debts) {
		a.debts.cursor = len(a.state.Debts) - 1
	}
	if a.debts.cursor < 0 {
		a.debts.cursor = 0
	}
	entries := a.assigned[a.overview.period].Entries
	if a.overview.cursor >= len(entries) {
		a.overview.cursor = len(entries) - 1
	}
	if a.overview.cursor < 0 {
		a.overview.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.billsTab.form != nil {
			a.billsTab.form = a.billsTab.form.WithWidth(msg.Width)
		}
		return a, nil

	case companyFoundMsg:
		return a.applyCompanyMatch(msg), nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Bill add form intercepts all keys
		if a.billsTab.form != nil {
			return a.updateBillForm(msg)
		}

		// Income editing on the overview tab
		if a.activeTab == tabOverview && a.overview.editingIncome {
			return a.updateIncomeInput(msg)
		}

		// Settings editing
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Month navigation
		switch key {
		case "h":
			a.anchor = model.AddMonths(a.anchor, -1)
			a.recompute()
			return a, nil
		case "l":
			a.anchor = model.AddMonths(a.anchor, 1)
			a.recompute()
			return a, nil
		}

		// Per-tab keys
		switch a.activeTab {
		case tabOverview:
			if m, cmd, handled := a.updateOverviewKeys(key); handled {
				return m, cmd
			}
		case tabBills:
			if m, cmd, handled := a.updateBillsKeys(key); handled {
				return m, cmd
			}
		case tabDebts:
			if m, cmd, handled := a.updateDebtsKeys(key); handled {
				return m, cmd
			}
		case tabSettings:
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		// Tab navigation
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil
	}

	// Forward unhandled messages to active forms (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.billsTab.form != nil {
		return a.updateBillForm(msg)
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  paysplit needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.billsTab.form != nil {
		return a.billsTab.form.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	var b strings.Builder
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabOverview:
		b.WriteString(a.renderOverviewTab(cw))
	case tabBills:
		b.WriteString(a.renderBillsTab(cw))
	case tabDebts:
		b.WriteString(a.renderDebtsTab(cw))
	case tabSettings:
		b.WriteString(a.renderSettingsTab(cw))
	}
	b.WriteString("\n")

	if a.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		b.WriteString(errStyle.Render(fmt.Sprintf(" Error: %s", a.err)))
		b.WriteString("\n")
	}

	b.WriteString(components.RenderStatusBar(a.width, cli.FormatMonth(a.anchor)))
	return b.String()
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"o b d x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"h l", "Previous / Next month"},
		{"j k", "Navigate lists"},
		{"1 2", "Focus pay period"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"space", "Toggle bill paid"},
		{"i", "Edit period income"},
		{"a", "Add bill"},
		{"D", "Delete bill"},
		{"p", "Pay card minimum"},
		{"u", "Undo last payment"},
		{"Enter", "Edit / Confirm"},
		{"Esc", "Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}
