package tui

import (
	"fmt"
	"strconv"
	"strings"

	"paysplit/internal/cli"
	"paysplit/internal/config"
	"paysplit/internal/tui/components"
	"paysplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldThreshold = iota
	settingsFieldMinExtra
	settingsFieldAggressive
	settingsFieldTheme
	settingsFieldLookup
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40

	switch a.settings.cursor {
	case settingsFieldThreshold:
		ti.Placeholder = "500"
		ti.SetValue(strconv.FormatFloat(a.state.Settings.VariableThreshold, 'f', -1, 64))
	case settingsFieldMinExtra:
		ti.Placeholder = "50"
		ti.SetValue(strconv.FormatFloat(a.state.Settings.MinimumExtraPayment, 'f', -1, 64))
	case settingsFieldAggressive:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(a.state.Settings.AggressivePayoff))
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldLookup:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(a.cfg.Lookup.Enabled))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldThreshold:
		if v, err := strconv.ParseFloat(val, 64); err == nil && v >= 0 {
			a.state.Settings.VariableThreshold = v
		}
	case settingsFieldMinExtra:
		if v, err := strconv.ParseFloat(val, 64); err == nil && v >= 0 {
			a.state.Settings.MinimumExtraPayment = v
		}
	case settingsFieldAggressive:
		if v, err := strconv.ParseBool(val); err == nil {
			a.state.Settings.AggressivePayoff = v
		}
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				a.cfg.Appearance.Theme = val
				theme.SetActive(val)
			}
		}
	case settingsFieldLookup:
		if v, err := strconv.ParseBool(val); err == nil {
			a.cfg.Lookup.Enabled = v
		}
	}

	switch a.settings.cursor {
	case settingsFieldTheme, settingsFieldLookup:
		a.settings.saveErr = config.Save(a.cfg)
	default:
		a.settings.saveErr = a.store.SaveDebtState(a.state)
		a.recompute()
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	type field struct {
		label string
		value string
	}
	fields := []field{
		{"Spending Threshold", cli.FormatMoney(a.state.Settings.VariableThreshold)},
		{"Minimum Extra", cli.FormatMoney(a.state.Settings.MinimumExtraPayment)},
		{"Aggressive Payoff", strconv.FormatBool(a.state.Settings.AggressivePayoff)},
		{"Theme", a.cfg.Appearance.Theme},
		{"Company Lookup", strconv.FormatBool(a.cfg.Lookup.Enabled)},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-20s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-20s ", f.label+":")))
			formBody.WriteString(selectedStyle.Render(f.value))
		} else {
			formBody.WriteString("  ")
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// General info card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file: ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Bills:       ") + valueStyle.Render(strconv.Itoa(len(a.bills))) + "\n")
	infoBody.WriteString(labelStyle.Render("Debts:       ") + valueStyle.Render(strconv.Itoa(len(a.state.Debts))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
