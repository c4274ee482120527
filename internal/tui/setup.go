package tui

import (
	"paysplit/internal/config"
	"paysplit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run wizard answers.
type setupValues struct {
	theme  string
	lookup bool
}

func newSetupForm(vals *setupValues) *huh.Form {
	vals.theme = theme.Active.Name
	vals.lookup = true

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to paysplit!").
				Description("A couple of questions before the dashboard opens."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
			huh.NewConfirm().
				Title("Enable company-name lookup?").
				Description("Matches bill names against a public API to attach logos.").
				Value(&vals.lookup),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) saveSetupConfig() {
	if a.setupVals == nil {
		return
	}
	a.cfg.Appearance.Theme = a.setupVals.theme
	a.cfg.Lookup.Enabled = a.setupVals.lookup
	theme.SetActive(a.cfg.Appearance.Theme)
	// Best-effort; the session still works with in-memory settings.
	_ = config.Save(a.cfg)
}
