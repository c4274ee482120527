package cmd

import (
	"fmt"
	"strconv"

	"paysplit/internal/cli"
	"paysplit/internal/config"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show suggestion settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: "Keys:\n" +
		"  threshold   leftover income preserved before suggesting (dollars)\n" +
		"  min-extra   smallest suggested extra payment (dollars)\n" +
		"  aggressive  true/false, reserved for payoff strategy selection\n" +
		"  theme       color theme name",
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	state, err := s.DebtState()
	if err != nil {
		return err
	}
	cfg, _ := config.Load()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Settings",
		Headers: []string{"Key", "Value"},
		Rows: [][]string{
			{"threshold", cli.FormatMoney(state.Settings.VariableThreshold)},
			{"min-extra", cli.FormatMoney(state.Settings.MinimumExtraPayment)},
			{"aggressive", strconv.FormatBool(state.Settings.AggressivePayoff)},
			{"theme", cfg.Appearance.Theme},
		},
	}))
	return nil
}

func runSettingsSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if key == "theme" {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}
		cfg.Appearance.Theme = value
		if err := config.Save(cfg); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("Theme set to %s\n", value)
		}
		return nil
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	state, err := s.DebtState()
	if err != nil {
		return err
	}

	switch key {
	case "threshold":
		v, err := parseAmount(value)
		if err != nil {
			return err
		}
		state.Settings.VariableThreshold = v
	case "min-extra":
		v, err := parseAmount(value)
		if err != nil {
			return err
		}
		state.Settings.MinimumExtraPayment = v
	case "aggressive":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("aggressive wants true or false, got %q", value)
		}
		state.Settings.AggressivePayoff = v
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	if err := s.SaveDebtState(state); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("Set %s to %s\n", key, value)
	}
	return nil
}
