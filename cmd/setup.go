package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"paysplit/internal/config"
	"paysplit/internal/store"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to paysplit!")
	fmt.Println()

	// 1. Database location
	fmt.Println("  1. Database location")
	fmt.Printf("     Current: %s\n", dataPathOrDefault(cfg))
	fmt.Println("     Press enter to keep, or type a new path.")
	fmt.Print("     > ")
	path, _ := reader.ReadString('\n')
	path = strings.TrimSpace(path)
	if path != "" {
		cfg.General.DataPath = path
	}
	fmt.Println()

	// 2. Company lookup
	fmt.Println("  2. Company-name autocomplete")
	fmt.Println("     Looks up bill names against a public API to attach logos.")
	fmt.Println("     (1) Enabled [default]")
	fmt.Println("     (2) Disabled")
	fmt.Print("     > ")
	lookup, _ := reader.ReadString('\n')
	cfg.Lookup.Enabled = strings.TrimSpace(lookup) != "2"
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `paysplit setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func dataPathOrDefault(cfg config.Config) string {
	if cfg.General.DataPath != "" {
		return cfg.General.DataPath
	}
	return store.DefaultPath()
}
