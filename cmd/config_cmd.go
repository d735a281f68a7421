package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if flagOutput != cli.OutputTable {
		return cli.Encode(os.Stdout, flagOutput, cfg)
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:   %s\n", cfg.General.Currency)
	fmt.Printf("    Backend:    %s%s\n", cfg.General.Backend, envNote(config.EnvBackend))
	fmt.Printf("    Seed data:  %v\n", cfg.General.Seed)
	fmt.Printf("    Week start: %s\n", cfg.WeekStart())
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s%s\n", cfg.Appearance.Theme, envNote(config.EnvTheme))
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s%s\n", cfg.Log.Level, envNote(config.EnvLogLevel))
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = logging.DefaultPath()
	}
	fmt.Printf("    File:  %s\n", logFile)
	fmt.Println()

	if err := cfg.Validate(); err != nil {
		fmt.Printf("  ! %v\n\n", err)
	}

	fmt.Println("  Run `spent setup` to reconfigure.")
	return nil
}

func envNote(name string) string {
	if os.Getenv(name) != "" {
		return "  (from " + name + ")"
	}
	return ""
}
