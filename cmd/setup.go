package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/store"
	"github.com/theirongolddev/spent/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	backendOpts := make([]huh.Option[string], len(store.Backends))
	for i, b := range store.Backends {
		backendOpts[i] = huh.NewOption(b, b)
	}
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}
	weekStart := strings.ToLower(cfg.WeekStart().String())

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to spent!").
				Description("Settings are saved to "+config.Path()),
			huh.NewInput().
				Title("Currency symbol").
				Value(&cfg.General.Currency).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("currency symbol is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Storage backend").
				Description("Both keep data in memory for the session.").
				Options(backendOpts...).
				Value(&cfg.General.Backend),
			huh.NewConfirm().
				Title("Start with sample expenses?").
				Value(&cfg.General.Seed),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("First day of the week").
				Options(
					huh.NewOption("Sunday", "sunday"),
					huh.NewOption("Monday", "monday"),
				).
				Value(&weekStart),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}
	cfg.General.WeekStart = weekStart

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `spent setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
