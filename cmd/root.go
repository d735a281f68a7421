// Package cmd implements the spent CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/logging"
	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/store"
	"github.com/theirongolddev/spent/internal/tui/theme"
)

var (
	flagAsOf    string
	flagBackend string
	flagNoSeed  bool
	flagOutput  string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "spent",
	Short:         "Terminal expense tracker",
	Long:          "Track expenses by category and browse totals by week, month and year.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Reference date YYYY-MM-DD (default today)")
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Storage backend: memory or sqlite (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoSeed, "no-seed", false, "Start with an empty expense list")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", cli.OutputTable, "Report format: table, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress titles and notes")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log diagnostics to stderr")
}

// session is everything a command needs: settings, logger, clock and a loaded store.
type session struct {
	cfg    config.Config
	log    zerolog.Logger
	now    func() time.Time
	store  *store.Store
	closer io.Closer
}

func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.log.Warn().Err(err).Msg("closing store")
		}
	}
	_ = s.closer.Close()
}

// openSession is the shared setup path used by all commands.
func openSession(forTUI bool) (*session, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagBackend != "" {
		cfg.General.Backend = flagBackend
	}
	if flagNoSeed {
		cfg.General.Seed = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !forTUI && !cli.ValidOutput(flagOutput) {
		return nil, fmt.Errorf("unknown output %q (want table, json or yaml)", flagOutput)
	}
	theme.SetActive(cfg.Appearance.Theme)

	log, closer, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Stderr: flagVerbose && !forTUI,
	})
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: log, closer: closer, now: time.Now}

	cfgLog := logging.Component(log, logging.ComponentConfig)
	cfgLog.Debug().
		Str(logging.FieldPath, config.Path()).
		Bool("from_file", config.Exists()).
		Msg("config loaded")

	if flagAsOf != "" {
		asOf, err := model.ParseDate(flagAsOf)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("--as-of %q: want YYYY-MM-DD", flagAsOf)
		}
		s.now = func() time.Time { return asOf }
	}

	backend, err := store.OpenBackend(cfg.General.Backend)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.store = store.New(backend, log, s.now)
	if cfg.General.Seed {
		if err := store.Seed(s.store); err != nil {
			s.Close()
			return nil, fmt.Errorf("seeding: %w", err)
		}
	}

	log.Debug().
		Str(logging.FieldBackend, cfg.General.Backend).
		Int(logging.FieldCount, s.store.Len()).
		Msg("session ready")
	return s, nil
}

// loadExpenses opens a report session and snapshots the store.
func loadExpenses(cmdName string) (*session, []model.Expense, error) {
	s, err := openSession(false)
	if err != nil {
		return nil, nil, err
	}
	s.log = logging.Component(s.log, logging.ComponentCLI).With().Str(logging.FieldCommand, cmdName).Logger()

	exps, err := s.store.Snapshot()
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return s, exps, nil
}

// emit writes report as JSON/YAML, or prints the table rendering.
func emit(report any, table func() string) error {
	if flagOutput != cli.OutputTable {
		return cli.Encode(os.Stdout, flagOutput, report)
	}
	fmt.Print(table())
	return nil
}

// header returns the report title block, or nothing with --quiet.
func header(title string) string {
	if flagQuiet {
		return ""
	}
	return "\n" + cli.RenderTitle(title) + "\n\n"
}

// note returns a muted trailing remark, or nothing with --quiet.
func note(s string) string {
	if flagQuiet {
		return ""
	}
	return "\n" + cli.RenderNote(s) + "\n"
}

func parseCategoryFlag(s string) (model.Category, error) {
	if s == "" {
		return "", nil
	}
	c, err := model.ParseCategory(s)
	if err != nil {
		if errors.Is(err, model.ErrUnknownCategory) {
			return "", fmt.Errorf("unknown category %q", s)
		}
		return "", err
	}
	return c, nil
}
