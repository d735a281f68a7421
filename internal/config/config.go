// Package config loads and saves spent settings as TOML under the XDG config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/theirongolddev/spent/internal/logging"
	"github.com/theirongolddev/spent/internal/store"
	"github.com/theirongolddev/spent/internal/tui/theme"
)

// Environment variables that override the file.
const (
	EnvBackend  = "SPENT_BACKEND"
	EnvTheme    = "SPENT_THEME"
	EnvLogLevel = "SPENT_LOG_LEVEL"
	EnvCurrency = "SPENT_CURRENCY"
)

// Config holds all spent configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds data and calendar preferences.
type GeneralConfig struct {
	Currency  string `toml:"currency"`
	Backend   string `toml:"backend"`
	Seed      bool   `toml:"seed"`
	WeekStart string `toml:"week_start"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds diagnostics log settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:  "$",
			Backend:   store.BackendMemory,
			Seed:      true,
			WeekStart: "sunday",
		},
		Appearance: AppearanceConfig{
			Theme: theme.FlexokiDark.Name,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spent")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spent")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// LoadDotEnv reads .env from the working directory into the environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the config file, returning defaults if it doesn't exist,
// then applies environment overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	ApplyEnv(&cfg)
	return cfg, nil
}

// ApplyEnv overrides cfg fields from SPENT_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.General.Backend = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.General.Currency = v
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	if !contains(store.Backends, c.General.Backend) {
		problems = append(problems, fmt.Sprintf("unknown backend %q (want %s)",
			c.General.Backend, strings.Join(store.Backends, ", ")))
	}
	if _, err := ParseWeekday(c.General.WeekStart); err != nil {
		problems = append(problems, err.Error())
	}
	if !theme.Exists(c.Appearance.Theme) {
		problems = append(problems, fmt.Sprintf("unknown theme %q (want %s)",
			c.Appearance.Theme, strings.Join(theme.Names(), ", ")))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}
	if strings.TrimSpace(c.General.Currency) == "" {
		problems = append(problems, "currency symbol is empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// WeekStart returns the configured first day of the week, Sunday if unset or invalid.
func (c Config) WeekStart() time.Weekday {
	d, err := ParseWeekday(c.General.WeekStart)
	if err != nil {
		return time.Sunday
	}
	return d
}

// ParseWeekday accepts a full or three-letter English day name. Empty means Sunday.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown week start %q", s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
