// Package logging builds the zerolog logger used for diagnostics.
//
// The terminal belongs to the TUI, so by default logs go to a file under
// the XDG state directory. Report commands can send them to stderr instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Options selects the level and destination of the logger.
type Options struct {
	Level  string // zerolog level name, empty means info
	File   string // log file path, empty means DefaultPath()
	Stderr bool   // write to stderr instead of a file
}

// DefaultPath returns $XDG_STATE_HOME/spent/spent.log, falling back to
// ~/.local/state/spent/spent.log.
func DefaultPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "spent", "spent.log")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "spent", "spent.log")
}

// ParseLevel maps a level name to a zerolog level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// New returns a logger for opts and the closer of its destination.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	if opts.Stderr {
		w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		return NewWithWriter(w, lvl), nopCloser{}, nil
	}

	path := opts.File
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("opening log file: %w", err)
	}
	return NewWithWriter(f, lvl), f, nil
}

// NewWithWriter returns a timestamped logger writing JSON lines to w.
func NewWithWriter(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Component derives a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(FieldComponent, name).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
