package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":      zerolog.InfoLevel,
		"debug": zerolog.DebugLevel,
		"WARN":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestComponentField(t *testing.T) {
	var buf bytes.Buffer
	l := Component(NewWithWriter(&buf, zerolog.InfoLevel), ComponentStore)
	l.Info().Str(FieldExpenseID, "42").Msg("added")
	l.Debug().Msg("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec[FieldComponent] != ComponentStore || rec[FieldExpenseID] != "42" {
		t.Fatalf("record = %v", rec)
	}
	if _, ok := rec["time"]; !ok {
		t.Fatalf("record has no timestamp: %v", rec)
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "spent.log")
	l, closer, err := New(Options{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info().Msg("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"message":"hello"`) {
		t.Fatalf("log file = %q", data)
	}
}

func TestDefaultPathUsesXDGState(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	if got, want := DefaultPath(), filepath.Join(dir, "spent", "spent.log"); got != want {
		t.Fatalf("DefaultPath = %s, want %s", got, want)
	}
}
