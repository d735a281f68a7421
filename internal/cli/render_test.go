package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/pipeline"
	"github.com/theirongolddev/spent/internal/store"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderTable(Table{
		Headers: []string{"Category", "Amount"},
		Rows: [][]string{
			{"Travel", "$450.00"},
			SeparatorRow,
			{"Total", "$1,200.00"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	width := lipgloss.Width(lines[0])
	for i, l := range lines {
		if lipgloss.Width(l) != width {
			t.Fatalf("line %d width %d, want %d:\n%s", i, lipgloss.Width(l), width, out)
		}
	}
	if !strings.Contains(lines[3], "│ Travel   │   $450.00 │") {
		t.Fatalf("row not aligned: %q", lines[3])
	}
}

func TestRenderShareBar(t *testing.T) {
	if got := RenderShareBar(50, 10); got != "█████░░░░░" {
		t.Fatalf("50%% = %q", got)
	}
	if got := RenderShareBar(150, 4); got != "████" {
		t.Fatalf("clamped = %q", got)
	}
	if got := RenderShareBar(0, 3); got != "░░░" {
		t.Fatalf("empty = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 7, 14}); got != "▁▄█" {
		t.Fatalf("sparkline = %q", got)
	}
	if got := RenderSparkline(nil); got != "" {
		t.Fatalf("empty sparkline = %q", got)
	}
}

func TestEncodeReports(t *testing.T) {
	exps := store.SampleExpenses()[:2]
	totals := pipeline.CategoryTotals(exps)

	var buf bytes.Buffer
	if err := Encode(&buf, OutputJSON, CategoryRows(totals)); err != nil {
		t.Fatalf("Encode json: %v", err)
	}
	var rows []CategoryRow
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 2 || rows[0].Category != string(model.FoodDining) || rows[0].Amount != "85.50" {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].Percent != 65.52 {
		t.Fatalf("percent = %v, want 65.52", rows[0].Percent)
	}

	buf.Reset()
	if err := Encode(&buf, OutputYAML, Rows(exps)); err != nil {
		t.Fatalf("Encode yaml: %v", err)
	}
	var back []ExpenseRow
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("yaml unmarshal: %v", err)
	}
	if len(back) != 2 || back[1].Title != "Gas Station" || back[1].Date != "2025-08-14" {
		t.Fatalf("yaml rows = %+v", back)
	}

	if err := Encode(&buf, OutputTable, nil); err == nil {
		t.Fatal("expected error encoding table format")
	}
}
