package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/spent/internal/model"
)

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// ValidOutput reports whether f is a known output format.
func ValidOutput(f string) bool {
	switch f {
	case OutputTable, OutputJSON, OutputYAML:
		return true
	}
	return false
}

// Encode writes v to w as JSON or YAML.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("output %q cannot be encoded (want %s or %s)", format, OutputJSON, OutputYAML)
	}
}

// ExpenseRow is the report form of an expense.
type ExpenseRow struct {
	ID          string `json:"id" yaml:"id"`
	Date        string `json:"date" yaml:"date"`
	Title       string `json:"title" yaml:"title"`
	Category    string `json:"category" yaml:"category"`
	Amount      string `json:"amount" yaml:"amount"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Rows converts expenses to report rows, keeping order.
func Rows(exps []model.Expense) []ExpenseRow {
	rows := make([]ExpenseRow, len(exps))
	for i, e := range exps {
		rows[i] = ExpenseRow{
			ID:          e.ID,
			Date:        e.DateString(),
			Title:       e.Title,
			Category:    string(e.Category),
			Amount:      e.Amount.StringFixed(2),
			Description: e.Description,
		}
	}
	return rows
}

// CategoryRow is the report form of a category total.
type CategoryRow struct {
	Category string  `json:"category" yaml:"category"`
	Amount   string  `json:"amount" yaml:"amount"`
	Count    int     `json:"count" yaml:"count"`
	Percent  float64 `json:"percent" yaml:"percent"`
}

// CategoryRows converts category totals to report rows.
func CategoryRows(totals []model.CategoryTotal) []CategoryRow {
	rows := make([]CategoryRow, len(totals))
	for i, ct := range totals {
		rows[i] = CategoryRow{
			Category: string(ct.Category),
			Amount:   ct.Amount.StringFixed(2),
			Count:    ct.Count,
			Percent:  roundPct(ct.Percent),
		}
	}
	return rows
}

func roundPct(p float64) float64 {
	return float64(int64(p*100+0.5)) / 100
}
