package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/pipeline"
)

var historyMonth string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past months",
	Long:  "Show the totals of every month before the current one and the expenses of one of them.",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyMonth, "month", "m", "", "Month to show as YYYY-MM (default last month)")
	rootCmd.AddCommand(historyCmd)
}

type historyReport struct {
	Months   []monthAmount    `json:"months" yaml:"months"`
	Selected string           `json:"selected,omitempty" yaml:"selected,omitempty"`
	Total    string           `json:"total,omitempty" yaml:"total,omitempty"`
	Expenses []cli.ExpenseRow `json:"expenses,omitempty" yaml:"expenses,omitempty"`
}

func runHistory(_ *cobra.Command, _ []string) error {
	if historyMonth != "" {
		if _, err := pipeline.ParseMonthKey(historyMonth); err != nil {
			return err
		}
	}

	s, exps, err := loadExpenses("history")
	if err != nil {
		return err
	}
	defer s.Close()

	now := s.now()
	h := pipeline.GroupHistory(exps, now)

	key := historyMonth
	if key == "" {
		key = h.Resolve(pipeline.DefaultHistoryKey(now))
	} else if !h.Has(key) {
		return fmt.Errorf("no history for %s (current month excluded)", cli.FormatMonthKey(key))
	}

	report := historyReport{Months: make([]monthAmount, len(h.Keys))}
	for i, k := range h.Keys {
		report.Months[i] = monthAmount{Month: k, Amount: h.Total(k).StringFixed(2)}
	}
	var bucketRows []cli.ExpenseRow
	if key != "" {
		bucket := h.Bucket(key)
		bucketRows = cli.Rows(bucket.Expenses)
		report.Selected = key
		report.Total = bucket.Total.StringFixed(2)
		report.Expenses = bucketRows
	}

	return emit(report, func() string {
		cur := s.cfg.General.Currency
		var b strings.Builder

		b.WriteString(header("HISTORY"))
		if key == "" {
			b.WriteString("  No expenses before this month.\n")
			return b.String()
		}

		monthRows := make([][]string, len(h.Keys))
		for i, k := range h.Keys {
			marker := ""
			if k == key {
				marker = "◀"
			}
			monthRows[i] = []string{cli.FormatMonthKey(k), cli.FormatMoney(h.Total(k), cur), marker}
		}
		b.WriteString(cli.RenderTable(cli.Table{
			Headers: []string{"Month", "Total", ""},
			Rows:    monthRows,
		}))
		b.WriteString("\n")

		bucket := h.Bucket(key)
		rows := make([][]string, 0, len(bucket.Expenses)+2)
		for _, e := range bucket.Expenses {
			rows = append(rows, []string{
				e.DateString(),
				truncate(e.Title, 28),
				string(e.Category),
				cli.FormatMoney(e.Amount, cur),
			})
		}
		rows = append(rows, cli.SeparatorRow,
			[]string{"", "Total", cli.FormatCount(len(bucket.Expenses)) + " expenses", cli.FormatMoney(bucket.Total, cur)})
		b.WriteString(cli.RenderTable(cli.Table{
			Title:   cli.FormatMonthKey(key),
			Headers: []string{"Date", "Title", "Category", "Amount"},
			Rows:    rows,
			Left:    3,
		}))

		older, newer := h.Prev(key), h.Next(key)
		var nav []string
		if older != key {
			nav = append(nav, "older: --month "+older)
		}
		if newer != key {
			nav = append(nav, "newer: --month "+newer)
		}
		if len(nav) > 0 {
			b.WriteString(note(strings.Join(nav, "   ")))
		}
		return b.String()
	})
}
