package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/pipeline"
)

var (
	listSearch   string
	listCategory string
	listAll      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List this month's expenses, newest first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Match title or description (case-insensitive)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only this category")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "List every month, not just the current one")
	rootCmd.AddCommand(listCmd)
}

type listReport struct {
	Search   string           `json:"search,omitempty" yaml:"search,omitempty"`
	Category string           `json:"category,omitempty" yaml:"category,omitempty"`
	Count    int              `json:"count" yaml:"count"`
	Total    string           `json:"total" yaml:"total"`
	Expenses []cli.ExpenseRow `json:"expenses" yaml:"expenses"`
}

func runList(_ *cobra.Command, _ []string) error {
	category, err := parseCategoryFlag(listCategory)
	if err != nil {
		return err
	}

	s, exps, err := loadExpenses("list")
	if err != nil {
		return err
	}
	defer s.Close()

	now := s.now()
	scope := exps
	if !listAll {
		scope = pipeline.FilterCurrentMonth(exps, now)
	}
	rows := pipeline.SortByDateDesc(pipeline.FilterSearch(scope, listSearch, category))
	total := pipeline.Total(rows)

	report := listReport{
		Search:   listSearch,
		Category: string(category),
		Count:    len(rows),
		Total:    total.StringFixed(2),
		Expenses: cli.Rows(rows),
	}

	return emit(report, func() string {
		cur := s.cfg.General.Currency
		var b strings.Builder

		title := "THIS MONTH  " + now.Format("January 2006")
		if listAll {
			title = "ALL EXPENSES"
		}
		b.WriteString(header(title))

		if len(rows) == 0 {
			b.WriteString("  No expenses match.\n")
			return b.String()
		}

		tableRows := make([][]string, 0, len(rows)+2)
		for _, e := range rows {
			tableRows = append(tableRows, []string{
				e.DateString(),
				truncate(e.Title, 28),
				string(e.Category),
				cli.FormatMoney(e.Amount, cur),
			})
		}
		tableRows = append(tableRows, cli.SeparatorRow,
			[]string{"", "Total", cli.FormatCount(len(rows)) + " expenses", cli.FormatMoney(total, cur)})

		b.WriteString(cli.RenderTable(cli.Table{
			Headers: []string{"Date", "Title", "Category", "Amount"},
			Rows:    tableRows,
			Left:    3,
		}))

		var filters []string
		if listSearch != "" {
			filters = append(filters, fmt.Sprintf("search %q", listSearch))
		}
		if category != "" {
			filters = append(filters, "category "+string(category))
		}
		if len(filters) > 0 {
			b.WriteString(note("filtered by " + strings.Join(filters, ", ")))
		}
		return b.String()
	})
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
