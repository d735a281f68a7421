package cmd

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/pipeline"
)

var categoriesMonth bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Spending by category with percentages",
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVarP(&categoriesMonth, "month", "m", false, "Only the current month")
	rootCmd.AddCommand(categoriesCmd)
}

type categoriesReport struct {
	Scope      string            `json:"scope" yaml:"scope"`
	Total      string            `json:"total" yaml:"total"`
	Categories []cli.CategoryRow `json:"categories" yaml:"categories"`
}

func runCategories(_ *cobra.Command, _ []string) error {
	s, exps, err := loadExpenses("categories")
	if err != nil {
		return err
	}
	defer s.Close()

	scope := "all time"
	if categoriesMonth {
		exps = pipeline.FilterCurrentMonth(exps, s.now())
		scope = s.now().Format("January 2006")
	}
	totals := pipeline.CategoryTotals(exps)
	total := pipeline.Total(exps)

	report := categoriesReport{
		Scope:      scope,
		Total:      total.StringFixed(2),
		Categories: cli.CategoryRows(totals),
	}

	return emit(report, func() string {
		var b strings.Builder
		b.WriteString(header("BY CATEGORY  " + scope))
		if len(totals) == 0 {
			b.WriteString("  No expenses recorded yet.\n")
			return b.String()
		}
		b.WriteString(categoryTable(totals, total, s.cfg.General.Currency, decimal.Zero))
		return b.String()
	})
}

// categoryTable renders category totals with a share bar. A non-zero
// global adds a column comparing each amount against it.
func categoryTable(totals []model.CategoryTotal, total decimal.Decimal, cur string, global decimal.Decimal) string {
	headers := []string{"Category", "Amount", "Count", "Share", ""}
	if !global.IsZero() {
		headers = append(headers, "Of All")
	}

	rows := make([][]string, 0, len(totals)+2)
	for _, ct := range totals {
		row := []string{
			string(ct.Category),
			cli.FormatMoney(ct.Amount, cur),
			cli.FormatCount(ct.Count),
			cli.FormatPercent(ct.Percent),
			cli.RenderShareBar(ct.Percent, 20),
		}
		if !global.IsZero() {
			row = append(row, cli.FormatPercent(pipeline.Percent(ct.Amount, global)))
		}
		rows = append(rows, row)
	}

	count := 0
	for _, ct := range totals {
		count += ct.Count
	}
	footer := []string{"Total", cli.FormatMoney(total, cur), cli.FormatCount(count), "", ""}
	if !global.IsZero() {
		footer = append(footer, cli.FormatPercent(pipeline.Percent(total, global)))
	}
	rows = append(rows, cli.SeparatorRow, footer)

	return cli.RenderTable(cli.Table{Headers: headers, Rows: rows})
}
