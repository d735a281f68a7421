package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals for today, this week, month, year and all time",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

type summaryReport struct {
	AsOf          string        `json:"as_of" yaml:"as_of"`
	Expenses      int           `json:"expenses" yaml:"expenses"`
	Today         string        `json:"today" yaml:"today"`
	ThisWeek      string        `json:"this_week" yaml:"this_week"`
	ThisMonth     string        `json:"this_month" yaml:"this_month"`
	LastMonth     string        `json:"last_month" yaml:"last_month"`
	LastSixMonths string        `json:"last_six_months" yaml:"last_six_months"`
	ThisYear      string        `json:"this_year" yaml:"this_year"`
	AllTime       string        `json:"all_time" yaml:"all_time"`
	DailyAverage  string        `json:"daily_average" yaml:"daily_average"`
	Months        []monthAmount `json:"months" yaml:"months"`
}

type monthAmount struct {
	Month  string `json:"month" yaml:"month"`
	Amount string `json:"amount" yaml:"amount"`
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, exps, err := loadExpenses("summary")
	if err != nil {
		return err
	}
	defer s.Close()

	now := s.now()
	p := pipeline.PeriodTotals(exps, now, s.cfg.WeekStart())
	months := pipeline.TrailingMonths(exps, now, 12)

	report := summaryReport{
		AsOf:          model.DateOf(now).Format(model.DateLayout),
		Expenses:      len(exps),
		Today:         p.Today.StringFixed(2),
		ThisWeek:      p.ThisWeek.StringFixed(2),
		ThisMonth:     p.ThisMonth.StringFixed(2),
		LastMonth:     p.LastMonth.StringFixed(2),
		LastSixMonths: p.LastSixMonths.StringFixed(2),
		ThisYear:      p.ThisYear.StringFixed(2),
		AllTime:       p.AllTime.StringFixed(2),
		DailyAverage:  p.DailyAverage.StringFixed(2),
	}
	for _, m := range months {
		report.Months = append(report.Months, monthAmount{Month: m.Key, Amount: m.Total.StringFixed(2)})
	}

	return emit(report, func() string {
		cur := s.cfg.General.Currency
		var b strings.Builder

		b.WriteString(header("SPENT  as of " + cli.FormatDate(now)))
		if len(exps) == 0 {
			b.WriteString("  No expenses recorded yet.\n")
			return b.String()
		}

		rows := [][]string{
			{"Today", cli.FormatMoney(p.Today, cur)},
			{"This Week", cli.FormatMoney(p.ThisWeek, cur)},
			{"This Month", cli.FormatMoney(p.ThisMonth, cur)},
			{"Daily Average", cli.FormatMoney(p.DailyAverage, cur) + "/day"},
			cli.SeparatorRow,
			{"Last Month", cli.FormatMoney(p.LastMonth, cur)},
			{"Last 6 Months", cli.FormatMoney(p.LastSixMonths, cur)},
			{"This Year", cli.FormatMoney(p.ThisYear, cur)},
			{"All Time", cli.FormatMoney(p.AllTime, cur)},
		}
		b.WriteString(cli.RenderTable(cli.Table{
			Headers: []string{"Period", "Amount"},
			Rows:    rows,
		}))

		values := make([]float64, len(months))
		for i, m := range months {
			values[i] = m.Total.InexactFloat64()
		}
		b.WriteString("\n")
		b.WriteString(cli.RenderKeyValue("Last 12 months", cli.RenderSparkline(values), 16))
		b.WriteString("\n")
		b.WriteString(note(fmt.Sprintf("%s expenses, week starts %s",
			cli.FormatCount(len(exps)), s.cfg.WeekStart())))
		return b.String()
	})
}
