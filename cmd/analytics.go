package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/logging"
	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/pipeline"
)

var (
	analyticsCategories []string
	analyticsMonth      int
	analyticsYear       int
	analyticsLast6      bool
	analyticsQuick      string
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Category totals for a filtered selection",
	Long: "Filter expenses by categories and a month, year or the last six months,\n" +
		"then show each category's share of the selection and of all spending.",
	RunE: runAnalytics,
}

func init() {
	analyticsCmd.Flags().StringSliceVarP(&analyticsCategories, "category", "c", nil, "Include category (repeatable)")
	analyticsCmd.Flags().IntVarP(&analyticsMonth, "month", "m", 0, "Month of year 1-12 (0 = all)")
	analyticsCmd.Flags().IntVarP(&analyticsYear, "year", "y", 0, "Year (0 = all)")
	analyticsCmd.Flags().BoolVar(&analyticsLast6, "last6", false, "Rolling six months up to today")
	analyticsCmd.Flags().StringVar(&analyticsQuick, "quick", "", "Preset: last-month, last-6-months or this-year")
	rootCmd.AddCommand(analyticsCmd)
}

type analyticsReport struct {
	Period        string            `json:"period" yaml:"period"`
	Categories    []string          `json:"categories,omitempty" yaml:"categories,omitempty"`
	ActiveFilters int               `json:"active_filters" yaml:"active_filters"`
	Count         int               `json:"count" yaml:"count"`
	Total         string            `json:"total" yaml:"total"`
	AllTime       string            `json:"all_time" yaml:"all_time"`
	ByCategory    []cli.CategoryRow `json:"by_category" yaml:"by_category"`
}

// analyticsFilter turns the command flags into a filter relative to s.now.
func analyticsFilter(s *session) (pipeline.AnalyticsFilter, error) {
	var f pipeline.AnalyticsFilter

	switch {
	case analyticsQuick != "":
		if analyticsLast6 || analyticsMonth != 0 || analyticsYear != 0 {
			return f, fmt.Errorf("--quick cannot be combined with --month, --year or --last6")
		}
		q := pipeline.QuickFilter(analyticsQuick)
		known := false
		for _, k := range pipeline.QuickFilters {
			known = known || k == q
		}
		if !known {
			return f, fmt.Errorf("unknown quick filter %q", analyticsQuick)
		}
		f = q.Apply(s.now())
	case analyticsLast6:
		if analyticsMonth != 0 || analyticsYear != 0 {
			return f, fmt.Errorf("--last6 cannot be combined with --month or --year")
		}
		f.Period = pipeline.LastSixMonths()
	default:
		if analyticsMonth < 0 || analyticsMonth > 12 {
			return f, fmt.Errorf("--month %d: want 1-12", analyticsMonth)
		}
		if analyticsYear < 0 {
			return f, fmt.Errorf("--year %d: want a positive year", analyticsYear)
		}
		f.Period = pipeline.MonthYear(analyticsMonth, analyticsYear)
	}

	for _, name := range analyticsCategories {
		c, err := parseCategoryFlag(name)
		if err != nil {
			return f, err
		}
		if !selectedCategory(f, c) {
			f = f.ToggleCategory(c)
		}
	}
	return f, nil
}

// selectedCategory reports whether c is explicitly selected, unlike
// Includes which treats an empty selection as every category.
func selectedCategory(f pipeline.AnalyticsFilter, c model.Category) bool {
	for _, sel := range f.Categories {
		if sel == c {
			return true
		}
	}
	return false
}

func runAnalytics(_ *cobra.Command, _ []string) error {
	s, exps, err := loadExpenses("analytics")
	if err != nil {
		return err
	}
	defer s.Close()

	f, err := analyticsFilter(s)
	if err != nil {
		return err
	}

	now := s.now()
	selected := pipeline.FilterAnalytics(exps, f, now)
	totals := pipeline.CategoryTotals(selected)
	total := pipeline.Total(selected)
	allTime := pipeline.Total(exps)

	cats := make([]string, len(f.Categories))
	for i, c := range f.Categories {
		cats[i] = string(c)
	}
	report := analyticsReport{
		Period:        cli.FormatPeriod(f.Period),
		Categories:    cats,
		ActiveFilters: f.ActiveCount(),
		Count:         len(selected),
		Total:         total.StringFixed(2),
		AllTime:       allTime.StringFixed(2),
		ByCategory:    cli.CategoryRows(totals),
	}

	s.log.Debug().
		Int(logging.FieldCount, len(selected)).
		Str("period", report.Period).
		Msg("analytics filter applied")

	return emit(report, func() string {
		var b strings.Builder
		b.WriteString(header("ANALYTICS  " + cli.FormatPeriod(f.Period)))
		if len(totals) == 0 {
			b.WriteString("  No expenses match the selected filters.\n")
			return b.String()
		}
		b.WriteString(categoryTable(totals, total, s.cfg.General.Currency, allTime))

		desc := fmt.Sprintf("%d active filter(s)", f.ActiveCount())
		if len(cats) > 0 {
			desc += ", categories: " + strings.Join(cats, ", ")
		}
		if q := pipeline.ActiveQuickFilter(f, now); q != pipeline.QuickNone {
			desc += ", preset " + string(q)
		}
		b.WriteString(note(desc))
		return b.String()
	})
}
