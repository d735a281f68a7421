package pipeline

import (
	"sort"
	"time"

	"github.com/theirongolddev/spent/internal/model"
)

// PeriodKind selects how the analytics view restricts dates.
type PeriodKind int

const (
	PeriodAll              PeriodKind = iota // no date restriction
	PeriodMonthYear                          // optional month and/or year equality
	PeriodRollingSixMonths                   // [today - 6 months, today]
)

// Period is the time selection of the analytics view. Month and Year are
// only meaningful for PeriodMonthYear, where 0 means "all".
type Period struct {
	Kind  PeriodKind
	Month int // 1-12
	Year  int
}

// AllTime selects every date.
func AllTime() Period { return Period{Kind: PeriodAll} }

// MonthYear selects a month-of-year and/or a year; 0 leaves a field open.
// MonthYear(0, 0) is the same selection as AllTime.
func MonthYear(month, year int) Period {
	if month == 0 && year == 0 {
		return AllTime()
	}
	return Period{Kind: PeriodMonthYear, Month: month, Year: year}
}

// LastSixMonths selects the rolling six-month window.
func LastSixMonths() Period { return Period{Kind: PeriodRollingSixMonths} }

// WithMonth returns the period with its month replaced. Leaving the
// rolling window for an explicit month drops the rolling selection.
func (p Period) WithMonth(month int) Period {
	year := 0
	if p.Kind == PeriodMonthYear {
		year = p.Year
	}
	return MonthYear(month, year)
}

// WithYear returns the period with its year replaced.
func (p Period) WithYear(year int) Period {
	month := 0
	if p.Kind == PeriodMonthYear {
		month = p.Month
	}
	return MonthYear(month, year)
}

// Matches reports whether the civil date d passes the period relative to now.
func (p Period) Matches(d, now time.Time) bool {
	switch p.Kind {
	case PeriodRollingSixMonths:
		return RollingSixMonths(now).Contains(d)
	case PeriodMonthYear:
		if p.Month != 0 && int(d.Month()) != p.Month {
			return false
		}
		if p.Year != 0 && d.Year() != p.Year {
			return false
		}
		return true
	default:
		return true
	}
}

// AnalyticsFilter combines a category selection with a period.
// An empty category set means every category.
type AnalyticsFilter struct {
	Categories []model.Category
	Period     Period
}

// Includes reports whether c passes the category selection.
func (f AnalyticsFilter) Includes(c model.Category) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, sel := range f.Categories {
		if sel == c {
			return true
		}
	}
	return false
}

// ToggleCategory adds c to the selection, or removes it if already present.
func (f AnalyticsFilter) ToggleCategory(c model.Category) AnalyticsFilter {
	out := make([]model.Category, 0, len(f.Categories)+1)
	found := false
	for _, sel := range f.Categories {
		if sel == c {
			found = true
			continue
		}
		out = append(out, sel)
	}
	if !found {
		out = append(out, c)
	}
	f.Categories = out
	return f
}

// ActiveCount returns how many selections narrow the view: a partial
// category set, a month and a year. The rolling window counts as one.
func (f AnalyticsFilter) ActiveCount() int {
	n := 0
	if len(f.Categories) > 0 && len(f.Categories) < len(model.Categories) {
		n++
	}
	switch f.Period.Kind {
	case PeriodMonthYear:
		if f.Period.Month != 0 {
			n++
		}
		if f.Period.Year != 0 {
			n++
		}
	case PeriodRollingSixMonths:
		n++
	}
	return n
}

// FilterAnalytics returns the expenses passing both the category
// selection and the period. The result is always a subset of expenses.
func FilterAnalytics(expenses []model.Expense, f AnalyticsFilter, now time.Time) []model.Expense {
	var result []model.Expense
	for _, e := range expenses {
		if f.Includes(e.Category) && f.Period.Matches(e.Date, now) {
			result = append(result, e)
		}
	}
	return result
}

// QuickFilter is a one-key analytics preset.
type QuickFilter string

const (
	QuickNone          QuickFilter = ""
	QuickLastMonth     QuickFilter = "last-month"
	QuickLastSixMonths QuickFilter = "last-6-months"
	QuickThisYear      QuickFilter = "this-year"
)

// QuickFilters lists the presets in menu order.
var QuickFilters = []QuickFilter{QuickLastMonth, QuickLastSixMonths, QuickThisYear}

// Apply returns the filter the preset selects. Presets clear the category selection.
func (q QuickFilter) Apply(now time.Time) AnalyticsFilter {
	switch q {
	case QuickLastMonth:
		prev := PreviousMonth(now)
		return AnalyticsFilter{Period: MonthYear(int(prev.Month()), prev.Year())}
	case QuickLastSixMonths:
		return AnalyticsFilter{Period: LastSixMonths()}
	case QuickThisYear:
		return AnalyticsFilter{Period: MonthYear(0, now.Year())}
	default:
		return AnalyticsFilter{Period: AllTime()}
	}
}

// ActiveQuickFilter reports which preset, if any, f currently equals.
func ActiveQuickFilter(f AnalyticsFilter, now time.Time) QuickFilter {
	if len(f.Categories) != 0 {
		return QuickNone
	}
	for _, q := range QuickFilters {
		if q.Apply(now).Period == f.Period {
			return q
		}
	}
	return QuickNone
}

// AvailableMonths returns the distinct months-of-year (1-12) present, ascending.
func AvailableMonths(expenses []model.Expense) []int {
	seen := make(map[int]struct{})
	for _, e := range expenses {
		seen[int(e.Date.Month())] = struct{}{}
	}
	months := make([]int, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Ints(months)
	return months
}

// AvailableYears returns the distinct years present, newest first.
func AvailableYears(expenses []model.Expense) []int {
	seen := make(map[int]struct{})
	for _, e := range expenses {
		seen[e.Date.Year()] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
