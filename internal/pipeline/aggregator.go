// Package pipeline derives filtered views, totals and groupings from the expense list.
//
// Every function is pure: inputs are never mutated and the reference
// moment is always passed in, so the caller recomputes everything from
// scratch after each store change.
package pipeline

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Total sums the amounts of expenses.
func Total(expenses []model.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// CategoryTotals groups expenses by category and sums their amounts,
// sorted by total descending. Equal totals keep the fixed category order.
// Percent on each entry is its share of the grouped total.
func CategoryTotals(expenses []model.Expense) []model.CategoryTotal {
	catMap := make(map[model.Category]*model.CategoryTotal)
	grand := decimal.Zero

	for _, e := range expenses {
		ct, ok := catMap[e.Category]
		if !ok {
			ct = &model.CategoryTotal{Category: e.Category, Amount: decimal.Zero}
			catMap[e.Category] = ct
		}
		ct.Amount = ct.Amount.Add(e.Amount)
		ct.Count++
		grand = grand.Add(e.Amount)
	}

	totals := make([]model.CategoryTotal, 0, len(catMap))
	for _, ct := range catMap {
		ct.Percent = Percent(ct.Amount, grand)
		totals = append(totals, *ct)
	}
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Amount.Cmp(totals[j].Amount); c != 0 {
			return c > 0
		}
		return categoryRank(totals[i].Category) < categoryRank(totals[j].Category)
	})

	return totals
}

// categoryRank places unknown categories after the fixed set.
func categoryRank(c model.Category) int {
	if i := c.Index(); i >= 0 {
		return i
	}
	return len(model.Categories)
}

// Percent returns amount / denominator * 100. A zero denominator yields 0.
func Percent(amount, denominator decimal.Decimal) float64 {
	if denominator.IsZero() {
		return 0
	}
	pct, _ := amount.Div(denominator).Mul(hundred).Float64()
	return pct
}

// PeriodTotals computes the rolling-window totals relative to now.
// Each window is an independent filter and sum over the full list.
func PeriodTotals(expenses []model.Expense, now time.Time, weekStart time.Weekday) model.PeriodTotals {
	today := model.DateOf(now)

	todayW := TodayWindow(now)
	weekW := WeekWindow(now, weekStart)
	monthW := MonthWindow(today)
	lastMonthW := MonthWindow(PreviousMonth(now))
	sixW := RollingSixMonths(now)
	yearW := YearWindow(now)

	totals := model.PeriodTotals{
		Today:         decimal.Zero,
		ThisWeek:      decimal.Zero,
		ThisMonth:     decimal.Zero,
		LastMonth:     decimal.Zero,
		LastSixMonths: decimal.Zero,
		ThisYear:      decimal.Zero,
		AllTime:       decimal.Zero,
	}

	for _, e := range expenses {
		d := e.Date
		if todayW.Contains(d) {
			totals.Today = totals.Today.Add(e.Amount)
		}
		if weekW.Contains(d) {
			totals.ThisWeek = totals.ThisWeek.Add(e.Amount)
		}
		if monthW.Contains(d) {
			totals.ThisMonth = totals.ThisMonth.Add(e.Amount)
		}
		if lastMonthW.Contains(d) {
			totals.LastMonth = totals.LastMonth.Add(e.Amount)
		}
		if sixW.Contains(d) {
			totals.LastSixMonths = totals.LastSixMonths.Add(e.Amount)
		}
		if yearW.Contains(d) {
			totals.ThisYear = totals.ThisYear.Add(e.Amount)
		}
		totals.AllTime = totals.AllTime.Add(e.Amount)
	}

	days := decimal.NewFromInt(int64(DaysInMonth(today)))
	totals.DailyAverage = totals.ThisMonth.DivRound(days, 2)

	return totals
}
