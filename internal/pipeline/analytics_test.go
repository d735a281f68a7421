package pipeline

import (
	"testing"

	"github.com/theirongolddev/spent/internal/model"
)

func ids(exps []model.Expense) map[string]bool {
	out := make(map[string]bool, len(exps))
	for _, e := range exps {
		out[e.ID] = true
	}
	return out
}

func TestFilterAnalyticsIsSubset(t *testing.T) {
	exps := periodFixture(t)
	all := ids(exps)
	now := refNow(t)

	filters := []AnalyticsFilter{
		{},
		{Categories: []model.Category{model.Shopping}},
		{Period: MonthYear(8, 0)},
		{Period: MonthYear(0, 2024)},
		{Period: MonthYear(2, 2025), Categories: []model.Category{model.Travel, model.Shopping}},
		{Period: LastSixMonths()},
		QuickLastMonth.Apply(now),
		QuickThisYear.Apply(now),
	}
	for i, f := range filters {
		got := FilterAnalytics(exps, f, now)
		if len(got) > len(exps) {
			t.Fatalf("filter %d returned %d > %d", i, len(got), len(exps))
		}
		for _, e := range got {
			if !all[e.ID] {
				t.Fatalf("filter %d returned unknown id %s", i, e.ID)
			}
			if !f.Includes(e.Category) || !f.Period.Matches(e.Date, now) {
				t.Fatalf("filter %d returned non-matching expense %s", i, e.ID)
			}
		}
	}
}

func TestFilterAnalyticsSelections(t *testing.T) {
	exps := periodFixture(t)
	now := refNow(t)

	cases := []struct {
		name string
		f    AnalyticsFilter
		want int
	}{
		{"all", AnalyticsFilter{}, 8},
		{"shopping", AnalyticsFilter{Categories: []model.Category{model.Shopping}}, 2},
		{"february 2025", AnalyticsFilter{Period: MonthYear(2, 2025)}, 2},
		{"any august", AnalyticsFilter{Period: MonthYear(8, 0)}, 4},
		{"year 2024", AnalyticsFilter{Period: MonthYear(0, 2024)}, 1},
		{"rolling", AnalyticsFilter{Period: LastSixMonths()}, 6},
		{"rolling shopping", AnalyticsFilter{Period: LastSixMonths(), Categories: []model.Category{model.Shopping}}, 1},
	}
	for _, tc := range cases {
		if got := FilterAnalytics(exps, tc.f, now); len(got) != tc.want {
			t.Fatalf("%s: len = %d, want %d", tc.name, len(got), tc.want)
		}
	}
}

func TestQuickFilters(t *testing.T) {
	now := refNow(t)
	withCats := AnalyticsFilter{Categories: []model.Category{model.Travel}}

	last := QuickLastMonth.Apply(now)
	if last.Period != MonthYear(7, 2025) || len(last.Categories) != 0 {
		t.Fatalf("QuickLastMonth = %+v", last)
	}
	if got := QuickThisYear.Apply(now); got.Period != MonthYear(0, 2025) {
		t.Fatalf("QuickThisYear period = %+v", got.Period)
	}
	if got := QuickLastSixMonths.Apply(now); got.Period.Kind != PeriodRollingSixMonths {
		t.Fatalf("QuickLastSixMonths kind = %v", got.Period.Kind)
	}
	if got := QuickNone.Apply(now); got.Period != AllTime() {
		t.Fatalf("QuickNone period = %+v", got.Period)
	}

	for _, q := range QuickFilters {
		if got := ActiveQuickFilter(q.Apply(now), now); got != q {
			t.Fatalf("ActiveQuickFilter(%s) = %q", q, got)
		}
	}
	if got := ActiveQuickFilter(withCats, now); got != QuickNone {
		t.Fatalf("ActiveQuickFilter with categories = %q, want none", got)
	}

	// January rolls back into the previous year.
	jan := mustDate(t, "2026-01-05")
	if got := QuickLastMonth.Apply(jan).Period; got != MonthYear(12, 2025) {
		t.Fatalf("QuickLastMonth in January = %+v", got)
	}
}

func TestActiveCount(t *testing.T) {
	cases := []struct {
		f    AnalyticsFilter
		want int
	}{
		{AnalyticsFilter{}, 0},
		{AnalyticsFilter{Categories: []model.Category{model.Travel}}, 1},
		{AnalyticsFilter{Categories: model.Categories}, 0},
		{AnalyticsFilter{Period: MonthYear(3, 0)}, 1},
		{AnalyticsFilter{Period: MonthYear(3, 2025), Categories: []model.Category{model.Travel}}, 3},
		{AnalyticsFilter{Period: LastSixMonths()}, 1},
	}
	for i, tc := range cases {
		if got := tc.f.ActiveCount(); got != tc.want {
			t.Fatalf("case %d: ActiveCount = %d, want %d", i, got, tc.want)
		}
	}
}

func TestToggleCategory(t *testing.T) {
	f := AnalyticsFilter{}
	f = f.ToggleCategory(model.Travel)
	f = f.ToggleCategory(model.Shopping)
	if len(f.Categories) != 2 {
		t.Fatalf("len = %d, want 2", len(f.Categories))
	}
	f = f.ToggleCategory(model.Travel)
	if len(f.Categories) != 1 || f.Categories[0] != model.Shopping {
		t.Fatalf("categories = %v, want [Shopping]", f.Categories)
	}
}

func TestPeriodTransitions(t *testing.T) {
	p := LastSixMonths().WithMonth(4)
	if p != MonthYear(4, 0) {
		t.Fatalf("rolling.WithMonth(4) = %+v", p)
	}
	p = p.WithYear(2025)
	if p != MonthYear(4, 2025) {
		t.Fatalf("WithYear(2025) = %+v", p)
	}
	if got := p.WithMonth(0).WithYear(0); got != AllTime() {
		t.Fatalf("clearing both = %+v, want AllTime", got)
	}
}

func TestAvailableMonthsAndYears(t *testing.T) {
	exps := periodFixture(t)
	months := AvailableMonths(exps)
	wantMonths := []int{2, 7, 8, 12}
	if len(months) != len(wantMonths) {
		t.Fatalf("months = %v, want %v", months, wantMonths)
	}
	for i := range wantMonths {
		if months[i] != wantMonths[i] {
			t.Fatalf("months = %v, want %v", months, wantMonths)
		}
	}
	years := AvailableYears(exps)
	if len(years) != 2 || years[0] != 2025 || years[1] != 2024 {
		t.Fatalf("years = %v, want [2025 2024]", years)
	}
}
