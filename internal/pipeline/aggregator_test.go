package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/model"
)

func TestCategoryTotalsWorkedExample(t *testing.T) {
	exps := []model.Expense{
		expense(t, "1", "85.50", model.FoodDining, "2025-08-15"),
		expense(t, "2", "45.00", model.Transportation, "2025-08-14"),
	}

	assertAmount(t, "Total", Total(exps), "130.50")

	totals := CategoryTotals(exps)
	if len(totals) != 2 {
		t.Fatalf("len(totals) = %d, want 2", len(totals))
	}
	if totals[0].Category != model.FoodDining || totals[1].Category != model.Transportation {
		t.Fatalf("order = [%s, %s], want [Food & Dining, Transportation]", totals[0].Category, totals[1].Category)
	}
	assertAmount(t, "food", totals[0].Amount, "85.50")
	assertAmount(t, "transport", totals[1].Amount, "45")
	if math.Abs(totals[0].Percent+totals[1].Percent-100) > 1e-9 {
		t.Fatalf("percent sum = %.6f, want 100", totals[0].Percent+totals[1].Percent)
	}
	if math.Abs(totals[0].Percent-65.517241) > 1e-5 {
		t.Fatalf("food percent = %.6f, want 65.517241", totals[0].Percent)
	}
}

func TestCategoryTotalsConservesTotal(t *testing.T) {
	exps := []model.Expense{
		expense(t, "1", "10.10", model.Shopping, "2025-08-01"),
		expense(t, "2", "0.20", model.Shopping, "2025-07-01"),
		expense(t, "3", "99.99", model.Travel, "2025-06-01"),
		expense(t, "4", "3.33", model.Education, "2024-01-01"),
		expense(t, "5", "3.34", model.OtherCategory, "2023-01-01"),
	}

	sum := decimal.Zero
	count := 0
	for _, ct := range CategoryTotals(exps) {
		sum = sum.Add(ct.Amount)
		count += ct.Count
	}
	if !sum.Equal(Total(exps)) {
		t.Fatalf("sum of category totals = %s, want %s", sum, Total(exps))
	}
	if count != len(exps) {
		t.Fatalf("count = %d, want %d", count, len(exps))
	}
}

func TestCategoryTotalsTieOrder(t *testing.T) {
	exps := []model.Expense{
		expense(t, "1", "10", model.Shopping, "2025-08-01"),
		expense(t, "2", "10", model.FoodDining, "2025-08-02"),
		expense(t, "3", "25", model.Healthcare, "2025-08-03"),
	}
	totals := CategoryTotals(exps)
	want := []model.Category{model.Healthcare, model.FoodDining, model.Shopping}
	for i, c := range want {
		if totals[i].Category != c {
			t.Fatalf("totals[%d] = %s, want %s", i, totals[i].Category, c)
		}
	}
}

func TestCategoryTotalsEmpty(t *testing.T) {
	if got := CategoryTotals(nil); len(got) != 0 {
		t.Fatalf("CategoryTotals(nil) = %v, want empty", got)
	}
	assertAmount(t, "Total(nil)", Total(nil), "0")
}

func TestPercent(t *testing.T) {
	if got := Percent(mustAmount(t, "5"), decimal.Zero); got != 0 {
		t.Fatalf("Percent(5, 0) = %f, want 0", got)
	}
	if got := Percent(decimal.Zero, decimal.Zero); got != 0 {
		t.Fatalf("Percent(0, 0) = %f, want 0", got)
	}
	if got := Percent(mustAmount(t, "25"), mustAmount(t, "200")); math.Abs(got-12.5) > 1e-9 {
		t.Fatalf("Percent(25, 200) = %f, want 12.5", got)
	}
}

func periodFixture(t *testing.T) []model.Expense {
	t.Helper()
	return []model.Expense{
		expense(t, "1", "10", model.FoodDining, "2025-08-20"),
		expense(t, "2", "20", model.Shopping, "2025-08-17"),
		expense(t, "3", "5", model.Entertainment, "2025-08-16"),
		expense(t, "4", "1", model.OtherCategory, "2025-08-01"),
		expense(t, "5", "100", model.BillsUtilities, "2025-07-31"),
		expense(t, "6", "1000", model.Travel, "2025-02-20"),
		expense(t, "7", "2000", model.Shopping, "2025-02-19"),
		expense(t, "8", "7", model.Healthcare, "2024-12-31"),
	}
}

func TestPeriodTotals(t *testing.T) {
	got := PeriodTotals(periodFixture(t), refNow(t), time.Sunday)

	assertAmount(t, "Today", got.Today, "10")
	assertAmount(t, "ThisWeek", got.ThisWeek, "30")
	assertAmount(t, "ThisMonth", got.ThisMonth, "36")
	assertAmount(t, "LastMonth", got.LastMonth, "100")
	assertAmount(t, "LastSixMonths", got.LastSixMonths, "1136")
	assertAmount(t, "ThisYear", got.ThisYear, "3136")
	assertAmount(t, "AllTime", got.AllTime, "3143")
	assertAmount(t, "DailyAverage", got.DailyAverage, "1.16")
}

func TestPeriodTotalsMondayWeek(t *testing.T) {
	got := PeriodTotals(periodFixture(t), refNow(t), time.Monday)
	assertAmount(t, "ThisWeek", got.ThisWeek, "10")
}

func TestPeriodTotalsEmpty(t *testing.T) {
	got := PeriodTotals(nil, refNow(t), time.Sunday)
	assertAmount(t, "AllTime", got.AllTime, "0")
	assertAmount(t, "DailyAverage", got.DailyAverage, "0")
}
