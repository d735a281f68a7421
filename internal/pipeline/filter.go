package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/theirongolddev/spent/internal/model"
)

// FilterCurrentMonth returns expenses dated in the same calendar month and year as now.
func FilterCurrentMonth(expenses []model.Expense, now time.Time) []model.Expense {
	today := model.DateOf(now)
	var result []model.Expense
	for _, e := range expenses {
		if sameMonth(e.Date, today) {
			result = append(result, e)
		}
	}
	return result
}

// FilterSearch keeps expenses whose title or description contains term
// (case-insensitive) and whose category equals category. An empty term
// or category matches everything.
func FilterSearch(expenses []model.Expense, term string, category model.Category) []model.Expense {
	var result []model.Expense
	for _, e := range expenses {
		matchesSearch := term == "" ||
			containsIgnoreCase(e.Title, term) ||
			containsIgnoreCase(e.Description, term)
		matchesCategory := category == "" || e.Category == category
		if matchesSearch && matchesCategory {
			result = append(result, e)
		}
	}
	return result
}

// SortByDateDesc returns a copy of expenses ordered newest date first.
// Expenses sharing a date keep their store order.
func SortByDateDesc(expenses []model.Expense) []model.Expense {
	sorted := make([]model.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
