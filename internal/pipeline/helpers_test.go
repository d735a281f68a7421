package pipeline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func mustAmount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse amount %q: %v", s, err)
	}
	return d
}

func expense(t *testing.T, id, amount string, c model.Category, date string) model.Expense {
	t.Helper()
	return model.Expense{
		ID:       id,
		Title:    "expense " + id,
		Amount:   mustAmount(t, amount),
		Category: c,
		Date:     mustDate(t, date),
	}
}

func assertAmount(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(mustAmount(t, want)) {
		t.Fatalf("%s = %s, want %s", name, got, want)
	}
}

// refNow is a Wednesday.
func refNow(t *testing.T) time.Time {
	t.Helper()
	return mustDate(t, "2025-08-20").Add(15 * time.Hour)
}
