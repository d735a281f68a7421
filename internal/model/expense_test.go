package model

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		err error
	}{
		{"85.50", "85.5", nil},
		{"45", "45", nil},
		{" 12,34 ", "12.34", nil},
		{"1.005", "1.01", nil},
		{"", "", ErrEmptyAmount},
		{"abc", "", ErrInvalidAmount},
		{"NaN", "", ErrInvalidAmount},
		{"-3", "", ErrInvalidAmount},
		{"0", "", ErrInvalidAmount},
		{"0.001", "", ErrInvalidAmount},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Fatalf("ParseAmount(%q) err = %v, want %v", tc.in, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
		}
		if got.String() != tc.out {
			t.Fatalf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.out)
		}
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("food & dining")
	if err != nil || c != FoodDining {
		t.Fatalf("ParseCategory = %q, %v; want %q", c, err, FoodDining)
	}
	if _, err := ParseCategory("Groceries"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("unknown category err = %v", err)
	}
	if len(Categories) != 9 {
		t.Fatalf("len(Categories) = %d, want 9", len(Categories))
	}
	if !OtherCategory.Valid() || Category("Misc").Valid() {
		t.Fatal("Valid() does not match the fixed set")
	}
}

func TestExpenseInputBuild(t *testing.T) {
	today := time.Date(2025, time.August, 20, 18, 30, 0, 0, time.Local)

	e, err := ExpenseInput{
		Title:       "  Grocery Shopping ",
		Amount:      "85.50",
		Category:    "Food & Dining",
		Date:        "2025-08-15",
		Description: "Weekly grocery shopping",
	}.Build("1", today)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if e.ID != "1" || e.Title != "Grocery Shopping" || e.Category != FoodDining {
		t.Fatalf("unexpected expense: %+v", e)
	}
	if !e.Date.Equal(mustDate(t, "2025-08-15")) {
		t.Fatalf("Date = %v", e.Date)
	}

	e, err = ExpenseInput{Title: "Coffee", Amount: "3", Category: "Other"}.Build("2", today)
	if err != nil {
		t.Fatalf("Build with empty date: %v", err)
	}
	if e.DateString() != "2025-08-20" {
		t.Fatalf("empty date should default to today, got %s", e.DateString())
	}
}

func TestExpenseInputBuildRejects(t *testing.T) {
	today := time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)
	valid := ExpenseInput{Title: "x", Amount: "1", Category: "Travel", Date: "2025-08-01"}

	cases := []struct {
		name string
		mod  func(in *ExpenseInput)
		want error
	}{
		{"missing title", func(in *ExpenseInput) { in.Title = " " }, ErrEmptyTitle},
		{"missing amount", func(in *ExpenseInput) { in.Amount = "" }, ErrEmptyAmount},
		{"malformed amount", func(in *ExpenseInput) { in.Amount = "12abc" }, ErrInvalidAmount},
		{"missing category", func(in *ExpenseInput) { in.Category = "" }, ErrUnknownCategory},
		{"future date", func(in *ExpenseInput) { in.Date = "2025-08-21" }, ErrInvalidDate},
		{"ancient date", func(in *ExpenseInput) { in.Date = "1899-12-31" }, ErrInvalidDate},
		{"bad date", func(in *ExpenseInput) { in.Date = "15/08/2025" }, ErrInvalidDate},
	}
	for _, tc := range cases {
		in := valid
		tc.mod(&in)
		if _, err := in.Build("id", today); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestInputFromRoundTrip(t *testing.T) {
	today := time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)
	orig, err := ExpenseInput{Title: "Phone Bill", Amount: "65", Category: "Bills & Utilities", Date: "2025-08-11"}.Build("5", today)
	if err != nil {
		t.Fatal(err)
	}
	in := InputFrom(orig)
	if in.Amount != "65.00" {
		t.Fatalf("Amount = %q, want 65.00", in.Amount)
	}
	again, err := in.Build(orig.ID, today)
	if err != nil {
		t.Fatal(err)
	}
	if !again.Amount.Equal(orig.Amount) || !again.Date.Equal(orig.Date) || again.Category != orig.Category {
		t.Fatalf("round trip mismatch: %+v vs %+v", again, orig)
	}
}
