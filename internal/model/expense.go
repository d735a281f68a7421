// Package model defines domain types for spent expenses and their aggregates.
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the civil date format used for input and display keys.
const DateLayout = "2006-01-02"

// Category is one of the fixed expense categories.
type Category string

// The closed set of categories, in display order.
const (
	FoodDining     Category = "Food & Dining"
	Transportation Category = "Transportation"
	Shopping       Category = "Shopping"
	Entertainment  Category = "Entertainment"
	BillsUtilities Category = "Bills & Utilities"
	Healthcare     Category = "Healthcare"
	Travel         Category = "Travel"
	Education      Category = "Education"
	OtherCategory  Category = "Other"
)

// Categories lists every known category in display order.
var Categories = []Category{
	FoodDining,
	Transportation,
	Shopping,
	Entertainment,
	BillsUtilities,
	Healthcare,
	Travel,
	Education,
	OtherCategory,
}

var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyAmount     = errors.New("amount is required")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidDate     = errors.New("invalid date")
)

// minDate is the earliest date the entry form accepts.
var minDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Index returns the display position of c, or -1 for unknown categories.
func (c Category) Index() int {
	for i, known := range Categories {
		if known == c {
			return i
		}
	}
	return -1
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrUnknownCategory
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// Expense is a single recorded transaction.
type Expense struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    Category        `json:"category" yaml:"category"`
	Date        time.Time       `json:"date" yaml:"date"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// DateString returns the expense date as YYYY-MM-DD.
func (e Expense) DateString() string {
	return e.Date.Format(DateLayout)
}

// ExpenseInput carries the raw field values of an add or edit submission.
type ExpenseInput struct {
	Title       string
	Amount      string
	Category    string
	Date        string // YYYY-MM-DD, empty means today
	Description string
}

// InputFrom returns the form values that reproduce e.
func InputFrom(e Expense) ExpenseInput {
	return ExpenseInput{
		Title:       e.Title,
		Amount:      e.Amount.StringFixed(2),
		Category:    string(e.Category),
		Date:        e.DateString(),
		Description: e.Description,
	}
}

// Build validates the input and returns the expense it describes.
// today bounds the accepted date range and fills an empty date.
func (in ExpenseInput) Build(id string, today time.Time) (Expense, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Expense{}, ErrEmptyTitle
	}

	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return Expense{}, err
	}

	category, err := ParseCategory(in.Category)
	if err != nil {
		return Expense{}, err
	}

	date, err := ResolveDate(in.Date, today)
	if err != nil {
		return Expense{}, err
	}

	return Expense{
		ID:          id,
		Title:       title,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: strings.TrimSpace(in.Description),
	}, nil
}

// ParseAmount parses a positive decimal amount, rounded to cents.
// A comma decimal separator is accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmptyAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	d = d.Round(2)
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParseDate parses a YYYY-MM-DD civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ResolveDate parses s, empty meaning today, and requires it to fall
// between 1900-01-01 and today inclusive.
func ResolveDate(s string, today time.Time) (time.Time, error) {
	today = DateOf(today)
	if strings.TrimSpace(s) == "" {
		return today, nil
	}
	date, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	if date.Before(minDate) || date.After(today) {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// DateOf returns the civil date of t (in t's location) as midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
