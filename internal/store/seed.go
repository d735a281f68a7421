package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/logging"
	"github.com/theirongolddev/spent/internal/model"
)

type sample struct {
	id, title, amount string
	category          model.Category
	date, desc        string
}

var samples = []sample{
	{"1", "Grocery Shopping", "85.50", model.FoodDining, "2025-08-15", "Weekly grocery shopping"},
	{"2", "Gas Station", "45.00", model.Transportation, "2025-08-14", "Fuel for car"},
	{"3", "Netflix Subscription", "15.99", model.Entertainment, "2025-08-13", "Monthly subscription"},
	{"4", "Coffee Shop", "8.75", model.FoodDining, "2025-08-12", "Morning coffee"},
	{"5", "Phone Bill", "65.00", model.BillsUtilities, "2025-08-11", "Monthly phone bill"},
	{"6", "Uber Ride", "18.50", model.Transportation, "2025-08-10", "Trip to downtown"},
	{"7", "Movie Tickets", "24.00", model.Entertainment, "2025-08-09", "Date night"},
	{"8", "New Shoes", "120.00", model.Shopping, "2025-08-08", "Running shoes"},
	{"9", "Rent Payment", "1200.00", model.BillsUtilities, "2025-07-01", "Monthly rent"},
	{"10", "Grocery Shopping", "95.00", model.FoodDining, "2025-07-15", "Monthly groceries"},
	{"11", "Vacation Flight", "450.00", model.Travel, "2025-06-20", "Summer vacation"},
	{"12", "Doctor Visit", "120.00", model.Healthcare, "2025-05-15", "Annual checkup"},
	{"13", "New Laptop", "899.00", model.Shopping, "2025-03-10", "Work laptop"},
	{"14", "Online Course", "79.99", model.Education, "2025-02-05", "Programming course"},
	{"15", "Car Insurance", "150.00", model.BillsUtilities, "2025-01-15", "6-month premium"},
}

// SampleExpenses returns the fixed demo list in display order.
func SampleExpenses() []model.Expense {
	out := make([]model.Expense, len(samples))
	for i, s := range samples {
		date, _ := time.Parse(model.DateLayout, s.date)
		out[i] = model.Expense{
			ID:          s.id,
			Title:       s.title,
			Amount:      decimal.RequireFromString(s.amount),
			Category:    s.category,
			Date:        date,
			Description: s.desc,
		}
	}
	return out
}

// Seed loads the sample list into s, keeping its display order.
func Seed(s *Store) error {
	exps := SampleExpenses()
	for i := len(exps) - 1; i >= 0; i-- {
		if err := s.Import(exps[i]); err != nil {
			return err
		}
	}
	s.log.Debug().Int(logging.FieldCount, len(exps)).Msg("seeded sample expenses")
	return nil
}
