package model

import "github.com/shopspring/decimal"

// CategoryTotal holds the summed amount for one category.
type CategoryTotal struct {
	Category Category        `json:"category" yaml:"category"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Count    int             `json:"count" yaml:"count"`
	Percent  float64         `json:"percent" yaml:"percent"` // share of the grouped total
}

// PeriodTotals holds the rolling-window totals computed against one reference moment.
type PeriodTotals struct {
	Today         decimal.Decimal `json:"today" yaml:"today"`
	ThisWeek      decimal.Decimal `json:"this_week" yaml:"this_week"`
	ThisMonth     decimal.Decimal `json:"this_month" yaml:"this_month"`
	LastMonth     decimal.Decimal `json:"last_month" yaml:"last_month"`
	LastSixMonths decimal.Decimal `json:"last_six_months" yaml:"last_six_months"`
	ThisYear      decimal.Decimal `json:"this_year" yaml:"this_year"`
	AllTime       decimal.Decimal `json:"all_time" yaml:"all_time"`
	DailyAverage  decimal.Decimal `json:"daily_average" yaml:"daily_average"` // this month / days in month
}

// MonthBucket is the set of expenses belonging to one past calendar month.
type MonthBucket struct {
	Key      string          `json:"key" yaml:"key"` // YYYY-MM
	Expenses []Expense       `json:"expenses" yaml:"expenses"`
	Total    decimal.Decimal `json:"total" yaml:"total"`
}
