// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/pipeline"
)

// FormatMoney formats an amount with thousands separators and two decimals.
// e.g., 1234.5 -> "$1,234.50"
func FormatMoney(d decimal.Decimal, symbol string) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return symbol + s
	}

	out := symbol + humanize.Comma(n) + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatCount adds comma separators to a count.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatPercent formats a 0-100 percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate formats a civil date as "Aug 15, 2025".
func FormatDate(d time.Time) string {
	return d.Format("Jan 2, 2006")
}

// FormatAge describes how long before today a civil date is. Both
// arguments are reduced to their civil dates first.
func FormatAge(d, today time.Time) string {
	d, today = model.DateOf(d), model.DateOf(today)
	days := int(today.Sub(d).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "yesterday"
	default:
		return humanize.RelTime(d, today, "ago", "from now")
	}
}

// FormatMonthKey turns "2025-08" into "August 2025". Bad keys are returned unchanged.
func FormatMonthKey(key string) string {
	t, err := pipeline.ParseMonthKey(key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}

// FormatMonth returns the month name, or "All months" for 0.
func FormatMonth(m int) string {
	if m < 1 || m > 12 {
		return "All months"
	}
	return time.Month(m).String()
}

// FormatYear returns the year, or "All years" for 0.
func FormatYear(y int) string {
	if y == 0 {
		return "All years"
	}
	return strconv.Itoa(y)
}

// FormatPeriod describes an analytics period selection.
func FormatPeriod(p pipeline.Period) string {
	switch p.Kind {
	case pipeline.PeriodRollingSixMonths:
		return "Last 6 months"
	case pipeline.PeriodMonthYear:
		switch {
		case p.Month != 0 && p.Year != 0:
			return fmt.Sprintf("%s %d", time.Month(p.Month), p.Year)
		case p.Month != 0:
			return FormatMonth(p.Month) + ", any year"
		default:
			return FormatYear(p.Year)
		}
	default:
		return "All time"
	}
}
