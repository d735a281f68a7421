package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/pipeline"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "$0.00",
		"8.75":      "$8.75",
		"85.5":      "$85.50",
		"1200":      "$1,200.00",
		"3376.73":   "$3,376.73",
		"1234567.8": "$1,234,567.80",
		"-45":       "-$45.00",
	}
	for in, want := range cases {
		if got := FormatMoney(decimal.RequireFromString(in), "$"); got != want {
			t.Fatalf("FormatMoney(%s) = %q, want %q", in, got, want)
		}
	}
	if got := FormatMoney(decimal.RequireFromString("9.5"), "EUR "); got != "EUR 9.50" {
		t.Fatalf("custom symbol = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(65.517); got != "65.5%" {
		t.Fatalf("FormatPercent = %q", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Fatalf("FormatPercent(0) = %q", got)
	}
}

func TestFormatMonthKey(t *testing.T) {
	if got := FormatMonthKey("2025-08"); got != "August 2025" {
		t.Fatalf("FormatMonthKey = %q", got)
	}
	if got := FormatMonthKey("bogus"); got != "bogus" {
		t.Fatalf("FormatMonthKey(bogus) = %q", got)
	}
}

func TestFormatPeriod(t *testing.T) {
	cases := []struct {
		p    pipeline.Period
		want string
	}{
		{pipeline.AllTime(), "All time"},
		{pipeline.LastSixMonths(), "Last 6 months"},
		{pipeline.MonthYear(7, 2025), "July 2025"},
		{pipeline.MonthYear(3, 0), "March, any year"},
		{pipeline.MonthYear(0, 2024), "2024"},
	}
	for _, tc := range cases {
		if got := FormatPeriod(tc.p); got != tc.want {
			t.Fatalf("FormatPeriod(%+v) = %q, want %q", tc.p, got, tc.want)
		}
	}
}

func TestFormatAge(t *testing.T) {
	today := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	if got := FormatAge(today, today); got != "today" {
		t.Fatalf("same day = %q", got)
	}
	if got := FormatAge(today.AddDate(0, 0, -1), today); got != "yesterday" {
		t.Fatalf("one day = %q", got)
	}
	if got := FormatAge(today.AddDate(0, 0, -3), today); got != "3 days ago" {
		t.Fatalf("three days = %q", got)
	}

	// Wall-clock moments outside UTC still compare by civil date.
	east := time.Date(2025, 8, 20, 1, 0, 0, 0, time.FixedZone("AEST", 10*3600))
	if got := FormatAge(today.AddDate(0, 0, -1), east); got != "yesterday" {
		t.Fatalf("east of UTC after midnight = %q, want yesterday", got)
	}
	west := time.Date(2025, 8, 20, 23, 0, 0, 0, time.FixedZone("PDT", -7*3600))
	if got := FormatAge(today, west); got != "today" {
		t.Fatalf("west of UTC late evening = %q, want today", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "Aug 15, 2025" {
		t.Fatalf("FormatDate = %q", got)
	}
}
