package cmd

import (
	"testing"
	"time"

	"github.com/theirongolddev/spent/internal/model"
	"github.com/theirongolddev/spent/internal/pipeline"
)

func resetAnalyticsFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		analyticsCategories = nil
		analyticsMonth = 0
		analyticsYear = 0
		analyticsLast6 = false
		analyticsQuick = ""
	})
}

func testSession() *session {
	return &session{now: func() time.Time {
		return time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)
	}}
}

func TestAnalyticsFilterQuick(t *testing.T) {
	resetAnalyticsFlags(t)
	analyticsQuick = string(pipeline.QuickLastMonth)
	analyticsCategories = []string{"travel", "Travel"}

	f, err := analyticsFilter(testSession())
	if err != nil {
		t.Fatalf("analyticsFilter: %v", err)
	}
	want := pipeline.MonthYear(7, 2025)
	if f.Period != want {
		t.Fatalf("period = %+v, want %+v", f.Period, want)
	}
	if len(f.Categories) != 1 || f.Categories[0] != model.Travel {
		t.Fatalf("categories = %v, want [Travel]", f.Categories)
	}
}

func TestAnalyticsFilterMonthYear(t *testing.T) {
	resetAnalyticsFlags(t)
	analyticsMonth = 3

	f, err := analyticsFilter(testSession())
	if err != nil {
		t.Fatalf("analyticsFilter: %v", err)
	}
	if f.Period.Kind != pipeline.PeriodMonthYear || f.Period.Month != 3 || f.Period.Year != 0 {
		t.Fatalf("period = %+v", f.Period)
	}
	if n := f.ActiveCount(); n != 1 {
		t.Fatalf("ActiveCount = %d, want 1", n)
	}
}

func TestAnalyticsFilterRejects(t *testing.T) {
	cases := []struct {
		name string
		set  func()
	}{
		{"quick with month", func() { analyticsQuick = "this-year"; analyticsMonth = 2 }},
		{"unknown quick", func() { analyticsQuick = "yesterday" }},
		{"last6 with year", func() { analyticsLast6 = true; analyticsYear = 2024 }},
		{"month out of range", func() { analyticsMonth = 13 }},
		{"unknown category", func() { analyticsCategories = []string{"Groceries"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resetAnalyticsFlags(t)
			tc.set()
			if _, err := analyticsFilter(testSession()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
