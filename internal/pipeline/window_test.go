package pipeline

import (
	"testing"
	"time"
)

func TestAddMonthsClamps(t *testing.T) {
	cases := []struct {
		from string
		n    int
		want string
	}{
		{"2025-08-20", -6, "2025-02-20"},
		{"2025-08-31", -6, "2025-02-28"},
		{"2024-08-31", -6, "2024-02-29"},
		{"2025-01-15", -1, "2024-12-15"},
		{"2025-03-31", -1, "2025-02-28"},
		{"2025-10-31", 1, "2025-11-30"},
	}
	for _, tc := range cases {
		got := AddMonths(mustDate(t, tc.from), tc.n)
		if !got.Equal(mustDate(t, tc.want)) {
			t.Fatalf("AddMonths(%s, %d) = %s, want %s", tc.from, tc.n, got.Format("2006-01-02"), tc.want)
		}
	}
}

func TestRollingSixMonthsInclusive(t *testing.T) {
	w := RollingSixMonths(refNow(t))
	cases := map[string]bool{
		"2025-02-19": false,
		"2025-02-20": true,
		"2025-05-01": true,
		"2025-08-20": true,
		"2025-08-21": false,
	}
	for d, want := range cases {
		if got := w.Contains(mustDate(t, d)); got != want {
			t.Fatalf("Contains(%s) = %v, want %v", d, got, want)
		}
	}
}

func TestWeekWindow(t *testing.T) {
	now := refNow(t)
	cases := []struct {
		start time.Weekday
		from  string
	}{
		{time.Sunday, "2025-08-17"},
		{time.Monday, "2025-08-18"},
		{time.Wednesday, "2025-08-20"},
		{time.Thursday, "2025-08-14"},
	}
	for _, tc := range cases {
		w := WeekWindow(now, tc.start)
		if !w.From.Equal(mustDate(t, tc.from)) {
			t.Fatalf("WeekWindow(%s).From = %s, want %s", tc.start, w.From.Format("2006-01-02"), tc.from)
		}
		if !w.To.Equal(mustDate(t, "2025-08-20")) {
			t.Fatalf("WeekWindow(%s).To = %s, want 2025-08-20", tc.start, w.To.Format("2006-01-02"))
		}
	}
}

func TestPreviousMonthAcrossYear(t *testing.T) {
	got := PreviousMonth(mustDate(t, "2025-01-10"))
	if !got.Equal(mustDate(t, "2024-12-01")) {
		t.Fatalf("PreviousMonth = %s, want 2024-12-01", got.Format("2006-01-02"))
	}
	if n := DaysInMonth(mustDate(t, "2024-02-10")); n != 29 {
		t.Fatalf("DaysInMonth(2024-02) = %d, want 29", n)
	}
}
