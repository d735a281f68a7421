package pipeline

import (
	"time"

	"github.com/theirongolddev/spent/internal/model"
)

// Window is an inclusive range of civil dates.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether the civil date d falls inside the window.
func (w Window) Contains(d time.Time) bool {
	return !d.Before(w.From) && !d.After(w.To)
}

// TodayWindow covers only the civil date of now.
func TodayWindow(now time.Time) Window {
	today := model.DateOf(now)
	return Window{From: today, To: today}
}

// WeekWindow covers the start of the current week through today.
func WeekWindow(now time.Time, weekStart time.Weekday) Window {
	today := model.DateOf(now)
	back := (int(today.Weekday()) - int(weekStart) + 7) % 7
	return Window{From: today.AddDate(0, 0, -back), To: today}
}

// MonthWindow covers the whole calendar month containing d.
func MonthWindow(d time.Time) Window {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{From: first, To: first.AddDate(0, 1, -1)}
}

// RollingSixMonths covers [today - 6 calendar months, today], both ends inclusive.
func RollingSixMonths(now time.Time) Window {
	today := model.DateOf(now)
	return Window{From: AddMonths(today, -6), To: today}
}

// YearWindow covers the whole calendar year containing now.
func YearWindow(now time.Time) Window {
	y := model.DateOf(now).Year()
	return Window{
		From: time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// AddMonths shifts d by n calendar months, clamping the day to the
// length of the target month (Aug 31 - 6 months = Feb 28).
func AddMonths(d time.Time, n int) time.Time {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	last := first.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the month containing d.
func DaysInMonth(d time.Time) int {
	return MonthWindow(d).To.Day()
}

// sameMonth reports whether a and b share calendar year and month.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// PreviousMonth returns the first day of the calendar month before now.
func PreviousMonth(now time.Time) time.Time {
	today := model.DateOf(now)
	return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
}
