package pipeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/model"
)

// MonthKeyLayout formats a month bucket key.
const MonthKeyLayout = "2006-01"

// MonthKey returns the YYYY-MM bucket key of d.
func MonthKey(d time.Time) string {
	return d.Format(MonthKeyLayout)
}

// ParseMonthKey parses a YYYY-MM key into the first day of that month.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("month key %q: want YYYY-MM", key)
	}
	return t, nil
}

// DefaultHistoryKey is the key of the calendar month before now.
func DefaultHistoryKey(now time.Time) string {
	return MonthKey(PreviousMonth(now))
}

// History partitions past expenses into month buckets.
type History struct {
	Buckets map[string][]model.Expense
	Keys    []string // descending, so Keys[0] is the most recent month
}

// GroupHistory buckets every expense outside the current calendar month by YYYY-MM.
func GroupHistory(expenses []model.Expense, now time.Time) History {
	today := model.DateOf(now)
	h := History{Buckets: make(map[string][]model.Expense)}

	for _, e := range expenses {
		if sameMonth(e.Date, today) {
			continue
		}
		key := MonthKey(e.Date)
		h.Buckets[key] = append(h.Buckets[key], e)
	}

	h.Keys = make([]string, 0, len(h.Buckets))
	for k := range h.Buckets {
		h.Keys = append(h.Keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(h.Keys)))

	return h
}

func (h History) index(key string) int {
	for i, k := range h.Keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Has reports whether key has a bucket.
func (h History) Has(key string) bool {
	return h.index(key) >= 0
}

// Prev returns the month key before key (older), or key itself at the oldest bucket.
func (h History) Prev(key string) string {
	if i := h.index(key); i >= 0 && i < len(h.Keys)-1 {
		return h.Keys[i+1]
	}
	return key
}

// Next returns the month key after key (newer), or key itself at the newest bucket.
func (h History) Next(key string) string {
	if i := h.index(key); i > 0 {
		return h.Keys[i-1]
	}
	return key
}

// Bucket returns the expenses of one month with its total, newest date first.
func (h History) Bucket(key string) model.MonthBucket {
	exps := SortByDateDesc(h.Buckets[key])
	return model.MonthBucket{Key: key, Expenses: exps, Total: Total(exps)}
}

// Resolve returns key when it has a bucket, otherwise the newest available key.
// An empty history resolves to "".
func (h History) Resolve(key string) string {
	if h.Has(key) {
		return key
	}
	if len(h.Keys) == 0 {
		return ""
	}
	return h.Keys[0]
}

// Total returns the summed amount of one month bucket.
func (h History) Total(key string) decimal.Decimal {
	return Total(h.Buckets[key])
}

// TrailingMonths buckets expenses into the n calendar months ending with
// now's month, oldest first. Months without expenses have a zero total.
func TrailingMonths(expenses []model.Expense, now time.Time, n int) []model.MonthBucket {
	if n <= 0 {
		return nil
	}
	first := AddMonths(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), -(n - 1))

	buckets := make([]model.MonthBucket, n)
	index := make(map[string]int, n)
	for i := range buckets {
		key := MonthKey(AddMonths(first, i))
		buckets[i] = model.MonthBucket{Key: key, Total: decimal.Zero}
		index[key] = i
	}
	for _, e := range expenses {
		if i, ok := index[MonthKey(e.Date)]; ok {
			buckets[i].Expenses = append(buckets[i].Expenses, e)
			buckets[i].Total = buckets[i].Total.Add(e.Amount)
		}
	}
	return buckets
}
