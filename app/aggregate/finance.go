// Package aggregate holds the pure transforms behind every derived
// view: monthly bucketing, category breakdowns, filtered ledgers,
// pending-payment partitions and attendance summaries. Nothing here
// performs I/O or retries; every function takes its full input and
// either returns a valid result or fails with a models.ValidationError
// raised earlier at the decode boundary.
package aggregate

import (
	"sort"
	"time"

	"courtside/app/models"
)

// MonthlyBucket is one calendar month of ledger activity.
type MonthlyBucket struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`

	when time.Time
}

// MonthlyBuckets groups payments into "Jan 2006" buckets by createdAt
// and sorts them chronologically (not lexically). A month that only
// saw income still reports expenses as 0, and vice versa.
func MonthlyBuckets(payments []models.Payment) []MonthlyBucket {
	index := map[string]int{}
	buckets := []MonthlyBucket{}

	for _, p := range payments {
		t := time.UnixMilli(p.CreatedAt).Local()
		label := t.Format("Jan 2006")

		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, MonthlyBucket{
				Month: label,
				when:  time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()),
			})
		}

		if p.Type == models.PaymentTypeIncome {
			buckets[i].Income += p.Amount
		} else {
			buckets[i].Expenses += p.Amount
		}
	}

	for i := range buckets {
		buckets[i].Profit = buckets[i].Income - buckets[i].Expenses
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].when.Before(buckets[j].when)
	})
	return buckets
}

// Totals sums income and expense amounts over the whole input.
func Totals(payments []models.Payment) (income, expenses float64) {
	for _, p := range payments {
		if p.Type == models.PaymentTypeIncome {
			income += p.Amount
		} else {
			expenses += p.Amount
		}
	}
	return income, expenses
}

// PercentChange returns the relative change from previous to current
// in percent. With a zero baseline there is no meaningful ratio, so ok
// is false and the caller renders "no prior data" instead of a number.
func PercentChange(current, previous float64) (change float64, ok bool) {
	if previous == 0 {
		return 0, false
	}
	return (current - previous) / previous * 100, true
}
