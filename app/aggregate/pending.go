package aggregate

import (
	"sort"
	"time"

	"courtside/app/models"
)

// PartitionPending splits pending payments into overdue and upcoming.
// A payment is overdue iff it has a due date that lies before now;
// everything else, including payments with no due date, is upcoming.
// Each half is sorted by due date ascending with undated records last,
// ties broken by createdAt descending. The two halves form a strict
// partition of the pending input.
func PartitionPending(payments []models.Payment, now time.Time) (overdue, upcoming []models.Payment) {
	pending := []models.Payment{}
	for _, p := range payments {
		if p.Status == models.PaymentStatusPending {
			pending = append(pending, p)
		}
	}
	sortByDueDate(pending, now.Location())

	overdue = []models.Payment{}
	upcoming = []models.Payment{}
	for _, p := range pending {
		if due, ok := parseDueDate(p, now.Location()); ok && due.Before(now) {
			overdue = append(overdue, p)
		} else {
			upcoming = append(upcoming, p)
		}
	}
	return overdue, upcoming
}

func parseDueDate(p models.Payment, loc *time.Location) (time.Time, bool) {
	if p.DueDate == "" {
		return time.Time{}, false
	}
	due, err := time.ParseInLocation("2006-01-02", p.DueDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

func sortByDueDate(payments []models.Payment, loc *time.Location) {
	sort.SliceStable(payments, func(i, j int) bool {
		di, iOK := parseDueDate(payments[i], loc)
		dj, jOK := parseDueDate(payments[j], loc)
		switch {
		case iOK && jOK:
			if !di.Equal(dj) {
				return di.Before(dj)
			}
			return payments[i].CreatedAt > payments[j].CreatedAt
		case iOK:
			return true
		case jOK:
			return false
		default:
			return payments[i].CreatedAt > payments[j].CreatedAt
		}
	})
}
