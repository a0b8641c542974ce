package aggregate

import (
	"testing"
	"time"

	"courtside/app/models"
)

func TestPartitionPending(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "A", Status: models.PaymentStatusPending, DueDate: "2024-03-01", CreatedAt: 1},
		{ID: "B", Status: models.PaymentStatusPending, DueDate: "2024-03-20", CreatedAt: 2},
		{ID: "C", Status: models.PaymentStatusPending, CreatedAt: 3},
		{ID: "done", Status: models.PaymentStatusCompleted, DueDate: "2024-01-01", CreatedAt: 4},
	}

	overdue, upcoming := PartitionPending(payments, now)

	if len(overdue) != 1 || overdue[0].ID != "A" {
		t.Errorf("overdue = %+v, want just A", overdue)
	}
	if len(upcoming) != 2 || upcoming[0].ID != "B" || upcoming[1].ID != "C" {
		t.Errorf("upcoming = %+v, want B then C (undated last)", upcoming)
	}
}

func TestPartitionPendingIsStrictPartition(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "a", Status: models.PaymentStatusPending, DueDate: "2024-01-01", CreatedAt: 1},
		{ID: "b", Status: models.PaymentStatusPending, DueDate: "2024-12-01", CreatedAt: 2},
		{ID: "c", Status: models.PaymentStatusPending, CreatedAt: 3},
		{ID: "d", Status: models.PaymentStatusPending, DueDate: "2024-03-09", CreatedAt: 4},
	}

	overdue, upcoming := PartitionPending(payments, now)

	seen := map[string]int{}
	for _, p := range overdue {
		seen[p.ID]++
	}
	for _, p := range upcoming {
		seen[p.ID]++
	}
	if len(seen) != len(payments) {
		t.Errorf("partition covers %d of %d pending payments", len(seen), len(payments))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("payment %s appears %d times", id, n)
		}
	}
}

func TestPartitionPendingTiesByCreatedAtDescending(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "older", Status: models.PaymentStatusPending, DueDate: "2024-02-01", CreatedAt: 100},
		{ID: "newer", Status: models.PaymentStatusPending, DueDate: "2024-02-01", CreatedAt: 200},
	}

	overdue, _ := PartitionPending(payments, now)
	if len(overdue) != 2 || overdue[0].ID != "newer" || overdue[1].ID != "older" {
		t.Errorf("equal due dates must sort newest-created first: %+v", overdue)
	}
}

func TestPartitionPendingDueTodayIsUpcoming(t *testing.T) {
	// Due dates parse to midnight of the due day; at exactly that
	// instant the payment is not yet overdue.
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "today", Status: models.PaymentStatusPending, DueDate: "2024-03-10", CreatedAt: 1},
	}

	overdue, upcoming := PartitionPending(payments, now)
	if len(overdue) != 0 || len(upcoming) != 1 {
		t.Errorf("payment due today at midnight must be upcoming: overdue=%+v upcoming=%+v", overdue, upcoming)
	}
}
