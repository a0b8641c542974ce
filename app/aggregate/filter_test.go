package aggregate

import (
	"testing"
	"time"

	"courtside/app/models"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name      string
		rangeMode string
		from, to  string
		wantRange RangeMode
		wantErr   bool
	}{
		{"empty range defaults to all", "", "", "", RangeAll, false},
		{"this month", "thisMonth", "", "", RangeThisMonth, false},
		{"last month", "lastMonth", "", "", RangeLastMonth, false},
		{"valid custom", "custom", "2024-01-01", "2024-01-31", RangeCustom, false},
		{"custom start only", "custom", "2024-01-01", "", RangeCustom, false},
		{"custom without dates", "custom", "", "", "", true},
		{"garbage start date", "custom", "garbage", "2024-01-31", "", true},
		{"garbage end date", "custom", "2024-01-01", "31/01/2024", "", true},
		{"unknown range", "fortnight", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseQuery(tt.rangeMode, tt.from, tt.to, "", "", "", "")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if q.Range != tt.wantRange {
				t.Errorf("range = %q, want %q", q.Range, tt.wantRange)
			}
		})
	}
}

func TestFilterLastMonthBoundary(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "leap", Amount: 1, CreatedAt: time.Date(2024, time.February, 29, 23, 0, 0, 0, time.UTC).UnixMilli()},
		{ID: "march", Amount: 1, CreatedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).UnixMilli()},
		{ID: "january", Amount: 1, CreatedAt: time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC).UnixMilli()},
	}

	got := Filter(payments, Query{Range: RangeLastMonth}, now)
	if len(got) != 1 || got[0].ID != "leap" {
		t.Fatalf("lastMonth at 2024-03-10 must keep only the Feb 29 record, got %+v", got)
	}
}

func TestFilterThisMonth(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "in", CreatedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).UnixMilli()},
		{ID: "out", CreatedAt: time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC).UnixMilli()},
	}

	got := Filter(payments, Query{Range: RangeThisMonth}, now)
	if len(got) != 1 || got[0].ID != "in" {
		t.Fatalf("thisMonth filter wrong: %+v", got)
	}
}

func TestFilterCustomRangeInclusiveEnd(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "lastInstant", CreatedAt: time.Date(2024, time.May, 20, 23, 59, 59, 0, time.UTC).UnixMilli()},
		{ID: "nextDay", CreatedAt: time.Date(2024, time.May, 21, 0, 0, 0, 0, time.UTC).UnixMilli()},
	}

	q := Query{Range: RangeCustom, StartDate: "2024-05-01", EndDate: "2024-05-20"}
	got := Filter(payments, q, now)
	if len(got) != 1 || got[0].ID != "lastInstant" {
		t.Fatalf("custom range must include the whole end day and nothing after: %+v", got)
	}
}

func TestFilterIdempotent(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "a", Category: models.CategoryTraining, CreatedAt: ms(2024, time.February, 10)},
		{ID: "b", Category: models.CategoryMembership, CreatedAt: ms(2024, time.February, 15)},
		{ID: "c", Category: models.CategoryTraining, CreatedAt: ms(2024, time.March, 2)},
	}
	q := Query{Range: RangeLastMonth, Category: "training"}

	once := Filter(payments, q, now)
	twice := Filter(once, q, now)
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("record %d changed between passes: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestFilterPredicates(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "a", Type: models.PaymentTypeIncome, Category: models.CategoryMembership, Status: models.PaymentStatusCompleted, Description: "March dues", CreatedAt: 1},
		{ID: "b", Type: models.PaymentTypeExpense, Category: models.CategoryEquipment, Status: models.PaymentStatusPending, Description: "New basketballs", CreatedAt: 2},
		{ID: "c", Type: models.PaymentTypeExpense, Category: models.CategorySalary, Status: models.PaymentStatusCompleted, Description: "Coach payroll", CreatedAt: 3},
	}

	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{"type", Query{Type: "expense"}, []string{"b", "c"}},
		{"category", Query{Category: "membership"}, []string{"a"}},
		{"status", Query{Status: "pending"}, []string{"b"}},
		{"search description", Query{Search: "basketball"}, []string{"b"}},
		{"search category", Query{Search: "SALARY"}, []string{"c"}},
		{"combined", Query{Type: "expense", Status: "completed"}, []string{"c"}},
		{"no predicates", Query{}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(payments, tt.q, now)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("record %d = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}
