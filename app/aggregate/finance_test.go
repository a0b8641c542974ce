package aggregate

import (
	"testing"
	"time"

	"courtside/app/models"
)

func ms(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).UnixMilli()
}

func TestMonthlyBuckets(t *testing.T) {
	payments := []models.Payment{
		{Amount: 100, Type: models.PaymentTypeIncome, CreatedAt: ms(2024, time.January, 15)},
		{Amount: 40, Type: models.PaymentTypeExpense, CreatedAt: ms(2024, time.January, 20)},
		{Amount: 50, Type: models.PaymentTypeIncome, CreatedAt: ms(2024, time.February, 1)},
	}

	buckets := MonthlyBuckets(payments)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}

	jan := buckets[0]
	if jan.Month != "Jan 2024" || jan.Income != 100 || jan.Expenses != 40 || jan.Profit != 60 {
		t.Errorf("unexpected January bucket: %+v", jan)
	}

	feb := buckets[1]
	if feb.Month != "Feb 2024" || feb.Income != 50 || feb.Expenses != 0 || feb.Profit != 50 {
		t.Errorf("unexpected February bucket: %+v", feb)
	}
}

func TestMonthlyBucketsChronologicalAcrossYears(t *testing.T) {
	// Dec 2023 must sort before Jan 2024 even though "Dec 2023" > "Jan 2024" lexically fails.
	payments := []models.Payment{
		{Amount: 10, Type: models.PaymentTypeIncome, CreatedAt: ms(2024, time.January, 10)},
		{Amount: 20, Type: models.PaymentTypeIncome, CreatedAt: ms(2023, time.December, 10)},
	}

	buckets := MonthlyBuckets(payments)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Month != "Dec 2023" || buckets[1].Month != "Jan 2024" {
		t.Errorf("buckets out of order: %s, %s", buckets[0].Month, buckets[1].Month)
	}
}

func TestMonthlyBucketsConservation(t *testing.T) {
	payments := []models.Payment{
		{Amount: 100, Type: models.PaymentTypeIncome, CreatedAt: ms(2024, time.January, 5)},
		{Amount: 25.5, Type: models.PaymentTypeIncome, CreatedAt: ms(2024, time.March, 5)},
		{Amount: 40, Type: models.PaymentTypeExpense, CreatedAt: ms(2024, time.February, 5)},
		{Amount: 9.5, Type: models.PaymentTypeExpense, CreatedAt: ms(2024, time.April, 5)},
	}

	wantIncome, wantExpenses := Totals(payments)

	var gotIncome, gotExpenses float64
	for _, b := range MonthlyBuckets(payments) {
		gotIncome += b.Income
		gotExpenses += b.Expenses
	}
	if gotIncome != wantIncome {
		t.Errorf("bucket income %v != total income %v", gotIncome, wantIncome)
	}
	if gotExpenses != wantExpenses {
		t.Errorf("bucket expenses %v != total expenses %v", gotExpenses, wantExpenses)
	}
}

func TestMonthlyBucketsEmpty(t *testing.T) {
	if buckets := MonthlyBuckets(nil); len(buckets) != 0 {
		t.Errorf("expected no buckets, got %+v", buckets)
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
		wantOK   bool
	}{
		{"growth", 150, 100, 50, true},
		{"decline", 50, 100, -50, true},
		{"flat", 100, 100, 0, true},
		{"zero baseline", 100, 0, 0, false},
		{"both zero", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PercentChange(tt.current, tt.previous)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("PercentChange(%v, %v) = (%v, %v), want (%v, %v)",
					tt.current, tt.previous, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
