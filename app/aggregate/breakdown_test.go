package aggregate

import (
	"testing"
	"time"

	"courtside/app/models"
)

func TestCategoryBreakdown(t *testing.T) {
	payments := []models.Payment{
		{Amount: 100, Type: models.PaymentTypeExpense, Category: models.CategoryMembership, CreatedAt: ms(2024, time.January, 1)},
		{Amount: 50, Type: models.PaymentTypeExpense, Category: models.CategoryMembership, CreatedAt: ms(2024, time.January, 2)},
		{Amount: 30, Type: models.PaymentTypeExpense, Category: models.CategoryTraining, CreatedAt: ms(2024, time.January, 3)},
	}

	breakdown := CategoryBreakdown(payments)
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(breakdown))
	}

	membership := breakdown[models.CategoryMembership]
	if membership.Total != 150 || membership.Count != 2 {
		t.Errorf("unexpected membership stat: %+v", membership)
	}

	training := breakdown[models.CategoryTraining]
	if training.Total != 30 || training.Count != 1 {
		t.Errorf("unexpected training stat: %+v", training)
	}

	if _, ok := breakdown[models.CategoryEquipment]; ok {
		t.Error("zero category must be omitted")
	}
}

func TestCategoryBreakdownSumsToTotal(t *testing.T) {
	payments := []models.Payment{
		{Amount: 12.5, Category: models.CategoryFacility, CreatedAt: 1},
		{Amount: 7.5, Category: models.CategorySalary, CreatedAt: 2},
		{Amount: 30, Category: models.CategoryFacility, CreatedAt: 3},
	}

	var want float64
	for _, p := range payments {
		want += p.Amount
	}

	var got float64
	for _, stat := range CategoryBreakdown(payments) {
		got += stat.Total
	}
	if got != want {
		t.Errorf("breakdown totals sum to %v, want %v", got, want)
	}
}

func TestChartSeriesFirstSeenOrderAndPalette(t *testing.T) {
	payments := []models.Payment{
		{Amount: 10, Category: models.CategoryTraining, CreatedAt: 1},
		{Amount: 20, Category: models.CategoryMembership, CreatedAt: 2},
		{Amount: 5, Category: models.CategoryTraining, CreatedAt: 3},
		{Amount: 1, Category: models.CategoryEquipment, CreatedAt: 4},
	}

	series := ChartSeries(payments)
	if len(series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series))
	}

	wantNames := []string{"training", "membership", "equipment"}
	for i, want := range wantNames {
		if series[i].Name != want {
			t.Errorf("point %d = %q, want %q", i, series[i].Name, want)
		}
		if series[i].Color != chartPalette[i] {
			t.Errorf("point %d color = %q, want %q", i, series[i].Color, chartPalette[i])
		}
	}
	if series[0].Value != 15 {
		t.Errorf("training value = %v, want 15", series[0].Value)
	}
}

func TestChartSeriesPaletteCycles(t *testing.T) {
	categories := []models.PaymentCategory{
		models.CategoryMembership, models.CategoryTraining, models.CategoryTournament,
		models.CategoryEquipment, models.CategoryFacility, models.CategorySalary,
		models.CategoryOther,
	}
	payments := make([]models.Payment, len(categories))
	for i, cat := range categories {
		payments[i] = models.Payment{Amount: 1, Category: cat, CreatedAt: int64(i + 1)}
	}

	series := ChartSeries(payments)
	if len(series) != len(categories) {
		t.Fatalf("expected %d points, got %d", len(categories), len(series))
	}
	if series[6].Color != chartPalette[0] {
		t.Errorf("seventh category color = %q, want palette to wrap to %q", series[6].Color, chartPalette[0])
	}
}
