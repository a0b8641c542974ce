package aggregate

import "courtside/app/models"

// chartPalette matches the dashboard charts; colors are assigned by
// first-seen category order and cycle when exhausted.
var chartPalette = []string{"#10B981", "#6366F1", "#F59E0B", "#EF4444", "#8B5CF6", "#EC4899"}

// CategoryStat is the per-category roll-up of a payment set.
type CategoryStat struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// CategoryBreakdown maps each category present in the input to its
// total amount and record count. Categories with no matching records
// are omitted, never zero-filled.
func CategoryBreakdown(payments []models.Payment) map[models.PaymentCategory]CategoryStat {
	breakdown := map[models.PaymentCategory]CategoryStat{}
	for _, p := range payments {
		stat := breakdown[p.Category]
		stat.Total += p.Amount
		stat.Count++
		breakdown[p.Category] = stat
	}
	return breakdown
}

// ChartPoint is the chart-ready form of one category slice.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// ChartSeries renders the category breakdown as an ordered series,
// categories in order of first appearance in the input.
func ChartSeries(payments []models.Payment) []ChartPoint {
	index := map[models.PaymentCategory]int{}
	series := []ChartPoint{}

	for _, p := range payments {
		i, ok := index[p.Category]
		if !ok {
			i = len(series)
			index[p.Category] = i
			series = append(series, ChartPoint{
				Name:  string(p.Category),
				Color: chartPalette[i%len(chartPalette)],
			})
		}
		series[i].Value += p.Amount
	}
	return series
}
