package aggregate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"courtside/app/models"
)

// Summary is the headline block of a financial report.
type Summary struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// Report is the exportable financial report over a filtered ledger.
type Report struct {
	Title             string                                  `json:"title"`
	DateRange         string                                  `json:"dateRange"`
	Summary           Summary                                 `json:"summary"`
	CategoryBreakdown map[models.PaymentCategory]CategoryStat `json:"categoryBreakdown"`
	MonthlyTrend      []MonthlyBucket                         `json:"monthlyTrend"`
}

// BuildReport filters the ledger by q and assembles the report.
func BuildReport(payments []models.Payment, q Query, now time.Time) Report {
	filtered := Filter(payments, q, now)
	income, expenses := Totals(filtered)

	dateRange := string(q.Range)
	if q.Range == RangeCustom {
		dateRange = fmt.Sprintf("%s to %s", q.StartDate, q.EndDate)
	}

	return Report{
		Title:     "Financial Report",
		DateRange: dateRange,
		Summary: Summary{
			Income:   income,
			Expenses: expenses,
			Net:      income - expenses,
		},
		CategoryBreakdown: CategoryBreakdown(filtered),
		MonthlyTrend:      MonthlyBuckets(filtered),
	}
}

// ExportCSV renders payments as CSV with one row per record. The
// description is quoted so embedded commas survive; embedded quotes
// are doubled.
func ExportCSV(payments []models.Payment) string {
	var b strings.Builder
	b.WriteString("Date,Type,Category,Amount,Status,Description\n")

	for _, p := range payments {
		date := time.UnixMilli(p.CreatedAt).Local().Format("2006-01-02")
		description := strings.ReplaceAll(p.Description, `"`, `""`)
		b.WriteString(strings.Join([]string{
			date,
			string(p.Type),
			string(p.Category),
			strconv.FormatFloat(p.Amount, 'f', -1, 64),
			string(p.Status),
			`"` + description + `"`,
		}, ","))
		b.WriteString("\n")
	}
	return b.String()
}
