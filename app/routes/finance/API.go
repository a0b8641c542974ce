package finance

import (
	"time"

	"courtside/app/aggregate"
	"courtside/app/models"
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

type metric struct {
	Value float64 `json:"value"`
	// Change is percent relative to the prior month. Trend is "up",
	// "down", "flat", or "none" when there is no prior data to compare.
	Change float64 `json:"change"`
	Trend  string  `json:"trend"`
}

func newMetric(current, previous float64) metric {
	m := metric{Value: current, Trend: "none"}
	change, ok := aggregate.PercentChange(current, previous)
	if !ok {
		return m
	}
	m.Change = change
	switch {
	case change > 0:
		m.Trend = "up"
	case change < 0:
		m.Trend = "down"
	default:
		m.Trend = "flat"
	}
	return m
}

func loadPayments(ownerID string) ([]models.Payment, error) {
	raw, err := records.Collection(store.PaymentsPath(ownerID))
	if err != nil {
		return nil, err
	}
	return models.DecodePayments(raw)
}

// OverviewAPI reports headline totals with month-over-month movement
// plus the chart inputs the overview page renders.
func OverviewAPI(c *fiber.Ctx) error {
	payments, err := loadPayments(auth.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payments"})
	}

	now := time.Now()
	thisMonth := aggregate.Filter(payments, aggregate.Query{Range: aggregate.RangeThisMonth}, now)
	lastMonth := aggregate.Filter(payments, aggregate.Query{Range: aggregate.RangeLastMonth}, now)

	income, expenses := aggregate.Totals(payments)
	curIncome, curExpenses := aggregate.Totals(thisMonth)
	prevIncome, prevExpenses := aggregate.Totals(lastMonth)

	return c.JSON(fiber.Map{
		"totalIncome":     income,
		"totalExpenses":   expenses,
		"netProfit":       income - expenses,
		"monthlyIncome":   newMetric(curIncome, prevIncome),
		"monthlyExpenses": newMetric(curExpenses, prevExpenses),
		"monthlyProfit":   newMetric(curIncome-curExpenses, prevIncome-prevExpenses),
		"monthlyTrend":    aggregate.MonthlyBuckets(payments),
		"categoryChart":   aggregate.ChartSeries(payments),
	})
}

func ReportAPI(c *fiber.Ctx) error {
	q, err := queryFromCtx(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	payments, err := loadPayments(auth.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payments"})
	}
	return c.JSON(aggregate.BuildReport(payments, q, time.Now()))
}

// ExportAPI renders the filtered ledger as a download. format=csv
// streams the flat ledger; format=json wraps it in the full report.
func ExportAPI(c *fiber.Ctx) error {
	q, err := queryFromCtx(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	payments, err := loadPayments(auth.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payments"})
	}

	now := time.Now()

	switch c.Query("format", "csv") {
	case "csv":
		filtered := aggregate.Filter(payments, q, now)
		c.Set("Content-Type", "text/csv")
		c.Set("Content-Disposition", `attachment; filename="financial-report.csv"`)
		return c.SendString(aggregate.ExportCSV(filtered))
	case "json":
		c.Set("Content-Disposition", `attachment; filename="financial-report.json"`)
		return c.JSON(aggregate.BuildReport(payments, q, now))
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Format must be csv or json"})
	}
}

func queryFromCtx(c *fiber.Ctx) (aggregate.Query, error) {
	return aggregate.ParseQuery(
		c.Query("range"),
		c.Query("from"),
		c.Query("to"),
		c.Query("type"),
		c.Query("category"),
		c.Query("status"),
		c.Query("search"),
	)
}
