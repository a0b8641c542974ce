package payments

import (
	"courtside/app/aggregate"
	"courtside/app/models"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

func loadPayments(ownerID string) ([]models.Payment, error) {
	raw, err := records.Collection(store.PaymentsPath(ownerID))
	if err != nil {
		return nil, err
	}
	return models.DecodePayments(raw)
}

// queryFromCtx maps the list endpoint's query string onto filter
// predicates. Absent parameters leave their predicate disabled;
// malformed range parameters are an error.
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
