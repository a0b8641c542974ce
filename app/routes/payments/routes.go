package payments

import (
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

var records *store.Store

func SetupPaymentRoutes(app *fiber.App, st *store.Store) {
	records = st

	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)
	api.Get("/", ListPaymentsAPI)
	api.Post("/", CreatePaymentAPI)
	api.Get("/pending", PendingPaymentsAPI)
	api.Get("/stats", PaymentStatsAPI)
	api.Put("/:paymentId", UpdatePaymentAPI)
	api.Put("/:paymentId/complete", CompletePaymentAPI)
	api.Delete("/:paymentId", DeletePaymentAPI)
}
