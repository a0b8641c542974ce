package finance

import (
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

var records *store.Store

func SetupFinanceRoutes(app *fiber.App, st *store.Store) {
	records = st

	api := app.Group("/api/finance")
	api.Use(auth.AuthMiddleware)
	api.Get("/overview", OverviewAPI)
	api.Get("/reports", ReportAPI)
	api.Get("/export", ExportAPI)
}
