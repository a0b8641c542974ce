package dashboard

import (
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

var records *store.Store

func SetupDashboardRoutes(app *fiber.App, st *store.Store) {
	records = st

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", StatsAPI)
}
