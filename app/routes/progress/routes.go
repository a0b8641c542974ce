package progress

import (
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

var records *store.Store

func SetupProgressRoutes(app *fiber.App, st *store.Store) {
	records = st

	api := app.Group("/api/students/:studentId/progress")
	api.Use(auth.AuthMiddleware)
	api.Get("/", ListProgressAPI)
	api.Post("/", CreateProgressAPI)
}
