package matches

import (
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

var records *store.Store

func SetupMatchRoutes(app *fiber.App, st *store.Store) {
	records = st

	api := app.Group("/api/matches")
	api.Use(auth.AuthMiddleware)
	api.Get("/", ListMatchesAPI)
	api.Post("/", CreateMatchAPI)
	api.Put("/:matchId", UpdateMatchAPI)
	api.Delete("/:matchId", DeleteMatchAPI)
}
