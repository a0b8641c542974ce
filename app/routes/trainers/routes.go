package trainers

import (
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

var records *store.Store

func SetupTrainerRoutes(app *fiber.App, st *store.Store) {
	records = st

	api := app.Group("/api/trainers")
	api.Use(auth.AuthMiddleware)
	api.Get("/", ListTrainersAPI)
	api.Post("/", CreateTrainerAPI)
	api.Put("/:trainerId", UpdateTrainerAPI)
	api.Put("/:trainerId/groups", AssignGroupsAPI)
	api.Delete("/:trainerId", DeleteTrainerAPI)
}
