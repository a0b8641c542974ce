package groups

import (
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

var records *store.Store

func SetupGroupRoutes(app *fiber.App, st *store.Store) {
	records = st

	api := app.Group("/api/branches/:branchId/groups")
	api.Use(auth.AuthMiddleware)
	api.Get("/", ListGroupsAPI)
	api.Post("/", CreateGroupAPI)
	api.Put("/:groupId", UpdateGroupAPI)
	api.Delete("/:groupId", DeleteGroupAPI)
}
