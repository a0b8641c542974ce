package branches

import (
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

var records *store.Store

func SetupBranchRoutes(app *fiber.App, st *store.Store) {
	records = st

	api := app.Group("/api/branches")
	api.Use(auth.AuthMiddleware)
	api.Get("/", ListBranchesAPI)
	api.Post("/", CreateBranchAPI)
	api.Put("/:branchId", UpdateBranchAPI)
	api.Delete("/:branchId", DeleteBranchAPI)
}
