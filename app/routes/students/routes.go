package students

import (
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

var records *store.Store

func SetupStudentRoutes(app *fiber.App, st *store.Store) {
	records = st

	api := app.Group("/api/groups/:groupId/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", ListStudentsAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:studentId", UpdateStudentAPI)
	api.Delete("/:studentId", DeleteStudentAPI)
}
