package attendance

import (
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

var records *store.Store

func SetupAttendanceRoutes(app *fiber.App, st *store.Store) {
	records = st

	api := app.Group("/api/groups/:groupId/attendance")
	api.Use(auth.AuthMiddleware)
	api.Get("/", ListAttendanceAPI)
	api.Post("/", MarkAttendanceAPI)
	api.Get("/:date/:timeSlot", GetSessionAPI)
}
