package club

import (
	"courtside/app/blob"
	"courtside/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

var blobs *blob.Store

// logoPath is the authenticated serving route below; it doubles as the
// LogoURL stored on every club, resolved per tenant by the JWT.
const logoPath = "/api/club/logo"

func SetupClubRoutes(app *fiber.App, blobStore *blob.Store) {
	blobs = blobStore

	api := app.Group("/api/club")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetClubAPI)
	api.Post("/", SetupClubAPI)
	api.Put("/", UpdateClubAPI)
	api.Get("/logo", GetLogoAPI)
}
