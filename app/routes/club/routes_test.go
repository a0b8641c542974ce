package club

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLogoPathMatchesRegisteredRoute(t *testing.T) {
	app := fiber.New()
	SetupClubRoutes(app, nil)

	for _, route := range app.GetRoutes() {
		if route.Method == fiber.MethodGet && route.Path == logoPath {
			return
		}
	}
	t.Fatalf("stored logo URL %s has no matching GET route", logoPath)
}
