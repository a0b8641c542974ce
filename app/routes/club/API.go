package club

import (
	"database/sql"
	"io"

	"courtside/app/config"
	"courtside/app/database"
	"courtside/app/models"
	"courtside/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

const maxLogoSize = 2 << 20 // 2 MiB

func GetClubAPI(c *fiber.Ctx) error {
	club, err := database.GetClubByOwner(config.GetDB(), auth.OwnerID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No club registered"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(club)
}

// SetupClubAPI registers the owner's club: multipart form with the
// club name and a logo image. One club per owner; the logo upload is
// retried up to three times before onboarding fails.
func SetupClubAPI(c *fiber.Ctx) error {
	ownerID := auth.OwnerID(c)

	if _, err := database.GetClubByOwner(config.GetDB(), ownerID); err == nil {
		return c.Status(409).JSON(fiber.Map{"error": "You already have a registered club"})
	} else if err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	name := c.FormValue("name")
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Club name is required"})
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Club logo is required"})
	}
	if fileHeader.Size > maxLogoSize {
		return c.Status(400).JSON(fiber.Map{"error": "Logo must be smaller than 2MB"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to read logo"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to read logo"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := blobs.PutWithRetry(ownerID, data, contentType); err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Logo upload failed"})
	}

	club := &models.Club{
		OwnerID: ownerID,
		Name:    name,
		LogoURL: logoPath,
	}
	if err := database.CreateClub(config.GetDB(), club); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create club"})
	}

	return c.Status(201).JSON(club)
}

func UpdateClubAPI(c *fiber.Ctx) error {
	type UpdateRequest struct {
		Name string `json:"name"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Club name is required"})
	}

	if err := database.UpdateClubName(config.GetDB(), auth.OwnerID(c), req.Name); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No club registered"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update club"})
	}
	return c.JSON(fiber.Map{"message": "Club updated"})
}

func GetLogoAPI(c *fiber.Ctx) error {
	data, contentType, err := blobs.Get(auth.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load logo"})
	}
	if data == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No logo uploaded"})
	}
	if contentType != "" {
		c.Set("Content-Type", contentType)
	}
	return c.Send(data)
}
