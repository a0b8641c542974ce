package progress

import (
	"time"

	"courtside/app/models"
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

func ListProgressAPI(c *fiber.Ctx) error {
	raw, err := records.Collection(store.ProgressPath(auth.OwnerID(c), c.Params("studentId")))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load progress"})
	}
	history, err := models.DecodeProgressRecords(raw)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(history)
}

// CreateProgressAPI appends a measurement entry. The history is
// append-only; there is no update or delete.
func CreateProgressAPI(c *fiber.Ctx) error {
	var record models.ProgressRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	record.ID = ""
	record.CreatedAt = time.Now().UnixMilli()
	if err := models.Validate(record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	key, err := records.Append(store.ProgressPath(auth.OwnerID(c), c.Params("studentId")), record)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save progress"})
	}

	record.ID = key
	return c.Status(201).JSON(record)
}
