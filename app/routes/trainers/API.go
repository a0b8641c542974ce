package trainers

import (
	"time"

	"courtside/app/models"
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

func ListTrainersAPI(c *fiber.Ctx) error {
	raw, err := records.Collection(store.TrainersPath(auth.OwnerID(c)))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load trainers"})
	}
	trainers, err := models.DecodeTrainers(raw)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(trainers)
}

func CreateTrainerAPI(c *fiber.Ctx) error {
	var trainer models.Trainer
	if err := c.BodyParser(&trainer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	trainer.ID = ""
	trainer.CreatedAt = time.Now().UnixMilli()
	if err := models.Validate(trainer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	key, err := records.Append(store.TrainersPath(auth.OwnerID(c)), trainer)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create trainer"})
	}

	trainer.ID = key
	return c.Status(201).JSON(trainer)
}

func UpdateTrainerAPI(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	partial := map[string]interface{}{}
	for _, field := range []string{"firstName", "lastName", "email", "phone", "specialization"} {
		if v, ok := body[field]; ok {
			partial[field] = v
		}
	}
	if len(partial) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Nothing to update"})
	}

	path := store.TrainersPath(auth.OwnerID(c)) + "/" + c.Params("trainerId")
	raw, err := records.Get(path)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Trainer not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load trainer"})
	}
	var merged models.Trainer
	if err := models.CheckMerge("trainer", c.Params("trainerId"), raw, partial, &merged); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := records.Update(path, partial); err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Trainer not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update trainer"})
	}
	return c.JSON(fiber.Map{"message": "Trainer updated"})
}

// AssignGroupsAPI replaces the trainer's group assignment set.
// Unassigning a group never touches attendance or progress history.
func AssignGroupsAPI(c *fiber.Ctx) error {
	type AssignRequest struct {
		Groups map[string]bool `json:"groups"`
	}

	var req AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	assigned := map[string]bool{}
	for groupID, on := range req.Groups {
		if on {
			assigned[groupID] = true
		}
	}

	path := store.TrainersPath(auth.OwnerID(c)) + "/" + c.Params("trainerId")
	if err := records.Update(path, map[string]interface{}{"groups": assigned}); err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Trainer not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to assign groups"})
	}
	return c.JSON(fiber.Map{"message": "Groups assigned"})
}

func DeleteTrainerAPI(c *fiber.Ctx) error {
	path := store.TrainersPath(auth.OwnerID(c)) + "/" + c.Params("trainerId")
	if err := records.Remove(path); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete trainer"})
	}
	return c.JSON(fiber.Map{"message": "Trainer deleted"})
}
