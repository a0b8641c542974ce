package branches

import (
	"time"

	"courtside/app/models"
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

func ListBranchesAPI(c *fiber.Ctx) error {
	raw, err := records.Collection(store.BranchesPath(auth.OwnerID(c)))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load branches"})
	}
	branches, err := models.DecodeBranches(raw)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(branches)
}

func CreateBranchAPI(c *fiber.Ctx) error {
	var branch models.Branch
	if err := c.BodyParser(&branch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	branch.ID = ""
	branch.CreatedAt = time.Now().UnixMilli()
	if err := models.Validate(branch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	key, err := records.Append(store.BranchesPath(auth.OwnerID(c)), branch)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create branch"})
	}

	branch.ID = key
	return c.Status(201).JSON(branch)
}

func UpdateBranchAPI(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	partial := map[string]interface{}{}
	for _, field := range []string{"name", "address"} {
		if v, ok := body[field]; ok {
			partial[field] = v
		}
	}
	if len(partial) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Nothing to update"})
	}

	path := store.BranchesPath(auth.OwnerID(c)) + "/" + c.Params("branchId")
	raw, err := records.Get(path)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Branch not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load branch"})
	}
	var merged models.Branch
	if err := models.CheckMerge("branch", c.Params("branchId"), raw, partial, &merged); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := records.Update(path, partial); err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Branch not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update branch"})
	}
	return c.JSON(fiber.Map{"message": "Branch updated"})
}

// DeleteBranchAPI removes the branch record and everything beneath it,
// including the branch's groups.
func DeleteBranchAPI(c *fiber.Ctx) error {
	path := store.BranchesPath(auth.OwnerID(c)) + "/" + c.Params("branchId")
	if err := records.Remove(path); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete branch"})
	}
	return c.JSON(fiber.Map{"message": "Branch deleted"})
}
