package groups

import (
	"time"

	"courtside/app/models"
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

func ListGroupsAPI(c *fiber.Ctx) error {
	raw, err := records.Collection(store.GroupsPath(auth.OwnerID(c), c.Params("branchId")))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load groups"})
	}
	groups, err := models.DecodeGroups(raw)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(groups)
}

func CreateGroupAPI(c *fiber.Ctx) error {
	var group models.Group
	if err := c.BodyParser(&group); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	group.ID = ""
	group.BranchID = c.Params("branchId")
	group.CreatedAt = time.Now().UnixMilli()
	if err := models.Validate(group); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	key, err := records.Append(store.GroupsPath(auth.OwnerID(c), group.BranchID), group)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create group"})
	}

	group.ID = key
	return c.Status(201).JSON(group)
}

func UpdateGroupAPI(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	partial := map[string]interface{}{}
	for _, field := range []string{"name", "description", "capacity", "ageGroup", "schedule"} {
		if v, ok := body[field]; ok {
			partial[field] = v
		}
	}
	if len(partial) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Nothing to update"})
	}

	path := store.GroupsPath(auth.OwnerID(c), c.Params("branchId")) + "/" + c.Params("groupId")
	raw, err := records.Get(path)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load group"})
	}
	var merged models.Group
	if err := models.CheckMerge("group", c.Params("groupId"), raw, partial, &merged); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := records.Update(path, partial); err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update group"})
	}
	return c.JSON(fiber.Map{"message": "Group updated"})
}

// DeleteGroupAPI removes the group record only. Students, attendance
// and progress keep their historical records under the old group id.
func DeleteGroupAPI(c *fiber.Ctx) error {
	path := store.GroupsPath(auth.OwnerID(c), c.Params("branchId")) + "/" + c.Params("groupId")
	if err := records.Remove(path); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete group"})
	}
	return c.JSON(fiber.Map{"message": "Group deleted"})
}
