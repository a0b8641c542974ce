package matches

import (
	"log"
	"time"

	"courtside/app/aggregate"
	"courtside/app/models"
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

// ListMatchesAPI returns the club's matches, optionally filtered by
// ?status=. Matches whose date has passed are reported as completed and
// the transition is written back, so the stored status converges on the
// next read even if the scheduler never ran.
func ListMatchesAPI(c *fiber.Ctx) error {
	ownerID := auth.OwnerID(c)

	raw, err := records.Collection(store.MatchesPath(ownerID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load matches"})
	}
	matches, err := models.DecodeMatches(raw)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	matches, completedIDs := aggregate.CompleteElapsed(matches, time.Now())
	for _, id := range completedIDs {
		path := store.MatchesPath(ownerID) + "/" + id
		if err := records.Update(path, map[string]interface{}{"status": models.MatchCompleted}); err != nil {
			log.Printf("match status write-back failed for %s: %v", id, err)
		}
	}

	return c.JSON(aggregate.FilterMatchesByStatus(matches, c.Query("status")))
}

func CreateMatchAPI(c *fiber.Ctx) error {
	var match models.Match
	if err := c.BodyParser(&match); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	match.ID = ""
	if match.Status == "" {
		match.Status = models.MatchUpcoming
	}
	match.CreatedAt = time.Now().UnixMilli()
	if err := models.Validate(match); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	key, err := records.Append(store.MatchesPath(auth.OwnerID(c)), match)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create match"})
	}

	match.ID = key
	return c.Status(201).JSON(match)
}

func UpdateMatchAPI(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	partial := map[string]interface{}{}
	for _, field := range []string{"date", "time", "location", "opponent", "homeTeam", "status", "score", "players", "notes"} {
		if v, ok := body[field]; ok {
			partial[field] = v
		}
	}
	if len(partial) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Nothing to update"})
	}

	path := store.MatchesPath(auth.OwnerID(c)) + "/" + c.Params("matchId")
	raw, err := records.Get(path)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Match not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load match"})
	}
	var merged models.Match
	if err := models.CheckMerge("match", c.Params("matchId"), raw, partial, &merged); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := records.Update(path, partial); err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Match not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update match"})
	}
	return c.JSON(fiber.Map{"message": "Match updated"})
}

func DeleteMatchAPI(c *fiber.Ctx) error {
	path := store.MatchesPath(auth.OwnerID(c)) + "/" + c.Params("matchId")
	if err := records.Remove(path); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete match"})
	}
	return c.JSON(fiber.Map{"message": "Match deleted"})
}
