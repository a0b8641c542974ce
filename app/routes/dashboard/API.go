package dashboard

import (
	"fmt"
	"log"
	"strings"
	"time"

	"courtside/app/aggregate"
	"courtside/app/models"
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

// StatsAPI assembles the dashboard in one response: entity counts,
// ledger totals, the monthly trend and the upcoming match count.
func StatsAPI(c *fiber.Ctx) error {
	ownerID := auth.OwnerID(c)

	branchCount, groupCount, err := countBranchesAndGroups(ownerID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load branches"})
	}

	studentCount, err := countStudents(ownerID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load students"})
	}

	rawTrainers, err := records.Collection(store.TrainersPath(ownerID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load trainers"})
	}

	rawPayments, err := records.Collection(store.PaymentsPath(ownerID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payments"})
	}
	payments, err := models.DecodePayments(rawPayments)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	income, expenses := aggregate.Totals(payments)

	rawMatches, err := records.Collection(store.MatchesPath(ownerID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load matches"})
	}
	matches, err := models.DecodeMatches(rawMatches)
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
	upcoming := len(aggregate.FilterMatchesByStatus(matches, string(models.MatchUpcoming)))

	return c.JSON(fiber.Map{
		"branchCount":     branchCount,
		"groupCount":      groupCount,
		"studentCount":    studentCount,
		"trainerCount":    len(rawTrainers),
		"totalIncome":     income,
		"totalExpenses":   expenses,
		"netProfit":       income - expenses,
		"monthlyStats":    aggregate.MonthlyBuckets(payments),
		"upcomingMatches": upcoming,
	})
}

// countBranchesAndGroups walks the branches subtree once. A relative
// key with a single segment is a branch record; {branchId}/groups/{id}
// is a group record.
func countBranchesAndGroups(ownerID string) (branches, groups int, err error) {
	tree, err := records.Tree(store.BranchesPath(ownerID))
	if err != nil {
		return 0, 0, err
	}
	for rel := range tree {
		switch strings.Count(rel, "/") {
		case 0:
			branches++
		case 2:
			groups++
		default:
			return 0, 0, fmt.Errorf("unexpected branches record %q", rel)
		}
	}
	return branches, groups, nil
}

// countStudents counts {groupId}/{studentId} records across all groups.
func countStudents(ownerID string) (int, error) {
	tree, err := records.Tree(store.StudentsRootPath(ownerID))
	if err != nil {
		return 0, err
	}
	count := 0
	for rel := range tree {
		if strings.Count(rel, "/") == 1 {
			count++
		}
	}
	return count, nil
}
