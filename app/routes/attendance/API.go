package attendance

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"courtside/app/aggregate"
	"courtside/app/models"
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

type sessionRow struct {
	Date     string                      `json:"date"`
	TimeSlot string                      `json:"timeSlot"`
	Entries  []models.AttendanceEntry    `json:"entries"`
	Summary  aggregate.AttendanceSummary `json:"summary"`
}

// ListAttendanceAPI flattens the group's attendance tree into one row
// per session, newest date first.
func ListAttendanceAPI(c *fiber.Ctx) error {
	ownerID := auth.OwnerID(c)
	groupID := c.Params("groupId")

	tree, err := records.Tree(store.AttendanceGroupPath(ownerID, groupID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load attendance"})
	}

	// Relative keys are {YYYYMMDD}/{HH_MM}/{entryId}.
	sessions := map[string]map[string]json.RawMessage{}
	for rel, raw := range tree {
		parts := strings.Split(rel, "/")
		if len(parts) != 3 {
			continue
		}
		session := parts[0] + "/" + parts[1]
		if sessions[session] == nil {
			sessions[session] = map[string]json.RawMessage{}
		}
		sessions[session][parts[2]] = raw
	}

	rows := []sessionRow{}
	for session, rawEntries := range sessions {
		entries, err := models.DecodeAttendanceEntries(rawEntries)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].StudentName < entries[j].StudentName
		})
		parts := strings.SplitN(session, "/", 2)
		rows = append(rows, sessionRow{
			Date:     displayDate(parts[0]),
			TimeSlot: displaySlot(parts[1]),
			Entries:  entries,
			Summary:  aggregate.SummarizeAttendance(entries),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		return rows[i].TimeSlot < rows[j].TimeSlot
	})
	return c.JSON(rows)
}

// MarkAttendanceAPI replaces the session's entries. Every entry is
// written with the student's current name; later renames do not rewrite
// history.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	type markEntry struct {
		StudentID string `json:"studentId"`
		Present   bool   `json:"present"`
	}
	type MarkRequest struct {
		Date     string      `json:"date"`
		TimeSlot string      `json:"timeSlot"`
		Entries  []markEntry `json:"entries"`
	}

	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	dk, ok := dateKey(req.Date)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Date must be YYYY-MM-DD"})
	}
	sk, ok := slotKey(req.TimeSlot)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Time slot must be HH:MM"})
	}
	if len(req.Entries) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No entries to mark"})
	}

	ownerID := auth.OwnerID(c)
	groupID := c.Params("groupId")

	rawStudents, err := records.Collection(store.StudentsPath(ownerID, groupID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load students"})
	}
	students, err := models.DecodeStudents(rawStudents)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	names := map[string]string{}
	for _, s := range students {
		names[s.ID] = s.FullName()
	}

	slotPath := store.AttendanceSlotPath(ownerID, groupID, dk, sk)
	if err := records.Remove(slotPath); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to clear session"})
	}

	now := time.Now().UnixMilli()
	for _, e := range req.Entries {
		if e.StudentID == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Entry is missing studentId"})
		}
		entry := models.AttendanceEntry{
			StudentID:   e.StudentID,
			StudentName: names[e.StudentID],
			Present:     e.Present,
			Timestamp:   now,
		}
		if _, err := records.Append(slotPath, entry); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Attendance saved",
		"marked":  len(req.Entries),
	})
}

func GetSessionAPI(c *fiber.Ctx) error {
	dk, ok := dateKey(c.Params("date"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Date must be YYYY-MM-DD"})
	}
	sk, ok := slotKey(displaySlot(c.Params("timeSlot")))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Time slot must be HH:MM or HH_MM"})
	}

	raw, err := records.Collection(store.AttendanceSlotPath(auth.OwnerID(c), c.Params("groupId"), dk, sk))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load session"})
	}
	entries, err := models.DecodeAttendanceEntries(raw)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].StudentName < entries[j].StudentName
	})

	return c.JSON(sessionRow{
		Date:     displayDate(dk),
		TimeSlot: displaySlot(sk),
		Entries:  entries,
		Summary:  aggregate.SummarizeAttendance(entries),
	})
}
