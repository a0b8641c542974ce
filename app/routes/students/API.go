package students

import (
	"time"

	"courtside/app/models"
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

func ListStudentsAPI(c *fiber.Ctx) error {
	raw, err := records.Collection(store.StudentsPath(auth.OwnerID(c), c.Params("groupId")))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load students"})
	}
	students, err := models.DecodeStudents(raw)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(students)
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	student.ID = ""
	student.GroupID = c.Params("groupId")
	student.CreatedAt = time.Now().UnixMilli()
	if err := models.Validate(student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	key, err := records.Append(store.StudentsPath(auth.OwnerID(c), student.GroupID), student)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	student.ID = key
	return c.Status(201).JSON(student)
}

// UpdateStudentAPI edits the student record in place. Historical
// attendance entries keep the studentName they were written with.
func UpdateStudentAPI(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	partial := map[string]interface{}{}
	for _, field := range []string{"firstName", "lastName", "dateOfBirth", "parentName", "parentPhone", "email"} {
		if v, ok := body[field]; ok {
			partial[field] = v
		}
	}
	if len(partial) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Nothing to update"})
	}

	path := store.StudentsPath(auth.OwnerID(c), c.Params("groupId")) + "/" + c.Params("studentId")
	raw, err := records.Get(path)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load student"})
	}
	var merged models.Student
	if err := models.CheckMerge("student", c.Params("studentId"), raw, partial, &merged); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := records.Update(path, partial); err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(fiber.Map{"message": "Student updated"})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	path := store.StudentsPath(auth.OwnerID(c), c.Params("groupId")) + "/" + c.Params("studentId")
	if err := records.Remove(path); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}
