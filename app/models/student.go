package models

import (
	"encoding/json"
	"sort"
	"strings"
)

// Student belongs to exactly one group.
type Student struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	ParentName  string `json:"parentName"`
	ParentPhone string `json:"parentPhone"`
	Email       string `json:"email" validate:"omitempty,email"`
	GroupID     string `json:"groupId" validate:"required"`
	CreatedAt   int64  `json:"createdAt" validate:"required"`
}

// FullName joins first and last name for display and for the
// denormalized studentName written into attendance entries.
func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

func DecodeStudents(records map[string]json.RawMessage) ([]Student, error) {
	students := []Student{}
	for key, raw := range records {
		var s Student
		if err := decodeRecord("student", key, raw, &s); err != nil {
			return nil, err
		}
		s.ID = key
		students = append(students, s)
	}
	sort.Slice(students, func(i, j int) bool {
		if students[i].FirstName != students[j].FirstName {
			return students[i].FirstName < students[j].FirstName
		}
		return students[i].LastName < students[j].LastName
	})
	return students, nil
}
