package models

import (
	"encoding/json"
	"testing"
)

func TestDecodeAttendanceMissingPresentIsAbsent(t *testing.T) {
	records := map[string]json.RawMessage{
		"e1": json.RawMessage(`{"studentId":"s1","studentName":"Amy Jones","present":true,"timestamp":1000}`),
		"e2": json.RawMessage(`{"studentId":"s2","studentName":"Ben King","timestamp":1000}`),
	}

	entries, err := DecodeAttendanceEntries(records)
	if err != nil {
		t.Fatal(err)
	}

	byID := map[string]AttendanceEntry{}
	for _, e := range entries {
		byID[e.ID] = e
	}
	if !byID["e1"].Present {
		t.Error("e1 must be present")
	}
	if byID["e2"].Present {
		t.Error("entry without a present field must decode as absent")
	}
}

func TestDecodeAttendanceRequiresStudentID(t *testing.T) {
	records := map[string]json.RawMessage{
		"bad": json.RawMessage(`{"present":true,"timestamp":1000}`),
	}

	if _, err := DecodeAttendanceEntries(records); !IsValidation(err) {
		t.Errorf("entry without studentId must raise a ValidationError, got %v", err)
	}
}

func TestStudentFullName(t *testing.T) {
	s := Student{FirstName: "Amy", LastName: "Jones"}
	if s.FullName() != "Amy Jones" {
		t.Errorf("FullName = %q", s.FullName())
	}

	only := Student{FirstName: "Cher"}
	if only.FullName() != "Cher" {
		t.Errorf("FullName with empty last name = %q", only.FullName())
	}
}
