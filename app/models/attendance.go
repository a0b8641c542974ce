package models

import "encoding/json"

// AttendanceEntry is one student's mark for a group session, stored
// under attendance/{groupId}/{YYYYMMDD}/{HH_MM}. StudentName is a
// deliberate denormalization: renaming a student does not rewrite
// historical entries. A missing present field decodes as absent.
type AttendanceEntry struct {
	ID          string `json:"id"`
	StudentID   string `json:"studentId" validate:"required"`
	StudentName string `json:"studentName"`
	Present     bool   `json:"present"`
	Timestamp   int64  `json:"timestamp"`
}

func DecodeAttendanceEntries(records map[string]json.RawMessage) ([]AttendanceEntry, error) {
	entries := []AttendanceEntry{}
	for key, raw := range records {
		var e AttendanceEntry
		if err := decodeRecord("attendance", key, raw, &e); err != nil {
			return nil, err
		}
		e.ID = key
		entries = append(entries, e)
	}
	return entries, nil
}
