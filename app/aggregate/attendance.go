package aggregate

import "courtside/app/models"

// AttendanceSummary is the present/absent split of one session.
type AttendanceSummary struct {
	PresentCount int `json:"presentCount"`
	AbsentCount  int `json:"absentCount"`
}

// SummarizeAttendance partitions the entries of one session by the
// present flag. Entries that never carried the field decode as absent,
// so PresentCount+AbsentCount always equals the entry count.
func SummarizeAttendance(entries []models.AttendanceEntry) AttendanceSummary {
	summary := AttendanceSummary{}
	for _, e := range entries {
		if e.Present {
			summary.PresentCount++
		} else {
			summary.AbsentCount++
		}
	}
	return summary
}
