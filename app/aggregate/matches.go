package aggregate

import (
	"time"

	"courtside/app/models"
)

// CompleteElapsed applies the one automatic match transition: an
// upcoming match whose date is already past becomes completed. The
// returned slice is a copy with statuses applied; completedIDs names
// the matches that changed so the caller can write the transition
// back. Applying the rule twice on the same snapshot changes nothing
// the second time, and in_progress/completed matches are never touched.
func CompleteElapsed(matches []models.Match, now time.Time) (updated []models.Match, completedIDs []string) {
	updated = make([]models.Match, len(matches))
	copy(updated, matches)

	for i, m := range updated {
		if m.Status != models.MatchUpcoming {
			continue
		}
		date, err := time.ParseInLocation("2006-01-02", m.Date, now.Location())
		if err != nil {
			continue
		}
		if date.Before(now) {
			updated[i].Status = models.MatchCompleted
			completedIDs = append(completedIDs, m.ID)
		}
	}
	return updated, completedIDs
}

// FilterMatchesByStatus keeps matches with the given status; an empty
// status keeps everything.
func FilterMatchesByStatus(matches []models.Match, status string) []models.Match {
	if status == "" || status == "all" {
		return matches
	}
	filtered := []models.Match{}
	for _, m := range matches {
		if string(m.Status) == status {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
