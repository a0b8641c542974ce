package aggregate

import (
	"testing"
	"time"

	"courtside/app/models"
)

func TestCompleteElapsed(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	matches := []models.Match{
		{ID: "past", Date: "2024-03-01", Status: models.MatchUpcoming},
		{ID: "future", Date: "2024-03-20", Status: models.MatchUpcoming},
		{ID: "live", Date: "2024-03-01", Status: models.MatchInProgress},
		{ID: "done", Date: "2024-02-01", Status: models.MatchCompleted},
	}

	updated, completedIDs := CompleteElapsed(matches, now)

	if len(completedIDs) != 1 || completedIDs[0] != "past" {
		t.Fatalf("completedIDs = %v, want [past]", completedIDs)
	}
	if updated[0].Status != models.MatchCompleted {
		t.Error("elapsed upcoming match must become completed")
	}
	if updated[1].Status != models.MatchUpcoming {
		t.Error("future match must stay upcoming")
	}
	if updated[2].Status != models.MatchInProgress {
		t.Error("in_progress match must never be auto-completed")
	}
	if matches[0].Status != models.MatchUpcoming {
		t.Error("input slice must not be mutated")
	}
}

func TestCompleteElapsedIdempotent(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	matches := []models.Match{
		{ID: "a", Date: "2024-03-01", Status: models.MatchUpcoming},
		{ID: "b", Date: "2024-03-20", Status: models.MatchUpcoming},
	}

	once, firstIDs := CompleteElapsed(matches, now)
	twice, secondIDs := CompleteElapsed(once, now)

	if len(firstIDs) != 1 {
		t.Fatalf("first pass completed %v, want one id", firstIDs)
	}
	if len(secondIDs) != 0 {
		t.Errorf("second pass completed %v, want none", secondIDs)
	}
	for i := range once {
		if once[i].Status != twice[i].Status {
			t.Errorf("match %s status changed on second pass", once[i].ID)
		}
	}
}

func TestFilterMatchesByStatus(t *testing.T) {
	matches := []models.Match{
		{ID: "a", Status: models.MatchUpcoming},
		{ID: "b", Status: models.MatchCompleted},
		{ID: "c", Status: models.MatchUpcoming},
	}

	if got := FilterMatchesByStatus(matches, "upcoming"); len(got) != 2 {
		t.Errorf("upcoming filter returned %d matches, want 2", len(got))
	}
	if got := FilterMatchesByStatus(matches, ""); len(got) != 3 {
		t.Errorf("empty status must keep everything, got %d", len(got))
	}
	if got := FilterMatchesByStatus(matches, "all"); len(got) != 3 {
		t.Errorf(`"all" must keep everything, got %d`, len(got))
	}
	if got := FilterMatchesByStatus(matches, "in_progress"); len(got) != 0 {
		t.Errorf("in_progress filter returned %d matches, want 0", len(got))
	}
}
