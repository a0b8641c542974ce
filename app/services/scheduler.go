package services

import (
	"database/sql"
	"log"
	"time"

	"courtside/app/aggregate"
	"courtside/app/database"
	"courtside/app/models"
	"courtside/app/store"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB, records *store.Store) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 00:05, after the day boundary every match
			// date comparison works against
			if now.Hour() == 0 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [00:05]...")

				if err := CompleteElapsedMatches(db, records, now); err != nil {
					log.Printf("Error completing elapsed matches: %v", err)
				}
			}
		}
	}()
}

// CompleteElapsedMatches sweeps every club and marks matches whose date
// has passed as completed, so stored statuses converge even for clubs
// nobody reads. The same rule runs lazily on the match list endpoint;
// both sides are idempotent.
func CompleteElapsedMatches(db *sql.DB, records *store.Store, now time.Time) error {
	owners, err := database.ListClubOwners(db)
	if err != nil {
		return err
	}

	for _, ownerID := range owners {
		raw, err := records.Collection(store.MatchesPath(ownerID))
		if err != nil {
			log.Printf("Error loading matches for club %s: %v", ownerID, err)
			continue
		}
		matches, err := models.DecodeMatches(raw)
		if err != nil {
			log.Printf("Error decoding matches for club %s: %v", ownerID, err)
			continue
		}

		_, completedIDs := aggregate.CompleteElapsed(matches, now)
		for _, id := range completedIDs {
			path := store.MatchesPath(ownerID) + "/" + id
			if err := records.Update(path, map[string]interface{}{"status": models.MatchCompleted}); err != nil {
				log.Printf("Error completing match %s for club %s: %v", id, ownerID, err)
			}
		}
		if len(completedIDs) > 0 {
			log.Printf("Completed %d elapsed matches for club %s", len(completedIDs), ownerID)
		}
	}
	return nil
}
