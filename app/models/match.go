package models

import (
	"encoding/json"
	"sort"
)

type Score struct {
	Home int `json:"home" validate:"min=0"`
	Away int `json:"away" validate:"min=0"`
}

// Match is a tenant-level fixture. Status moves upcoming -> completed
// automatically once the date is past; in_progress and completed are
// only ever set manually for score entry and are never left
// automatically.
type Match struct {
	ID        string          `json:"id"`
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string          `json:"time" validate:"omitempty,datetime=15:04"`
	Location  string          `json:"location"`
	Opponent  string          `json:"opponent" validate:"required"`
	HomeTeam  bool            `json:"homeTeam"`
	Status    MatchStatus     `json:"status" validate:"required,oneof=upcoming in_progress completed"`
	Score     *Score          `json:"score,omitempty"`
	Players   map[string]bool `json:"players,omitempty"`
	Notes     string          `json:"notes"`
	CreatedAt int64           `json:"createdAt" validate:"required"`
}

// DecodeMatches returns matches sorted by calendar date ascending.
func DecodeMatches(records map[string]json.RawMessage) ([]Match, error) {
	matches := []Match{}
	for key, raw := range records {
		var m Match
		if err := decodeRecord("match", key, raw, &m); err != nil {
			return nil, err
		}
		m.ID = key
		matches = append(matches, m)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Date != matches[j].Date {
			return matches[i].Date < matches[j].Date
		}
		return matches[i].Time < matches[j].Time
	})
	return matches, nil
}
