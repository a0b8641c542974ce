package models

import (
	"encoding/json"
	"sort"
)

// Branch is a physical location of the club. Groups live underneath it.
type Branch struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required"`
	Address   string `json:"address"`
	CreatedAt int64  `json:"createdAt" validate:"required"`
}

func DecodeBranches(records map[string]json.RawMessage) ([]Branch, error) {
	branches := []Branch{}
	for key, raw := range records {
		var b Branch
		if err := decodeRecord("branch", key, raw, &b); err != nil {
			return nil, err
		}
		b.ID = key
		branches = append(branches, b)
	}
	sort.Slice(branches, func(i, j int) bool {
		if branches[i].CreatedAt != branches[j].CreatedAt {
			return branches[i].CreatedAt < branches[j].CreatedAt
		}
		return branches[i].ID < branches[j].ID
	})
	return branches, nil
}
