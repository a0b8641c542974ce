package models

import (
	"encoding/json"
	"sort"
)

// Group is a training group within a branch.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity" validate:"required,gt=0"`
	AgeGroup    string `json:"ageGroup"`
	Schedule    string `json:"schedule"`
	BranchID    string `json:"branchId" validate:"required"`
	CreatedAt   int64  `json:"createdAt" validate:"required"`
}

func DecodeGroups(records map[string]json.RawMessage) ([]Group, error) {
	groups := []Group{}
	for key, raw := range records {
		var g Group
		if err := decodeRecord("group", key, raw, &g); err != nil {
			return nil, err
		}
		g.ID = key
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].CreatedAt != groups[j].CreatedAt {
			return groups[i].CreatedAt < groups[j].CreatedAt
		}
		return groups[i].ID < groups[j].ID
	})
	return groups, nil
}
