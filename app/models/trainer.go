package models

import (
	"encoding/json"
	"sort"
)

// Trainer may be assigned to any number of groups. Groups is a set of
// group ids; removing an assignment never touches historical attendance
// or progress records.
type Trainer struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"firstName" validate:"required"`
	LastName       string          `json:"lastName" validate:"required"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Phone          string          `json:"phone"`
	Specialization string          `json:"specialization"`
	Groups         map[string]bool `json:"groups,omitempty"`
	CreatedAt      int64           `json:"createdAt" validate:"required"`
}

func DecodeTrainers(records map[string]json.RawMessage) ([]Trainer, error) {
	trainers := []Trainer{}
	for key, raw := range records {
		var t Trainer
		if err := decodeRecord("trainer", key, raw, &t); err != nil {
			return nil, err
		}
		t.ID = key
		trainers = append(trainers, t)
	}
	sort.Slice(trainers, func(i, j int) bool {
		if trainers[i].FirstName != trainers[j].FirstName {
			return trainers[i].FirstName < trainers[j].FirstName
		}
		return trainers[i].LastName < trainers[j].LastName
	})
	return trainers, nil
}
