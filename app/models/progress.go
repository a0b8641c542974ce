package models

import (
	"encoding/json"
	"sort"
)

// ProgressRecord is an append-only measurement entry for a student.
type ProgressRecord struct {
	ID            string  `json:"id"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Height        float64 `json:"height" validate:"omitempty,gt=0"`
	Weight        float64 `json:"weight" validate:"omitempty,gt=0"`
	VerticalJump  float64 `json:"verticalJump" validate:"omitempty,gte=0"`
	SpeedTest     float64 `json:"speedTest" validate:"omitempty,gte=0"`
	AcademicScore int     `json:"academicScore" validate:"min=0,max=100"`
	Notes         string  `json:"notes"`
	CreatedAt     int64   `json:"createdAt" validate:"required"`
}

func DecodeProgressRecords(records map[string]json.RawMessage) ([]ProgressRecord, error) {
	progress := []ProgressRecord{}
	for key, raw := range records {
		var p ProgressRecord
		if err := decodeRecord("progress", key, raw, &p); err != nil {
			return nil, err
		}
		p.ID = key
		progress = append(progress, p)
	}
	sort.Slice(progress, func(i, j int) bool {
		if progress[i].Date != progress[j].Date {
			return progress[i].Date < progress[j].Date
		}
		return progress[i].CreatedAt < progress[j].CreatedAt
	})
	return progress, nil
}
