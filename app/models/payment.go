package models

import (
	"encoding/json"
	"sort"
)

// Payment is a single income or expense movement on the club ledger.
// CreatedAt and PaidAt are epoch milliseconds; DueDate is a calendar
// date (YYYY-MM-DD) with no time component.
type Payment struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount" validate:"required,gt=0"`
	Type        PaymentType     `json:"type" validate:"required,oneof=income expense"`
	Category    PaymentCategory `json:"category" validate:"required,oneof=membership training tournament equipment facility salary other"`
	Status      PaymentStatus   `json:"status" validate:"required,oneof=pending completed failed refunded"`
	Description string          `json:"description"`
	StudentID   string          `json:"studentId,omitempty"`
	TrainerID   string          `json:"trainerId,omitempty"`
	DueDate     string          `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PaidAt      int64           `json:"paidAt,omitempty"`
	CreatedAt   int64           `json:"createdAt" validate:"required"`
}

// DecodePayments converts a raw payments snapshot into typed records,
// newest first. An empty collection is legitimate and yields an empty
// slice; a malformed entry inside a non-empty collection is an error.
func DecodePayments(records map[string]json.RawMessage) ([]Payment, error) {
	payments := []Payment{}
	for key, raw := range records {
		var p Payment
		if err := decodeRecord("payment", key, raw, &p); err != nil {
			return nil, err
		}
		p.ID = key
		payments = append(payments, p)
	}
	sort.Slice(payments, func(i, j int) bool {
		if payments[i].CreatedAt != payments[j].CreatedAt {
			return payments[i].CreatedAt > payments[j].CreatedAt
		}
		return payments[i].ID < payments[j].ID
	})
	return payments, nil
}
