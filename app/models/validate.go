package models

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the struct tags of an incoming entity before it is
// written to the record store.
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// CheckMerge verifies that overlaying partial onto the stored record
// still decodes and validates as out, mirroring the store's shallow
// top-level merge. Rejecting a partial update here keeps every later
// read of the collection decodable.
func CheckMerge(entity, key string, raw json.RawMessage, partial map[string]interface{}, out interface{}) error {
	merged := map[string]interface{}{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return &ValidationError{Entity: entity, Key: key, Reason: err.Error()}
	}
	for field, value := range partial {
		merged[field] = value
	}
	data, err := json.Marshal(merged)
	if err != nil {
		return &ValidationError{Entity: entity, Key: key, Reason: err.Error()}
	}
	return decodeRecord(entity, key, data, out)
}

// decodeRecord unmarshals and validates one raw record. Malformed JSON
// (including non-numeric values in numeric fields) and constraint
// violations both surface as a ValidationError rather than a zeroed or
// NaN field leaking into aggregation.
func decodeRecord(entity, key string, raw json.RawMessage, out interface{}) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return &ValidationError{Entity: entity, Key: key, Reason: err.Error()}
	}
	if err := validate.Struct(out); err != nil {
		return &ValidationError{Entity: entity, Key: key, Reason: err.Error()}
	}
	return nil
}
