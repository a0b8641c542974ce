package models

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed record inside a non-empty
// collection. An empty collection is never a ValidationError.
type ValidationError struct {
	Entity string
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s record %q: %s", e.Entity, e.Key, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
