package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the target stock row does not exist
var ErrNotFound = errors.New("stock item not found")

// ValidationError reports malformed or out-of-range input on a ledger operation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
