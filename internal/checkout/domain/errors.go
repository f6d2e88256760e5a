package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyTransaction is returned when every requested line was dropped
// before computation; nothing is persisted in that case.
var ErrEmptyTransaction = errors.New("no billable line items in transaction")

// ValidationError reports a malformed checkout request
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError reports a single line whose requested quantity
// exceeds the available quantity. It drops that line only.
type InsufficientStockError struct {
	ItemName  string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s: requested %d, available %d",
		e.ItemName, e.Requested, e.Available)
}

// PersistenceError reports a failed store or log write. Writes already
// applied before the failure stay in place; there is no compensation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
