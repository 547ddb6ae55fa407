package model

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a lookup by id or key matched nothing.
var ErrNotFound = errors.New("not found")

// ConflictError reports a uniqueness violation: duplicate email,
// duplicate skill or duplicate language name.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

// ValidationError reports a field constraint violation detected before
// any write is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
