package model

import "fmt"

// ValidationError reports a domain entity that failed its structural or
// range invariants. It is surfaced at construction time and never repaired.
type ValidationError struct {
	Entity  string
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s: %s", e.Entity, e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
