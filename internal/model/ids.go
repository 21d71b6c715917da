// Package model defines the HR domain entities produced by the dataset
// generation workflow: jobs, organizational units, employees, and
// compensation packages, together with their validation invariants.
package model

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is the shared struct validator for numeric range tags.
var validate = validator.New()

// NewID returns a time-ordered (version 1) UUID. Time ordering keeps
// generated primary keys human-scannable in the warehouse; collisions are
// possible and recovered at the storage layer.
func NewID() uuid.UUID {
	id, err := uuid.NewUUID()
	if err != nil {
		// NewUUID only fails when the clock sequence cannot be read;
		// a random UUID is an acceptable substitute.
		return uuid.New()
	}
	return id
}
