package warehouse

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgreSQL error codes the insert paths distinguish between. Unique
// violations on generated ids are retryable; everything else is not.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// ConstraintError represents a non-retryable constraint violation: a broken
// foreign key reference or a failed CHECK constraint. It indicates a bug in
// the insert ordering or entity wiring, not bad luck with ids.
type ConstraintError struct {
	Table string
	Cause error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation inserting into %s: %v", e.Table, e.Cause)
}

func (e *ConstraintError) Unwrap() error {
	return e.Cause
}

// RetryExhaustedError reports that id regeneration retries ran out without
// finding a free primary key.
type RetryExhaustedError struct {
	Table    string
	Attempts int
	Cause    error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("gave up inserting into %s after %d id collision(s): %v", e.Table, e.Attempts, e.Cause)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Cause
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == codeUniqueViolation
}

func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	code := string(pqErr.Code)
	return code == codeForeignKeyViolation || code == codeCheckViolation
}
