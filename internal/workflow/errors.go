package workflow

import "fmt"

// SpecificationError represents a failure to obtain a valid company
// specification or demographic ratios from the structured-generation
// capability. Fatal to the run.
type SpecificationError struct {
	Stage string
	Cause error
}

func (e *SpecificationError) Error() string {
	return fmt.Sprintf("failed to generate %s: %v", e.Stage, e.Cause)
}

func (e *SpecificationError) Unwrap() error {
	return e.Cause
}

// ExpansionError represents a failure while generating one employee's
// education, compensation, or insert chain. A missing employee is a
// data-integrity gap, so the error fails the enclosing run rather than being
// skipped.
type ExpansionError struct {
	Task  string
	Cause error
}

func (e *ExpansionError) Error() string {
	return fmt.Sprintf("employee expansion %s failed: %v", e.Task, e.Cause)
}

func (e *ExpansionError) Unwrap() error {
	return e.Cause
}
