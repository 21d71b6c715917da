package llm

import "fmt"

// GenerationError represents a structured generation attempt that exhausted
// its retry budget without producing a schema-conformant document.
type GenerationError struct {
	Schema   string
	Attempts int
	Cause    error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("structured generation for %q failed after %d attempt(s): %v", e.Schema, e.Attempts, e.Cause)
	}
	return fmt.Sprintf("structured generation for %q failed after %d attempt(s)", e.Schema, e.Attempts)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
