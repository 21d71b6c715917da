// Package schemas provides JSON Schema validation for the structured
// artifacts produced by the LLM: company specifications, demographic
// ratios, education assignments, and compensation packages.
//
// The schema documents are embedded into the binary so validation works
// regardless of the working directory the process was started from.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFS embed.FS

// Schema names accepted by Validate and Source.
const (
	Company             = "company"
	Ratios              = "ratios"
	EducationAssignment = "education_assignment"
	Compensation        = "compensation"
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "document does not satisfy schema %q:\n", ve.Schema)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing a schema itself.
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %q: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %q: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Source returns the raw embedded schema document. Used to inline the
// expected output shape into LLM prompts.
func Source(name string) ([]byte, error) {
	raw, err := schemaFS.ReadFile(name + ".schema.json")
	if err != nil {
		return nil, &SchemaLoadError{Schema: name, Message: "unknown schema", Cause: err}
	}
	return raw, nil
}

// Validate checks a JSON document against the named embedded schema.
// It returns a *ValidationError when the document is well-formed JSON
// but does not conform, and a *SchemaLoadError when the schema itself
// cannot be loaded.
func Validate(name string, doc []byte) error {
	raw, err := Source(name)
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewBytesLoader(raw)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Schema: name, Message: "validation failed during load", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Schema: name}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
