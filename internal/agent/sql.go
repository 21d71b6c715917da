package agent

import (
	"fmt"
	"strings"
	"unicode"
)

// UnsafeQueryError reports a generated statement that failed the read-only
// guard. The statement is never executed.
type UnsafeQueryError struct {
	Query  string
	Reason string
}

func (e *UnsafeQueryError) Error() string {
	return fmt.Sprintf("refusing to execute generated query: %s", e.Reason)
}

// ValidateReadOnly checks that a statement is a single read-only query.
// Only SELECT and WITH statements pass; everything else, including multiple
// statements, is rejected.
func ValidateReadOnly(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return &UnsafeQueryError{Query: query, Reason: "empty statement"}
	}

	// A single trailing semicolon is tolerated; anything after one is a
	// second statement.
	if inner := strings.TrimRight(trimmed, "; \t\n"); strings.Contains(inner, ";") {
		return &UnsafeQueryError{Query: query, Reason: "multiple statements"}
	}

	first := strings.ToUpper(firstWord(trimmed))
	if first != "SELECT" && first != "WITH" {
		return &UnsafeQueryError{Query: query, Reason: fmt.Sprintf("statement starts with %s, only SELECT/WITH are allowed", first)}
	}

	// PostgreSQL allows data-modifying CTEs, so a statement that starts
	// with WITH can still write. Reject any statement carrying a mutating
	// keyword anywhere, at the cost of refusing the odd query that only
	// mentions one in a literal.
	for _, word := range strings.FieldsFunc(trimmed, isWordBoundary) {
		if mutatingKeywords[strings.ToUpper(word)] {
			return &UnsafeQueryError{Query: query, Reason: fmt.Sprintf("statement contains %s", strings.ToUpper(word))}
		}
	}
	return nil
}

var mutatingKeywords = map[string]bool{
	"INSERT":   true,
	"UPDATE":   true,
	"DELETE":   true,
	"MERGE":    true,
	"TRUNCATE": true,
	"DROP":     true,
	"ALTER":    true,
	"CREATE":   true,
}

func isWordBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

func firstWord(s string) string {
	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '(' {
			return s[:i]
		}
	}
	return s
}
