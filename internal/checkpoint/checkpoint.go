// Package checkpoint records completed workflow task results so an
// interrupted generation run can resume without repeating LLM calls or
// database writes. Results are keyed by run, task name, and a hash of the
// task inputs: a completed record is only reused when the inputs match.
package checkpoint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task status values.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Record is one saved task result.
type Record struct {
	Task        string          `json:"task"`
	InputsHash  string          `json:"inputs_hash"`
	Status      string          `json:"status"`
	Result      json.RawMessage `json:"result,omitempty"`
	CompletedAt time.Time       `json:"completed_at"`
}

// Store persists task records for workflow runs.
type Store interface {
	// Get returns the record for a task, or nil when none exists.
	Get(ctx context.Context, runID uuid.UUID, task string) (*Record, error)
	// Put saves or replaces the record for a task.
	Put(ctx context.Context, runID uuid.UUID, record *Record) error
}

// HashInputs produces a stable hex digest of the task inputs. Inputs are
// JSON-marshalled in argument order, so callers must pass them consistently.
func HashInputs(inputs ...any) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, input := range inputs {
		if err := enc.Encode(input); err != nil {
			return "", fmt.Errorf("failed to hash task inputs: %w", err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
