package checkpoint

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps records in process memory. It is the default store:
// resumption then only works within a single process lifetime.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]map[string]*Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[uuid.UUID]map[string]*Record)}
}

// Get returns the record for a task, or nil when none exists.
func (m *MemoryStore) Get(ctx context.Context, runID uuid.UUID, task string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[runID][task]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

// Put saves or replaces the record for a task.
func (m *MemoryStore) Put(ctx context.Context, runID uuid.UUID, record *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, ok := m.records[runID]
	if !ok {
		run = make(map[string]*Record)
		m.records[runID] = run
	}
	copied := *record
	run[record.Task] = &copied
	return nil
}
