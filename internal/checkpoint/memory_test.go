package checkpoint

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	record, err := store.Get(context.Background(), uuid.New(), "company_spec")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestMemoryStore_PutThenGet(t *testing.T) {
	store := NewMemoryStore()
	runID := uuid.New()

	saved := &Record{
		Task:        "company_spec",
		InputsHash:  "abc123",
		Status:      StatusCompleted,
		Result:      json.RawMessage(`{"name": "Acme"}`),
		CompletedAt: time.Now(),
	}
	require.NoError(t, store.Put(context.Background(), runID, saved))

	record, err := store.Get(context.Background(), runID, "company_spec")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, StatusCompleted, record.Status)
	assert.JSONEq(t, `{"name": "Acme"}`, string(record.Result))

	// Other runs do not see the record.
	other, err := store.Get(context.Background(), uuid.New(), "company_spec")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestMemoryStore_PutReplaces(t *testing.T) {
	store := NewMemoryStore()
	runID := uuid.New()

	require.NoError(t, store.Put(context.Background(), runID, &Record{Task: "t", Status: StatusFailed}))
	require.NoError(t, store.Put(context.Background(), runID, &Record{Task: "t", Status: StatusCompleted}))

	record, err := store.Get(context.Background(), runID, "t")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, record.Status)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	runID := uuid.New()

	require.NoError(t, store.Put(context.Background(), runID, &Record{Task: "t", Status: StatusCompleted}))

	record, err := store.Get(context.Background(), runID, "t")
	require.NoError(t, err)
	record.Status = StatusFailed

	fresh, err := store.Get(context.Background(), runID, "t")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, fresh.Status)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	runID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Put(context.Background(), runID, &Record{Task: "t", Status: StatusCompleted})
			_, _ = store.Get(context.Background(), runID, "t")
		}()
	}
	wg.Wait()

	record, err := store.Get(context.Background(), runID, "t")
	require.NoError(t, err)
	require.NotNil(t, record)
}

func TestHashInputs_StableAndOrderSensitive(t *testing.T) {
	a, err := HashInputs("company_spec", map[string]string{"prompt": "tech startup"})
	require.NoError(t, err)
	b, err := HashInputs("company_spec", map[string]string{"prompt": "tech startup"})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := HashInputs(map[string]string{"prompt": "tech startup"}, "company_spec")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	d, err := HashInputs("company_spec", map[string]string{"prompt": "bank"})
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
}
