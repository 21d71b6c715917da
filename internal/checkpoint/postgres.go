package checkpoint

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists records in PostgreSQL so runs can resume across
// process restarts.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool, verifies it, and ensures
// the checkpoint table exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to checkpoint database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping checkpoint database: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS dataset_run_steps (
			run_id UUID NOT NULL,
			task TEXT NOT NULL,
			inputs_hash TEXT NOT NULL,
			status TEXT NOT NULL,
			result JSONB,
			completed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (run_id, task)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint schema: %w", err)
	}
	return nil
}

// Get returns the record for a task, or nil when none exists.
func (s *PostgresStore) Get(ctx context.Context, runID uuid.UUID, task string) (*Record, error) {
	var record Record
	err := s.pool.QueryRow(ctx,
		`SELECT task, inputs_hash, status, result, completed_at
		 FROM dataset_run_steps
		 WHERE run_id = $1 AND task = $2`,
		runID, task,
	).Scan(&record.Task, &record.InputsHash, &record.Status, &record.Result, &record.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get checkpoint record: %w", err)
	}
	return &record, nil
}

// Put saves or replaces the record for a task.
func (s *PostgresStore) Put(ctx context.Context, runID uuid.UUID, record *Record) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO dataset_run_steps (run_id, task, inputs_hash, status, result, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (run_id, task)
		 DO UPDATE SET inputs_hash = $3, status = $4, result = $5, completed_at = $6`,
		runID, record.Task, record.InputsHash, record.Status, record.Result, record.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to put checkpoint record: %w", err)
	}
	return nil
}
