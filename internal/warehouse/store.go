// Package warehouse persists the generated dataset to the analytical
// database: the five-table relational schema plus the insert paths used by
// the workflow and the read-only query path used by the analysis agent.
package warehouse

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Store wraps the warehouse database connection.
type Store struct {
	db *sqlx.DB
}

// Open connects to the warehouse database and verifies the connection.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open warehouse database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping warehouse database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an existing connection. Used by tests with sqlmock.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// schemaStatements create the warehouse tables. Each statement is idempotent
// so CreateSchema can run on every workflow start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		job_level TEXT NOT NULL,
		job_family TEXT NOT NULL,
		contract_type TEXT NOT NULL,
		workplace_type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS business_units (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		director_job_id UUID NOT NULL REFERENCES jobs(id)
	)`,
	`CREATE TABLE IF NOT EXISTS departments (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		manager_job_id UUID NOT NULL REFERENCES jobs(id),
		business_unit_id UUID NOT NULL REFERENCES business_units(id)
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		job_id UUID NOT NULL REFERENCES jobs(id),
		department_id UUID REFERENCES departments(id),
		business_unit_id UUID REFERENCES business_units(id),
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		birth_date DATE NOT NULL,
		gender TEXT NOT NULL,
		ethnicity TEXT NOT NULL,
		education_level TEXT,
		education_field TEXT,
		generation TEXT NOT NULL,
		CHECK ((department_id IS NOT NULL AND business_unit_id IS NULL) OR
		       (department_id IS NULL AND business_unit_id IS NOT NULL))
	)`,
	`CREATE TABLE IF NOT EXISTS compensations (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL REFERENCES employees(id),
		annual_base_salary NUMERIC(12,2) NOT NULL,
		annual_bonus_amount NUMERIC(12,2),
		annual_commission_amount NUMERIC(12,2),
		rate_type TEXT NOT NULL,
		total_compensation NUMERIC(12,2) NOT NULL
	)`,
}

// CreateSchema creates all warehouse tables. Safe to call repeatedly.
func (s *Store) CreateSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create warehouse schema: %w", err)
		}
	}
	return nil
}
