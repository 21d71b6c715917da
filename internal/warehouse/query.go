package warehouse

import (
	"context"
	"fmt"
)

// Dataset is the tabular result of a read-only query, shaped for JSON
// serialization in agent responses.
type Dataset struct {
	Columns []string `json:"columns"`
	Data    [][]any  `json:"data"`
}

// Query runs a read-only query and collects the full result set. Callers are
// expected to have validated the statement as read-only first.
func (s *Store) Query(ctx context.Context, query string) (*Dataset, error) {
	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	dataset := &Dataset{Columns: columns, Data: [][]any{}}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		for i, v := range values {
			// Drivers hand back []byte for text and numeric columns.
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		dataset.Data = append(dataset.Data, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate result rows: %w", err)
	}
	return dataset, nil
}
