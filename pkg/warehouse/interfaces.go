// Package warehouse provides read-only access to the analytical warehouse
// the generated SQL runs against. The schema is fixed and externally
// managed; this package only executes queries and shapes results.
package warehouse

import (
	"context"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

// Executor runs a free-text query against the warehouse.
// Each implementation owns its connection and must be closed when done.
// Queries are passed verbatim; malformed SQL surfaces as the execution
// error, never as a panic.
type Executor interface {
	// Query runs the statement and returns a rectangular row-set.
	Query(ctx context.Context, sqlQuery string) (*models.TabularData, error)

	// Close releases the warehouse connection.
	Close() error
}

// Ensure implementations satisfy Executor at compile time.
var (
	_ Executor = (*BigQueryExecutor)(nil)
	_ Executor = (*PostgresExecutor)(nil)
	_ Executor = (*MockExecutor)(nil)
)
