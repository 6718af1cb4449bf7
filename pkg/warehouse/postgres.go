package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

// PostgresExecutor runs queries against a Postgres-hosted replica of the
// analytical schema. Used for local development and CI where BigQuery is
// not reachable.
type PostgresExecutor struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgresExecutor creates an executor from a connection string.
func NewPostgresExecutor(ctx context.Context, dsn string, logger *zap.Logger) (*PostgresExecutor, error) {
	if dsn == "" {
		return nil, fmt.Errorf("dsn is required")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return &PostgresExecutor{
		pool:   pool,
		logger: logger.Named("postgres"),
	}, nil
}

// Query implements Executor.
func (e *PostgresExecutor) Query(ctx context.Context, sqlQuery string) (*models.TabularData, error) {
	start := time.Now()

	rows, err := e.pool.Query(ctx, sqlQuery)
	if err != nil {
		e.logger.Warn("query failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	columns := make([]string, len(fds))
	for i, fd := range fds {
		columns[i] = fd.Name
	}

	var result []map[string]any
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row := make(map[string]any, len(vals))
		for i, col := range columns {
			if i < len(vals) {
				row[col] = vals[i]
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}

	e.logger.Info("query completed",
		zap.Int("rows", len(result)),
		zap.Duration("elapsed", time.Since(start)))

	return &models.TabularData{Columns: columns, Rows: result}, nil
}

// Close implements Executor.
func (e *PostgresExecutor) Close() error {
	e.pool.Close()
	return nil
}
