package warehouse

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

// BigQueryExecutor runs queries against a BigQuery dataset.
type BigQueryExecutor struct {
	client   *bigquery.Client
	location string
	logger   *zap.Logger
}

// NewBigQueryExecutor creates an executor bound to a project and location.
// Credentials come from the ambient environment (ADC).
func NewBigQueryExecutor(ctx context.Context, projectID, location string, logger *zap.Logger) (*BigQueryExecutor, error) {
	if projectID == "" {
		return nil, fmt.Errorf("project_id is required")
	}

	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("create bigquery client: %w", err)
	}

	return &BigQueryExecutor{
		client:   client,
		location: location,
		logger:   logger.Named("bigquery"),
	}, nil
}

// Query implements Executor.
func (e *BigQueryExecutor) Query(ctx context.Context, sqlQuery string) (*models.TabularData, error) {
	q := e.client.Query(sqlQuery)
	q.Location = e.location

	start := time.Now()
	it, err := q.Read(ctx)
	if err != nil {
		e.logger.Warn("query failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("execute query: %w", err)
	}

	var (
		columns []string
		rows    []map[string]any
	)
	for {
		var vals []bigquery.Value
		err := it.Next(&vals)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate results: %w", err)
		}
		if columns == nil {
			for _, field := range it.Schema {
				columns = append(columns, field.Name)
			}
		}
		row := make(map[string]any, len(vals))
		for i, field := range it.Schema {
			if i < len(vals) {
				row[field.Name] = vals[i]
			}
		}
		rows = append(rows, row)
	}

	// Zero-row results still carry a schema once iteration finishes.
	if columns == nil {
		for _, field := range it.Schema {
			columns = append(columns, field.Name)
		}
	}

	e.logger.Info("query completed",
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(start)))

	return &models.TabularData{Columns: columns, Rows: rows}, nil
}

// Close implements Executor.
func (e *BigQueryExecutor) Close() error {
	return e.client.Close()
}
