package warehouse

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/config"
)

// NewExecutor creates the executor for the configured warehouse driver.
// Returns Executor interface to enable dependency injection of mocks.
func NewExecutor(ctx context.Context, cfg *config.WarehouseConfig, logger *zap.Logger) (Executor, error) {
	switch cfg.Driver {
	case "bigquery":
		executor, err := NewBigQueryExecutor(ctx, cfg.ProjectID, cfg.Location, logger)
		if err != nil {
			return nil, fmt.Errorf("create bigquery executor: %w", err)
		}
		return executor, nil
	case "postgres":
		executor, err := NewPostgresExecutor(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("create postgres executor: %w", err)
		}
		return executor, nil
	default:
		return nil, fmt.Errorf("unsupported warehouse driver %q", cfg.Driver)
	}
}
