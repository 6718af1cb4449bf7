package warehouse

import (
	"context"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

// MockExecutor is a configurable mock for testing query execution.
// Set the function field to control behavior in tests.
type MockExecutor struct {
	// QueryFunc is called when Query is invoked.
	// If nil, returns an empty result set and nil error.
	QueryFunc func(ctx context.Context, sqlQuery string) (*models.TabularData, error)

	// Call tracking for verification
	QueryCalls int
	// Queries records each statement passed to Query.
	Queries []string
}

// NewMockExecutor creates a new mock executor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

// Query implements Executor.
func (m *MockExecutor) Query(ctx context.Context, sqlQuery string) (*models.TabularData, error) {
	m.QueryCalls++
	m.Queries = append(m.Queries, sqlQuery)
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, sqlQuery)
	}
	return &models.TabularData{}, nil
}

// Close implements Executor.
func (m *MockExecutor) Close() error {
	return nil
}

// Reset clears call tracking.
func (m *MockExecutor) Reset() {
	m.QueryCalls = 0
	m.Queries = nil
}
