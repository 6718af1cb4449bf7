package models

// ExecutionResult captures the outcome of running a generated query.
// Both fields absent is valid: the query was never executed (non-SQL path
// or generation did not produce a query).
type ExecutionResult struct {
	Rows  *TabularData
	Error string
}

// TabularData is a rectangular result set from the warehouse, with column
// order preserved from the query.
type TabularData struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// Empty reports whether the result set has no rows.
func (t *TabularData) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// FinalResponse is the uniform response shape the orchestrator returns for
// every request. Constructed once per request, immutable after creation.
type FinalResponse struct {
	Text           string       `json:"answer"`
	TabularData    *TabularData `json:"data,omitempty"`
	GeneratedQuery string       `json:"sql,omitempty"`
	Agent          AgentLabel   `json:"agent,omitempty"`
	ChartType      ChartType    `json:"chart,omitempty"`
	Sources        []string     `json:"sources,omitempty"`
}

// ChartType is a rendering hint derived from result columns. The engine
// only sniffs column names; actual chart rendering belongs to the front end.
type ChartType string

const (
	ChartNone ChartType = ""
	ChartMap  ChartType = "map"
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
)
