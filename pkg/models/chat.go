package models

// Role values for conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is a single message in the caller-owned conversation
// window. The engine never persists turns; each request carries its own.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AgentLabel identifies which specialized agent handles a question.
type AgentLabel string

// Canonical agent tokens. The router prompt instructs the model to emit
// exactly one of these.
const (
	AgentSQL       AgentLabel = "SQL_AGENT"
	AgentRetrieval AgentLabel = "RETRIEVAL_AGENT"
	AgentGeneral   AgentLabel = "GENERAL_AGENT"
)

// Valid reports whether the label is one of the three canonical tokens.
func (l AgentLabel) Valid() bool {
	switch l {
	case AgentSQL, AgentRetrieval, AgentGeneral:
		return true
	}
	return false
}

// GenerationKind discriminates the states of a QueryGeneration.
type GenerationKind int

const (
	// GenerationQuery means the model produced a SQL query.
	GenerationQuery GenerationKind = iota
	// GenerationClarification means the model asked for missing detail
	// instead of producing a query.
	GenerationClarification
	// GenerationEmpty means the model produced nothing usable.
	GenerationEmpty
)

// QueryGeneration is the parsed outcome of the SQL generation step.
// Exactly one state holds: a query, a clarification question, or empty.
type QueryGeneration struct {
	Kind          GenerationKind
	Query         string
	Clarification string
}

// GlossaryEntry is a single business-term definition. Entries are static,
// loaded at process start, and never mutated.
type GlossaryEntry struct {
	Term       string   `yaml:"term" json:"term"`
	Aliases    []string `yaml:"aliases" json:"aliases,omitempty"`
	Definition string   `yaml:"definition" json:"definition"`
}
