package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/glossary"
	"github.com/coldsight-ai/coldsight-engine/pkg/llm"
	"github.com/coldsight-ai/coldsight-engine/pkg/models"
	"github.com/coldsight-ai/coldsight-engine/pkg/prompts"
	"github.com/coldsight-ai/coldsight-engine/pkg/warehouse"
)

// Fixed user-facing strings of the SQL path.
const (
	// GenerationFailureResponse is returned when the model produced no
	// usable query.
	GenerationFailureResponse = "SQL 생성 실패: 질문을 이해하지 못했습니다."

	// ExecutionErrorPrefix prefixes warehouse failures surfaced to the user.
	ExecutionErrorPrefix = "쿼리 실행 중 오류가 발생했습니다: "

	// ErrWarehouseUnavailable is the execution error text when no warehouse
	// client is configured.
	ErrWarehouseUnavailable = "warehouse client is not configured"

	// ErrLLMUnavailable is the error text when no LLM client is configured.
	ErrLLMUnavailable = "llm client is not configured"
)

// SQLAgentResult carries every intermediate outcome of the SQL path so the
// orchestrator can choose what to surface.
type SQLAgentResult struct {
	Question        string
	GeneratedSQL    string
	Clarification   string
	NaturalResponse string
	models.ExecutionResult
}

// SQLAgent generates a query for a question, executes it, and synthesizes
// a natural-language answer. Process never returns an error: every failure
// mode is captured in the result.
type SQLAgent interface {
	Process(ctx context.Context, question string, history []models.ConversationTurn) *SQLAgentResult
}

type sqlAgent struct {
	llmClient   llm.Client
	executor    warehouse.Executor
	synthesizer ResultSynthesizer
	store       *glossary.Store
	qualifier   string
	temperature float64
	window      int
	logger      *zap.Logger
}

// NewSQLAgent creates a SQLAgent. The executor may be nil (warehouse not
// configured); generation still runs and execution reports the fixed
// unavailable error. qualifier prefixes table names in the prompt, e.g.
// "coldsight-prod.coldchain".
func NewSQLAgent(
	llmClient llm.Client,
	executor warehouse.Executor,
	synthesizer ResultSynthesizer,
	store *glossary.Store,
	qualifier string,
	temperature float64,
	window int,
	logger *zap.Logger,
) SQLAgent {
	return &sqlAgent{
		llmClient:   llmClient,
		executor:    executor,
		synthesizer: synthesizer,
		store:       store,
		qualifier:   qualifier,
		temperature: temperature,
		window:      window,
		logger:      logger.Named("sql-agent"),
	}
}

var _ SQLAgent = (*sqlAgent)(nil)

// Process implements SQLAgent.
func (s *sqlAgent) Process(ctx context.Context, question string, history []models.ConversationTurn) *SQLAgentResult {
	result := &SQLAgentResult{Question: question}

	if s.llmClient == nil {
		result.NaturalResponse = GenerationFailureResponse
		result.Error = ErrLLMUnavailable
		return result
	}

	// 1. Generate
	prompt := prompts.BuildSQLGenerationPrompt(s.qualifier, s.store.LocationCodes, question, history, s.window)
	raw, err := s.llmClient.GenerateResponse(ctx, prompt, prompts.SQLGenSystemMessage, s.temperature)
	if err != nil {
		s.logger.Warn("SQL generation call failed", zap.Error(err))
		result.NaturalResponse = GenerationFailureResponse
		result.Error = err.Error()
		return result
	}

	generation := ParseGenerationOutput(raw)
	switch generation.Kind {
	case models.GenerationClarification:
		result.Clarification = generation.Clarification
		result.NaturalResponse = generation.Clarification
		return result
	case models.GenerationEmpty:
		s.logger.Warn("model produced no usable SQL", zap.String("raw", raw))
		result.NaturalResponse = GenerationFailureResponse
		result.Error = "empty SQL generated"
		return result
	}

	result.GeneratedSQL = generation.Query
	s.logger.Debug("generated SQL", zap.String("sql", generation.Query))

	// 2. Execute. Every failure is captured as text: no retry, no repair.
	if s.executor == nil {
		result.Error = ErrWarehouseUnavailable
	} else {
		rows, err := s.executor.Query(ctx, generation.Query)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Rows = rows
		}
	}

	// 3. Synthesize
	if result.Rows != nil {
		result.NaturalResponse = s.synthesizer.Synthesize(ctx, question, generation.Query, result.Rows)
	} else if result.Error != "" {
		result.NaturalResponse = ExecutionErrorPrefix + result.Error
	}

	return result
}

// ParseGenerationOutput classifies raw model output into the tagged union
// {Query, Clarification, Empty}. Unrecognized text never passes through
// silently: it is either a query verbatim or nothing.
func ParseGenerationOutput(raw string) models.QueryGeneration {
	cleaned := llm.StripCodeFences(raw)

	if idx := strings.Index(cleaned, prompts.ClarificationSentinel); idx >= 0 {
		text := strings.TrimSpace(cleaned[idx+len(prompts.ClarificationSentinel):])
		if text == "" {
			return models.QueryGeneration{Kind: models.GenerationEmpty}
		}
		return models.QueryGeneration{Kind: models.GenerationClarification, Clarification: text}
	}

	if cleaned == "" {
		return models.QueryGeneration{Kind: models.GenerationEmpty}
	}

	return models.QueryGeneration{Kind: models.GenerationQuery, Query: cleaned}
}
