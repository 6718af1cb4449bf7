package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
	"github.com/coldsight-ai/coldsight-engine/pkg/warehouse"
)

// UnknownAgentResponse is returned if routing yields a label the dispatcher
// has no agent for. With a valid Router this is unreachable; it exists so a
// future label addition fails loudly instead of silently.
const UnknownAgentResponse = "Unknown agent selected."

// SQLFallbackDisplayPrefix prefixes the raw SQL shown when a query was
// generated but no natural answer could be produced.
const SQLFallbackDisplayPrefix = "생성된 SQL:\n"

// Orchestrator routes a conversation to the right agent and shapes the
// final response. Run never returns an error: every failure ends up as
// user-facing text.
type Orchestrator interface {
	Run(ctx context.Context, question string, history []models.ConversationTurn) *models.FinalResponse
}

type orchestrator struct {
	router    Router
	sqlAgent  SQLAgent
	retrieval RetrievalAgent
	general   GeneralAgent
	logger    *zap.Logger
}

// NewOrchestrator wires the router and the three agents.
func NewOrchestrator(
	router Router,
	sqlAgent SQLAgent,
	retrieval RetrievalAgent,
	general GeneralAgent,
	logger *zap.Logger,
) Orchestrator {
	return &orchestrator{
		router:    router,
		sqlAgent:  sqlAgent,
		retrieval: retrieval,
		general:   general,
		logger:    logger.Named("orchestrator"),
	}
}

var _ Orchestrator = (*orchestrator)(nil)

// Run implements Orchestrator.
func (o *orchestrator) Run(ctx context.Context, question string, history []models.ConversationTurn) (resp *models.FinalResponse) {
	// Agents report failures as text, but a panic in one must not take the
	// request down with it.
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("agent panicked", zap.Any("panic", r))
			resp = &models.FinalResponse{Text: GeneralApologyResponse + fmt.Sprintf("%v", r)}
		}
	}()

	agent := o.router.Route(ctx, question)
	o.logger.Info("dispatching question",
		zap.String("agent", string(agent)),
		zap.Int("history_turns", len(history)))

	switch agent {
	case models.AgentSQL:
		result := o.sqlAgent.Process(ctx, question, history)
		resp := &models.FinalResponse{
			Text:           answerFromSQLResult(result),
			TabularData:    result.Rows,
			GeneratedQuery: result.GeneratedSQL,
			Agent:          agent,
		}
		if result.Rows != nil {
			resp.ChartType = warehouse.DetectChartType(result.Rows)
		}
		return resp

	case models.AgentRetrieval:
		answer := o.retrieval.Process(ctx, question)
		return &models.FinalResponse{
			Text:    answer.Answer,
			Agent:   agent,
			Sources: answer.Sources,
		}

	case models.AgentGeneral:
		return &models.FinalResponse{
			Text:  o.general.Process(ctx, question, history),
			Agent: agent,
		}
	}

	o.logger.Error("no agent registered for label", zap.String("agent", string(agent)))
	return &models.FinalResponse{Text: UnknownAgentResponse, Agent: agent}
}

// answerFromSQLResult picks the best available answer, in order of
// usefulness to the user: natural answer, execution error, clarification,
// raw SQL, then the fixed generation failure text.
func answerFromSQLResult(result *SQLAgentResult) string {
	switch {
	case result.NaturalResponse != "":
		return result.NaturalResponse
	case result.Error != "":
		return ExecutionErrorPrefix + result.Error
	case result.Clarification != "":
		return result.Clarification
	case result.GeneratedSQL != "":
		return SQLFallbackDisplayPrefix + result.GeneratedSQL
	default:
		return GenerationFailureResponse
	}
}
