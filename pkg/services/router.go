package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/llm"
	"github.com/coldsight-ai/coldsight-engine/pkg/models"
	"github.com/coldsight-ai/coldsight-engine/pkg/prompts"
)

// Router classifies a question into one of the three agent labels.
// Route always returns a valid label; classification failures fall back to
// deterministic rules and are never surfaced to the caller.
type Router interface {
	Route(ctx context.Context, question string) models.AgentLabel
}

type router struct {
	llmClient   llm.Client
	temperature float64
	logger      *zap.Logger
}

// NewRouter creates a Router. Pass a nil llmClient to run on the keyword
// classifier alone for the process lifetime (LLM unavailable at startup);
// there is no later retry.
func NewRouter(llmClient llm.Client, temperature float64, logger *zap.Logger) Router {
	if llmClient == nil {
		logger.Warn("no LLM client, router falls back to keyword classification permanently")
	}
	return &router{
		llmClient:   llmClient,
		temperature: temperature,
		logger:      logger.Named("router"),
	}
}

var _ Router = (*router)(nil)

// Route implements Router.
func (r *router) Route(ctx context.Context, question string) models.AgentLabel {
	if r.llmClient == nil {
		return ClassifyByKeywords(question)
	}

	raw, err := r.llmClient.GenerateResponse(ctx, prompts.BuildRouterPrompt(question), prompts.RouterSystemMessage, r.temperature)
	if err != nil {
		r.logger.Warn("router LLM call failed, defaulting to SQL agent", zap.Error(err))
		return models.AgentSQL
	}

	label, ok := CleanRouterLabel(raw)
	if !ok {
		r.logger.Warn("router returned unusable label, using keyword fallback",
			zap.String("raw", raw))
		return ClassifyByKeywords(question)
	}

	r.logger.Debug("routed question", zap.String("agent", string(label)))
	return label
}

// CleanRouterLabel recovers a canonical agent token from raw model output.
// Models wrap the token in backticks, code fences, punctuation, or stray
// words; the first recognizable token wins.
func CleanRouterLabel(raw string) (models.AgentLabel, bool) {
	cleaned := llm.StripCodeFences(raw)
	cleaned = strings.ReplaceAll(cleaned, "`", "")

	for _, field := range strings.Fields(cleaned) {
		token := strings.Trim(field, ".,:;!?\"'")
		label := models.AgentLabel(strings.ToUpper(token))
		if label.Valid() {
			return label, true
		}
	}
	return "", false
}
