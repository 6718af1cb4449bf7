package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/llm"
	"github.com/coldsight-ai/coldsight-engine/pkg/models"
	"github.com/coldsight-ai/coldsight-engine/pkg/prompts"
	"github.com/coldsight-ai/coldsight-engine/pkg/warehouse"
)

const (
	// NoDataResponse is the fixed answer for a query that ran successfully
	// but matched no rows. No LLM call is made in that case.
	NoDataResponse = "해당 조건에 맞는 데이터가 없습니다."

	// SynthesisErrorPrefix prefixes LLM failures during result explanation.
	// The query result itself is still returned to the caller.
	SynthesisErrorPrefix = "결과 해석 중 오류가 발생했습니다: "
)

// ResultSynthesizer turns a query result into a natural-language answer.
type ResultSynthesizer interface {
	Synthesize(ctx context.Context, question, sqlQuery string, result *models.TabularData) string
}

type resultSynthesizer struct {
	llmClient   llm.Client
	temperature float64
	logger      *zap.Logger
}

// NewResultSynthesizer creates a ResultSynthesizer backed by llmClient.
func NewResultSynthesizer(llmClient llm.Client, temperature float64, logger *zap.Logger) ResultSynthesizer {
	return &resultSynthesizer{
		llmClient:   llmClient,
		temperature: temperature,
		logger:      logger.Named("synthesizer"),
	}
}

var _ ResultSynthesizer = (*resultSynthesizer)(nil)

// Synthesize implements ResultSynthesizer. Empty results short-circuit to
// the fixed no-data answer so the model never gets a chance to hallucinate
// numbers out of an empty table.
func (s *resultSynthesizer) Synthesize(ctx context.Context, question, sqlQuery string, result *models.TabularData) string {
	if result.Empty() {
		return NoDataResponse
	}
	if s.llmClient == nil {
		return SynthesisErrorPrefix + ErrLLMUnavailable
	}

	resultText := warehouse.RenderText(result)
	prompt := prompts.BuildSynthesisPrompt(question, sqlQuery, resultText)

	answer, err := s.llmClient.GenerateResponse(ctx, prompt, prompts.SynthesisSystemMessage, s.temperature)
	if err != nil {
		s.logger.Warn("result synthesis failed", zap.Error(err))
		return SynthesisErrorPrefix + err.Error()
	}

	return llm.StripThinking(answer)
}
