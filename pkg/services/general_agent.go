package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/llm"
	"github.com/coldsight-ai/coldsight-engine/pkg/models"
	"github.com/coldsight-ai/coldsight-engine/pkg/prompts"
)

// GeneralApologyResponse is surfaced when the conversational call fails.
const GeneralApologyResponse = "죄송합니다. 일반 대화를 처리하는 중 오류가 발생했습니다: "

// GeneralAgent handles greetings, capability questions, and small talk.
type GeneralAgent interface {
	Process(ctx context.Context, question string, history []models.ConversationTurn) string
}

type generalAgent struct {
	llmClient   llm.Client
	temperature float64
	window      int
	logger      *zap.Logger
}

// NewGeneralAgent creates a GeneralAgent with the given history window.
func NewGeneralAgent(llmClient llm.Client, temperature float64, window int, logger *zap.Logger) GeneralAgent {
	return &generalAgent{
		llmClient:   llmClient,
		temperature: temperature,
		window:      window,
		logger:      logger.Named("general-agent"),
	}
}

var _ GeneralAgent = (*generalAgent)(nil)

// Process implements GeneralAgent.
func (g *generalAgent) Process(ctx context.Context, question string, history []models.ConversationTurn) string {
	if g.llmClient == nil {
		return GeneralApologyResponse + ErrLLMUnavailable
	}

	prompt := prompts.BuildGeneralPrompt(question, history, g.window)
	text, err := g.llmClient.GenerateResponse(ctx, prompt, prompts.GeneralSystemMessage, g.temperature)
	if err != nil {
		g.logger.Warn("general conversation failed", zap.Error(err))
		return GeneralApologyResponse + err.Error()
	}
	return llm.StripThinking(text)
}
