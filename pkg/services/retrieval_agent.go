package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/glossary"
	"github.com/coldsight-ai/coldsight-engine/pkg/llm"
	"github.com/coldsight-ai/coldsight-engine/pkg/prompts"
)

// RetrievalApologyResponse is surfaced when the explanation call fails.
const RetrievalApologyResponse = "죄송합니다. 용어 설명을 처리하는 중 오류가 발생했습니다: "

// RetrievalAnswer is a glossary-grounded answer with the terms it drew on.
type RetrievalAnswer struct {
	Answer  string
	Sources []string
}

// RetrievalAgent answers definitional questions from the embedded glossary.
type RetrievalAgent interface {
	Process(ctx context.Context, question string) *RetrievalAnswer
}

type retrievalAgent struct {
	llmClient   llm.Client
	store       *glossary.Store
	temperature float64
	logger      *zap.Logger
}

// NewRetrievalAgent creates a RetrievalAgent over the glossary store.
func NewRetrievalAgent(llmClient llm.Client, store *glossary.Store, temperature float64, logger *zap.Logger) RetrievalAgent {
	return &retrievalAgent{
		llmClient:   llmClient,
		store:       store,
		temperature: temperature,
		logger:      logger.Named("retrieval-agent"),
	}
}

var _ RetrievalAgent = (*retrievalAgent)(nil)

// Process implements RetrievalAgent. Questions that match glossary terms are
// answered from the matched entries only; unmatched questions get the whole
// glossary as context so the model can state what is and is not documented.
func (r *retrievalAgent) Process(ctx context.Context, question string) *RetrievalAnswer {
	matched := r.store.Match(question)

	answer := &RetrievalAnswer{}
	context := matched
	if len(matched) == 0 {
		r.logger.Debug("no glossary term matched, using full glossary as context")
		context = r.store.Entries
	} else {
		for _, entry := range matched {
			answer.Sources = append(answer.Sources, entry.Term)
		}
	}

	if r.llmClient == nil {
		answer.Answer = RetrievalApologyResponse + ErrLLMUnavailable
		return answer
	}

	prompt := prompts.BuildRetrievalPrompt(question, context)
	text, err := r.llmClient.GenerateResponse(ctx, prompt, prompts.RetrievalSystemMessage, r.temperature)
	if err != nil {
		r.logger.Warn("retrieval explanation failed", zap.Error(err))
		answer.Answer = RetrievalApologyResponse + err.Error()
		return answer
	}

	answer.Answer = llm.StripThinking(text)
	return answer
}
