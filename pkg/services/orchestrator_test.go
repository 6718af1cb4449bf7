package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/glossary"
	"github.com/coldsight-ai/coldsight-engine/pkg/llm"
	"github.com/coldsight-ai/coldsight-engine/pkg/models"
	"github.com/coldsight-ai/coldsight-engine/pkg/warehouse"
)

// stubRouter pins the routing decision so orchestrator tests exercise one
// agent path at a time.
type stubRouter struct {
	label models.AgentLabel
}

func (s stubRouter) Route(ctx context.Context, question string) models.AgentLabel {
	return s.label
}

func newTestOrchestrator(t *testing.T, label models.AgentLabel, llmMock *llm.MockClient, executor warehouse.Executor) Orchestrator {
	t.Helper()
	store, err := glossary.Load()
	require.NoError(t, err)

	logger := zap.NewNop()
	synth := NewResultSynthesizer(llmMock, 0, logger)
	sqlAgent := NewSQLAgent(llmMock, executor, synth, store, "proj.coldchain", 0, 6, logger)
	retrievalAgent := NewRetrievalAgent(llmMock, store, 0, logger)
	generalAgent := NewGeneralAgent(llmMock, 0.7, 10, logger)

	return NewOrchestrator(stubRouter{label: label}, sqlAgent, retrievalAgent, generalAgent, logger)
}

func TestOrchestrator_Run_Greeting(t *testing.T) {
	llmMock := llm.NewMockClient()
	llmMock.GenerateResponseFunc = func(ctx context.Context, prompt, system string, temp float64) (string, error) {
		return "안녕하세요! 무엇을 도와드릴까요?", nil
	}

	o := newTestOrchestrator(t, models.AgentGeneral, llmMock, warehouse.NewMockExecutor())
	resp := o.Run(context.Background(), "안녕!", nil)

	assert.Equal(t, "안녕하세요! 무엇을 도와드릴까요?", resp.Text)
	assert.Equal(t, models.AgentGeneral, resp.Agent)
	assert.Nil(t, resp.TabularData)
	assert.Empty(t, resp.GeneratedQuery)
	assert.Equal(t, models.ChartNone, resp.ChartType)
}

func TestOrchestrator_Run_SQLPathWithExecutionError(t *testing.T) {
	llmMock := llm.NewMockClient()
	llmMock.GenerateResponseFunc = func(ctx context.Context, prompt, system string, temp float64) (string, error) {
		return "SELECT destination_code FROM `proj.coldchain.mart_logistics_master` WHERE destination_code = 'CNSHG'", nil
	}

	executor := warehouse.NewMockExecutor()
	executor.QueryFunc = func(ctx context.Context, sqlQuery string) (*models.TabularData, error) {
		return nil, errors.New("permission denied on dataset coldchain")
	}

	o := newTestOrchestrator(t, models.AgentSQL, llmMock, executor)
	resp := o.Run(context.Background(), "상하이행 물동량 알려줘", nil)

	assert.Equal(t, ExecutionErrorPrefix+"permission denied on dataset coldchain", resp.Text)
	assert.Contains(t, resp.GeneratedQuery, "CNSHG")
	assert.Equal(t, models.AgentSQL, resp.Agent)
	assert.Nil(t, resp.TabularData)
}

func TestOrchestrator_Run_RetrievalPath(t *testing.T) {
	llmMock := llm.NewMockClient()
	llmMock.GenerateResponseFunc = func(ctx context.Context, prompt, system string, temp float64) (string, error) {
		return "일탈률은 설정된 온습도 범위를 벗어난 측정값의 비율입니다.", nil
	}

	o := newTestOrchestrator(t, models.AgentRetrieval, llmMock, warehouse.NewMockExecutor())
	resp := o.Run(context.Background(), "일탈률이 뭐야?", nil)

	assert.Equal(t, "일탈률은 설정된 온습도 범위를 벗어난 측정값의 비율입니다.", resp.Text)
	assert.Equal(t, models.AgentRetrieval, resp.Agent)
	assert.Contains(t, resp.Sources, "일탈률")
	assert.Empty(t, resp.GeneratedQuery)
}

func TestOrchestrator_Run_ClarificationPath(t *testing.T) {
	llmMock := llm.NewMockClient()
	llmMock.GenerateResponseFunc = func(ctx context.Context, prompt, system string, temp float64) (string, error) {
		return "CLARIFICATION_NEEDED: 어느 기간의 물동량을 원하시나요?", nil
	}

	executor := warehouse.NewMockExecutor()
	o := newTestOrchestrator(t, models.AgentSQL, llmMock, executor)
	resp := o.Run(context.Background(), "물동량 알려줘", nil)

	assert.Equal(t, "어느 기간의 물동량을 원하시나요?", resp.Text)
	assert.Empty(t, resp.GeneratedQuery)
	assert.Equal(t, 0, executor.QueryCalls)
}

func TestOrchestrator_Run_SQLPathWithRowsSetsChartType(t *testing.T) {
	llmMock := llm.NewMockClient()
	llmMock.GenerateResponseFunc = func(ctx context.Context, prompt, system string, temp float64) (string, error) {
		if strings.Contains(prompt, "Query Result:") {
			return "리자오항 인근 위험 지점이 2곳입니다.", nil
		}
		return "SELECT latitude, longitude, risk_score FROM `proj.coldchain.mart_risk_heatmap`", nil
	}

	executor := warehouse.NewMockExecutor()
	executor.QueryFunc = func(ctx context.Context, sqlQuery string) (*models.TabularData, error) {
		return &models.TabularData{
			Columns: []string{"latitude", "longitude", "risk_score"},
			Rows: []map[string]any{
				{"latitude": 35.42, "longitude": 119.52, "risk_score": 0.9},
				{"latitude": 35.50, "longitude": 119.60, "risk_score": 0.7},
			},
		}, nil
	}

	o := newTestOrchestrator(t, models.AgentSQL, llmMock, executor)
	resp := o.Run(context.Background(), "위험 지역 보여줘", nil)

	assert.Equal(t, models.ChartMap, resp.ChartType)
	require.NotNil(t, resp.TabularData)
	assert.Len(t, resp.TabularData.Rows, 2)
	assert.Equal(t, "리자오항 인근 위험 지점이 2곳입니다.", resp.Text)
}

func TestOrchestrator_Run_UnknownLabel(t *testing.T) {
	o := newTestOrchestrator(t, models.AgentLabel("MYSTERY_AGENT"), llm.NewMockClient(), warehouse.NewMockExecutor())
	resp := o.Run(context.Background(), "?", nil)

	assert.Equal(t, UnknownAgentResponse, resp.Text)
}

type panicRouter struct{}

func (panicRouter) Route(ctx context.Context, question string) models.AgentLabel {
	panic("routing table corrupted")
}

func TestOrchestrator_Run_RecoversPanics(t *testing.T) {
	store, err := glossary.Load()
	require.NoError(t, err)

	logger := zap.NewNop()
	llmMock := llm.NewMockClient()
	synth := NewResultSynthesizer(llmMock, 0, logger)
	sqlAgent := NewSQLAgent(llmMock, nil, synth, store, "proj.coldchain", 0, 6, logger)
	retrievalAgent := NewRetrievalAgent(llmMock, store, 0, logger)
	generalAgent := NewGeneralAgent(llmMock, 0.7, 10, logger)
	o := NewOrchestrator(panicRouter{}, sqlAgent, retrievalAgent, generalAgent, logger)

	resp := o.Run(context.Background(), "안녕", nil)

	require.NotNil(t, resp)
	assert.Contains(t, resp.Text, "routing table corrupted")
}

func TestAnswerFromSQLResult_Preference(t *testing.T) {
	tests := []struct {
		name   string
		result *SQLAgentResult
		want   string
	}{
		{"natural answer wins", &SQLAgentResult{NaturalResponse: "답변", GeneratedSQL: "SELECT 1", ExecutionResult: models.ExecutionResult{Error: "boom"}}, "답변"},
		{"error next", &SQLAgentResult{GeneratedSQL: "SELECT 1", ExecutionResult: models.ExecutionResult{Error: "boom"}}, ExecutionErrorPrefix + "boom"},
		{"clarification next", &SQLAgentResult{Clarification: "기간은요?"}, "기간은요?"},
		{"raw sql next", &SQLAgentResult{GeneratedSQL: "SELECT 1"}, SQLFallbackDisplayPrefix + "SELECT 1"},
		{"generation failure last", &SQLAgentResult{}, GenerationFailureResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, answerFromSQLResult(tt.result))
		})
	}
}
