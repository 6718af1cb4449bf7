package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

// stubOrchestrator returns a canned response and records the inputs.
type stubOrchestrator struct {
	response *models.FinalResponse
	question string
	history  []models.ConversationTurn
	calls    int
}

func (s *stubOrchestrator) Run(ctx context.Context, question string, history []models.ConversationTurn) *models.FinalResponse {
	s.calls++
	s.question = question
	s.history = history
	return s.response
}

func postChat(t *testing.T, handler *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestChat_Success(t *testing.T) {
	stub := &stubOrchestrator{
		response: &models.FinalResponse{
			Text:  "총 42건입니다.",
			Agent: models.AgentSQL,
		},
	}
	handler := NewChatHandler(stub, zap.NewNop())

	rec := postChat(t, handler, `{"messages":[
		{"role":"user","content":"지난주 파손 건수는?"},
		{"role":"assistant","content":"지난주 파손은 3건입니다."},
		{"role":"user","content":"이번주는?"}
	]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "이번주는?", stub.question)
	require.Len(t, stub.history, 2)
	assert.Equal(t, "지난주 파손 건수는?", stub.history[0].Content)

	var resp models.FinalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "총 42건입니다.", resp.Text)
	assert.Equal(t, models.AgentSQL, resp.Agent)
}

func TestChat_InvalidJSON(t *testing.T) {
	stub := &stubOrchestrator{response: &models.FinalResponse{}}
	handler := NewChatHandler(stub, zap.NewNop())

	rec := postChat(t, handler, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, stub.calls)
}

func TestChat_EmptyMessages(t *testing.T) {
	stub := &stubOrchestrator{response: &models.FinalResponse{}}
	handler := NewChatHandler(stub, zap.NewNop())

	rec := postChat(t, handler, `{"messages":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, stub.calls)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid_request", body["error"])
}

func TestChat_LastMessageMustBeUser(t *testing.T) {
	stub := &stubOrchestrator{response: &models.FinalResponse{}}
	handler := NewChatHandler(stub, zap.NewNop())

	rec := postChat(t, handler, `{"messages":[
		{"role":"user","content":"안녕"},
		{"role":"assistant","content":"안녕하세요!"}
	]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, stub.calls)
}

func TestChat_ResponseOmitsEmptyFields(t *testing.T) {
	stub := &stubOrchestrator{
		response: &models.FinalResponse{Text: "안녕하세요!", Agent: models.AgentGeneral},
	}
	handler := NewChatHandler(stub, zap.NewNop())

	rec := postChat(t, handler, `{"messages":[{"role":"user","content":"안녕"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, `"data"`)
	assert.NotContains(t, body, `"sql"`)
	assert.NotContains(t, body, `"chart"`)
	assert.NotContains(t, body, `"sources"`)
}
