package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
	"github.com/coldsight-ai/coldsight-engine/pkg/services"
)

// ChatRequest is the request body for POST /api/chat. Messages carry the
// full conversation window; the server keeps no session state.
type ChatRequest struct {
	Messages []models.ConversationTurn `json:"messages"`
}

// ChatHandler handles conversational question answering.
type ChatHandler struct {
	orchestrator services.Orchestrator
	logger       *zap.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(orchestrator services.Orchestrator, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{orchestrator: orchestrator, logger: logger}
}

// RegisterRoutes registers the chat handler's routes on the given mux.
func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/chat", h.Chat)
}

// Chat handles POST /api/chat requests. The last message must be a user
// turn; everything before it is treated as history.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	logger := h.logger.With(zap.String("request_id", requestID))

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}

	if len(req.Messages) == 0 {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "messages must not be empty")
		return
	}

	last := req.Messages[len(req.Messages)-1]
	if last.Role != models.RoleUser {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "last message must be a user turn")
		return
	}

	question := last.Content
	history := req.Messages[:len(req.Messages)-1]

	logger.Info("chat request received",
		zap.Int("message_count", len(req.Messages)),
		zap.Int("question_length", len(question)))

	response := h.orchestrator.Run(r.Context(), question, history)

	logger.Info("chat request completed",
		zap.String("agent", string(response.Agent)),
		zap.String("chart_type", string(response.ChartType)),
		zap.Bool("has_data", response.TabularData != nil))

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		logger.Error("Failed to encode chat response", zap.Error(err))
	}
}
