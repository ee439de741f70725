package http

import (
	"net/http"

	"github.com/zral/mcp-ws/internal/common"
	"github.com/zral/mcp-ws/internal/usecases"
	"go.uber.org/zap"
)

const queryFailedMessage = "query processing failed"

// Answer a user query
// (POST /query)
func (api TravelAgentServer) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := decodeRequest(r, queryRequestSchema, &req); err != nil {
		api.respondError(w, err, "")
		return
	}

	answer, err := api.ProcessQueryUseCase.Execute(r.Context(), usecases.QueryInput{
		Query:     req.Query,
		SessionID: common.Deref(req.SessionID),
		UserID:    common.Deref(req.UserID),
	})
	if err != nil {
		if status, _ := toError(err); status == http.StatusInternalServerError {
			api.Logger.Error("query processing failed", zap.Error(err))
		}
		api.respondError(w, err, queryFailedMessage)
		return
	}

	respondJSON(w, http.StatusOK, QueryResp{
		Success:   true,
		Response:  answer.Content,
		SessionID: answer.SessionID,
		ToolCalls: answer.ToolCalls,
		Timestamp: api.TimeProvider.Now(),
	})
}

// Report the agent health
// (GET /health)
func (api TravelAgentServer) Health(w http.ResponseWriter, r *http.Request) {
	health := api.GetHealthUseCase.Query(r.Context())
	respondJSON(w, http.StatusOK, HealthResp{
		Status:             health.Status,
		ToolsLoaded:        health.ToolsLoaded,
		MCPServerConnected: health.ToolServerConnected,
	})
}
