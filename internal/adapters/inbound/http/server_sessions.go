package http

import (
	"net/http"

	"github.com/oapi-codegen/runtime"
	"github.com/zral/mcp-ws/internal/common"
	"github.com/zral/mcp-ws/internal/domain"
)

// Create a conversation session
// (POST /sessions)
func (api TravelAgentServer) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decodeRequest(r, sessionRequestSchema, &req); err != nil {
		api.respondError(w, err, "")
		return
	}

	session, err := api.MemoryUseCase.CreateSession(r.Context(), common.Deref(req.UserID), common.Deref(req.Title))
	if err != nil {
		api.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, CreateSessionResp{
		Success:   true,
		SessionID: session.ID,
		UserID:    session.UserID,
		Title:     session.Title,
	})
}

// List conversation sessions
// (GET /sessions)
func (api TravelAgentServer) ListSessions(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		api.respondError(w, err, "")
		return
	}

	sessions, err := api.MemoryUseCase.ListSessions(r.Context(), r.URL.Query().Get("user_id"), limit)
	if err != nil {
		api.respondError(w, err, "")
		return
	}

	resp := SessionListResp{
		Success:  true,
		Sessions: make([]Session, len(sessions)),
	}
	for i, s := range sessions {
		resp.Sessions[i] = toSession(s)
	}
	respondJSON(w, http.StatusOK, resp)
}

// Get the message history of a session
// (GET /sessions/{session_id}/history)
func (api TravelAgentServer) SessionHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")

	msgs, err := api.MemoryUseCase.History(r.Context(), sessionID)
	if err != nil {
		api.respondError(w, err, "")
		return
	}

	resp := HistoryResp{
		Success:   true,
		SessionID: sessionID,
		History:   make([]Message, len(msgs)),
	}
	for i, m := range msgs {
		resp.History[i] = toMessage(m)
	}
	respondJSON(w, http.StatusOK, resp)
}

// Delete messages and sessions older than a number of days
// (DELETE /sessions)
func (api TravelAgentServer) PurgeSessions(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "older_than_days")
	if err != nil {
		api.respondError(w, err, "")
		return
	}

	result, err := api.MemoryUseCase.PurgeOlderThan(r.Context(), days, r.URL.Query().Get("user_id"))
	if err != nil {
		api.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, PurgeResp{
		Success:         true,
		DeletedMessages: result.Messages,
		DeletedSessions: result.Sessions,
	})
}

// Get conversation memory statistics
// (GET /memory/stats)
func (api TravelAgentServer) MemoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := api.MemoryUseCase.Stats(r.Context())
	if err != nil {
		api.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, MemoryStatsResp{
		Success: true,
		Stats:   toMemoryStats(stats),
	})
}

// queryInt binds an optional form-style integer query parameter. A missing parameter yields 0.
func queryInt(r *http.Request, name string) (int, error) {
	var v int
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		return 0, domain.NewValidationErrf("%s must be an integer", name)
	}
	return v, nil
}
