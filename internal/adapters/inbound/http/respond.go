package http

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError writes the error envelope for err. Internal errors are reported with fallbackMsg.
func (api TravelAgentServer) respondError(w http.ResponseWriter, err error, fallbackMsg string) {
	statusCode, msg := toError(err)
	if statusCode == http.StatusInternalServerError && fallbackMsg != "" {
		msg = fallbackMsg
	}
	respondJSON(w, statusCode, ErrorResp{
		Success:   false,
		Error:     msg,
		Timestamp: api.TimeProvider.Now(),
	})
}
