package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/zral/mcp-ws/internal/adapters/outbound/modelrunner"
)

const weatherAnswer = "It will be sunny and 21 degrees in Oslo."

// newToolServer starts a tool server that advertises a weather tool with an explicit route
// and a trip planner that relies on the derived route.
func newToolServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tools", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"tools": []map[string]any{
				{
					"name":        "get_weather_forecast",
					"description": "Weather forecast for a destination",
					"inputSchema": map[string]any{
						"type":     "object",
						"required": []string{"destination"},
						"properties": map[string]any{
							"destination": map[string]any{"type": "string"},
						},
					},
					"endpoint": "/weather",
					"method":   "GET",
				},
				{
					"name":        "plan_trip",
					"description": "Complete trip plan with weather and routes",
				},
			},
		})
	})
	mux.HandleFunc("GET /weather", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"success": true,
			"data": map[string]any{
				"destination": r.URL.Query().Get("destination"),
				"forecast":    "sunny",
				"temperature": 21,
			},
		})
	})
	mux.HandleFunc("POST /plan-trip", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"success": true, "data": map[string]any{"plan": "take the train"}})
	})
	return httptest.NewServer(mux)
}

// newLLMServer starts an OpenAI-compatible chat completions endpoint. Weather questions trigger one
// tool call; the answer is produced once the tool result is in the conversation.
func newLLMServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var req modelrunner.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		last := req.Messages[len(req.Messages)-1]
		msg := modelrunner.Message{Role: "assistant"}
		switch {
		case last.Role == "tool":
			msg.Content = weatherAnswer
		case len(req.Tools) > 0 && strings.Contains(strings.ToLower(last.Content), "weather"):
			msg.ToolCalls = []modelrunner.ToolCall{{
				ID:   "call_weather",
				Type: "function",
				Function: modelrunner.ToolCallFunction{
					Name:      "get_weather_forecast",
					Arguments: `{"destination":"Oslo"}`,
				},
			}}
		default:
			msg.Content = "Hello from the travel agent."
		}

		writeJSON(w, modelrunner.ChatResponse{
			ID:      "chatcmpl-test",
			Object:  "chat.completion",
			Model:   req.Model,
			Choices: []modelrunner.Choice{{Message: msg, FinishReason: "stop"}},
			Usage:   &modelrunner.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		})
	})
	return httptest.NewServer(mux)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
