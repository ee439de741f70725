package modelrunner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zral/mcp-ws/internal/common"
	"github.com/zral/mcp-ws/internal/domain"
)

func TestAssistantClientAdapter_RunTurnSync(t *testing.T) {
	temp := 0.5
	topP := 0.9
	weatherSchema := json.RawMessage(`{"type":"object","properties":{"city":{"type":"string"}},"required":["city"]}`)

	tests := map[string]struct {
		response     string
		statusCode   int
		req          domain.AssistantTurnRequest
		expectErr    bool
		expectedResp domain.AssistantTurnResponse
		validateReq  func(*testing.T, map[string]any, *ChatRequest)
	}{
		"success": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"Hello!"}}],"usage": {"completion_tokens": 10,"prompt_tokens": 10,"total_tokens": 20}}`,
			statusCode: http.StatusOK,
			req: domain.AssistantTurnRequest{
				Model: "test-model",
				Messages: []domain.AssistantMessage{
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectedResp: domain.AssistantTurnResponse{
				Content: "Hello!",
				Usage:   domain.AssistantUsage{PromptTokens: 10, CompletionTokens: 10, TotalTokens: 20},
			},
			validateReq: func(t *testing.T, raw map[string]any, req *ChatRequest) {
				_, hasTools := raw["tools"]
				assert.False(t, hasTools)
				_, hasToolChoice := raw["tool_choice"]
				assert.False(t, hasToolChoice)
			},
		},
		"with-params": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`,
			statusCode: http.StatusOK,
			req: domain.AssistantTurnRequest{
				Model:       "test-model",
				Temperature: &temp,
				TopP:        &topP,
				Messages: []domain.AssistantMessage{
					{Role: domain.ChatRole_System, Content: "sys"},
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectedResp: domain.AssistantTurnResponse{Content: "ok"},
			validateReq: func(t *testing.T, raw map[string]any, req *ChatRequest) {
				assert.Equal(t, "test-model", req.Model)
				require.NotNil(t, req.Temperature)
				assert.InDelta(t, 0.5, *req.Temperature, 1e-6)
				require.NotNil(t, req.TopP)
				assert.InDelta(t, 0.9, *req.TopP, 1e-6)
				assert.Len(t, req.Messages, 2)
			},
		},
		"tools-offered-and-called": {
			response: `{"choices":[{"message":{"role":"assistant","content":"","tool_calls":[
				{"id":"call_1","type":"function","function":{"name":"get_weather","arguments":"{\"city\":\"Oslo\"}"}},
				{"type":"function","function":{"name":"get_time","arguments":"{}"}}
			]}}]}`,
			statusCode: http.StatusOK,
			req: domain.AssistantTurnRequest{
				Model: "test-model",
				Messages: []domain.AssistantMessage{
					{Role: domain.ChatRole_User, Content: "Weather in Oslo?"},
				},
				AvailableActions: []domain.AssistantActionDefinition{
					{Name: "get_weather", Description: "Weather for a city", Parameters: weatherSchema},
				},
			},
			expectedResp: domain.AssistantTurnResponse{
				ActionCalls: []domain.AssistantActionCall{
					{ID: "call_1", Name: "get_weather", Input: `{"city":"Oslo"}`},
					{Name: "get_time", Input: "{}"},
				},
			},
			validateReq: func(t *testing.T, raw map[string]any, req *ChatRequest) {
				assert.Equal(t, "auto", req.ToolChoice)
				require.Len(t, req.Tools, 1)
				assert.Equal(t, "function", req.Tools[0].Type)
				assert.Equal(t, "get_weather", req.Tools[0].Function.Name)
				assert.JSONEq(t, string(weatherSchema), string(req.Tools[0].Function.Parameters))
			},
		},
		"tool-round-is-forwarded": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"It is 12C in Oslo."}}]}`,
			statusCode: http.StatusOK,
			req: domain.AssistantTurnRequest{
				Model: "test-model",
				Messages: []domain.AssistantMessage{
					{Role: domain.ChatRole_User, Content: "Weather in Oslo?"},
					{
						Role:        domain.ChatRole_Assistant,
						ActionCalls: []domain.AssistantActionCall{{ID: "call_1", Name: "get_weather", Input: `{"city":"Oslo"}`}},
					},
					{Role: domain.ChatRole_Tool, ActionCallID: common.Ptr("call_1"), Content: `{"success":true,"data":{"temp":12}}`},
				},
			},
			expectedResp: domain.AssistantTurnResponse{Content: "It is 12C in Oslo."},
			validateReq: func(t *testing.T, raw map[string]any, req *ChatRequest) {
				require.Len(t, req.Messages, 3)
				require.Len(t, req.Messages[1].ToolCalls, 1)
				assert.Equal(t, "call_1", req.Messages[1].ToolCalls[0].ID)
				assert.Equal(t, "function", req.Messages[1].ToolCalls[0].Type)
				assert.Equal(t, `{"city":"Oslo"}`, req.Messages[1].ToolCalls[0].Function.Arguments)
				require.NotNil(t, req.Messages[2].ToolCallID)
				assert.Equal(t, "call_1", *req.Messages[2].ToolCallID)
			},
		},
		"no-choices": {
			response:   `{"choices":[]}`,
			statusCode: http.StatusOK,
			req: domain.AssistantTurnRequest{
				Model:    "test-model",
				Messages: []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			expectErr: true,
		},
		"server-error": {
			response:   `Internal Server Error`,
			statusCode: http.StatusInternalServerError,
			req: domain.AssistantTurnRequest{
				Model:    "test-model",
				Messages: []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			expectErr: true,
		},
		"invalid-json": {
			response:   `{invalid json}`,
			statusCode: http.StatusOK,
			req: domain.AssistantTurnRequest{
				Model:    "test-model",
				Messages: []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var (
				capturedRaw map[string]any
				capturedReq *ChatRequest
			)

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

				var body json.RawMessage
				json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
				json.Unmarshal(body, &capturedRaw)    //nolint:errcheck
				var req ChatRequest
				json.Unmarshal(body, &req) //nolint:errcheck
				capturedReq = &req

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewChatCompletionsClient(server.URL, "secret", server.Client())
			adapter := NewAssistantClientAdapter(client)

			resp, err := adapter.RunTurnSync(context.Background(), tt.req)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedResp.Content, resp.Content)
			assert.Equal(t, tt.expectedResp.Usage, resp.Usage)
			require.Len(t, resp.ActionCalls, len(tt.expectedResp.ActionCalls))
			for i, expected := range tt.expectedResp.ActionCalls {
				got := resp.ActionCalls[i]
				assert.Equal(t, expected.Name, got.Name)
				assert.Equal(t, expected.Input, got.Input)
				if expected.ID != "" {
					assert.Equal(t, expected.ID, got.ID)
				} else {
					assert.True(t, strings.HasPrefix(got.ID, "call_"))
				}
			}

			if tt.validateReq != nil {
				tt.validateReq(t, capturedRaw, capturedReq)
			}
		})
	}
}

func TestAssistantClientAdapter_RunTurnSync_ValidationErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewChatCompletionsClient(server.URL, "", server.Client())
	adapter := NewAssistantClientAdapter(client)

	tests := map[string]struct {
		req domain.AssistantTurnRequest
	}{
		"no-model":    {req: domain.AssistantTurnRequest{Messages: []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "hi"}}}},
		"no-messages": {req: domain.AssistantTurnRequest{Model: "test"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := adapter.RunTurnSync(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestInitAssistantClient_Initialize(t *testing.T) {
	tests := map[string]struct {
		provider         string
		expectRegistered bool
	}{
		"selected":     {provider: ProviderName, expectRegistered: true},
		"not-selected": {provider: "openai", expectRegistered: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)

			i := InitAssistantClient{
				HttpClient: http.DefaultClient,
				Provider:   tt.provider,
				ModelHost:  "http://localhost:12434/engines",
				APIKey:     "-",
			}

			_, err := i.Initialize(context.Background())
			assert.NoError(t, err)

			r, err := depend.Resolve[domain.Assistant]()
			if tt.expectRegistered {
				assert.NoError(t, err)
				assert.NotNil(t, r)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
