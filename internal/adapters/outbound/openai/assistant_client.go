// Package openai adapts the go-openai SDK to domain.Assistant. It works against
// OpenAI and any endpoint exposing the same chat completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	goopenai "github.com/sashabaranov/go-openai"
	"github.com/zral/mcp-ws/internal/adapters/outbound/modelrunner"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProviderName selects this adapter through LLM_PROVIDER.
const ProviderName = "openai"

// ChatCompletionCreator is the subset of *goopenai.Client used by the adapter.
type ChatCompletionCreator interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// AssistantClient implements domain.Assistant with the go-openai SDK.
type AssistantClient struct {
	client ChatCompletionCreator
}

// NewAssistantClient creates a new AssistantClient.
func NewAssistantClient(client ChatCompletionCreator) AssistantClient {
	return AssistantClient{client: client}
}

// RunTurnSync implements domain.Assistant.
func (a AssistantClient) RunTurnSync(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("llm.model", req.Model),
		attribute.Int("llm.tools", len(req.AvailableActions)),
	))
	defer span.End()

	if req.Model == "" {
		err := errors.New("model is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}
	if len(req.Messages) == 0 {
		err := errors.New("messages are required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}

	resp, err := a.client.CreateChatCompletion(spanCtx, toChatCompletionRequest(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AssistantTurnResponse{}, fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}

	msg := resp.Choices[0].Message
	res := domain.AssistantTurnResponse{
		Content: msg.Content,
		Usage: domain.AssistantUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	for _, tc := range msg.ToolCalls {
		id := tc.ID
		if id == "" {
			id = "call_" + uuid.NewString()
		}
		res.ActionCalls = append(res.ActionCalls, domain.AssistantActionCall{
			ID:    id,
			Name:  tc.Function.Name,
			Input: tc.Function.Arguments,
		})
	}
	return res, nil
}

func toChatCompletionRequest(req domain.AssistantTurnRequest) goopenai.ChatCompletionRequest {
	out := goopenai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: make([]goopenai.ChatCompletionMessage, len(req.Messages)),
	}
	if req.Temperature != nil {
		out.Temperature = float32(*req.Temperature)
	}
	if req.TopP != nil {
		out.TopP = float32(*req.TopP)
	}
	if req.MaxTokens != nil {
		out.MaxTokens = *req.MaxTokens
	}

	for i, msg := range req.Messages {
		m := goopenai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
		if msg.ActionCallID != nil {
			m.ToolCallID = *msg.ActionCallID
		}
		for _, call := range msg.ActionCalls {
			m.ToolCalls = append(m.ToolCalls, goopenai.ToolCall{
				ID:   call.ID,
				Type: goopenai.ToolTypeFunction,
				Function: goopenai.FunctionCall{
					Name:      call.Name,
					Arguments: call.Input,
				},
			})
		}
		out.Messages[i] = m
	}

	if len(req.AvailableActions) > 0 {
		out.ToolChoice = "auto"
		out.Tools = make([]goopenai.Tool, len(req.AvailableActions))
		for i, action := range req.AvailableActions {
			out.Tools[i] = goopenai.Tool{
				Type: goopenai.ToolTypeFunction,
				Function: &goopenai.FunctionDefinition{
					Name:        action.Name,
					Description: action.Description,
					Parameters:  action.Parameters,
				},
			}
		}
	}
	return out
}

// InitAssistantClient registers the go-openai adapter when LLM_PROVIDER selects it.
// It also rejects unknown providers so a typo fails the startup.
type InitAssistantClient struct {
	HttpClient *http.Client `resolve:""`
	Provider   string       `config:"LLM_PROVIDER" default:"openai"`
	APIKey     string       `config:"OPENAI_API_KEY" default:"-"`
	BaseURL    string       `config:"OPENAI_BASE_URL" default:"https://models.github.ai/inference"`
}

// Initialize registers domain.Assistant.
func (i InitAssistantClient) Initialize(ctx context.Context) (context.Context, error) {
	switch i.Provider {
	case ProviderName:
	case modelrunner.ProviderName:
		return ctx, nil
	default:
		return ctx, fmt.Errorf("unsupported LLM_PROVIDER %q: expected %q or %q", i.Provider, ProviderName, modelrunner.ProviderName)
	}

	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	cfg := goopenai.DefaultConfig(apiKey)
	cfg.BaseURL = i.BaseURL
	cfg.HTTPClient = i.HttpClient

	depend.Register[domain.Assistant](NewAssistantClient(goopenai.NewClientWithConfig(cfg)))
	return ctx, nil
}
