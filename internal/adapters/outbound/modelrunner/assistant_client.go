package modelrunner

import (
	"context"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProviderName selects this adapter through LLM_PROVIDER.
const ProviderName = "modelrunner"

// AssistantClient adapts ChatCompletionsClient to domain.Assistant.
type AssistantClient struct {
	client ChatCompletionsClient
}

// NewAssistantClientAdapter creates a new adapter.
func NewAssistantClientAdapter(client ChatCompletionsClient) AssistantClient {
	return AssistantClient{client: client}
}

// RunTurnSync implements domain.Assistant.
func (a AssistantClient) RunTurnSync(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("llm.model", req.Model),
		attribute.Int("llm.tools", len(req.AvailableActions)),
	))
	defer span.End()

	resp, err := a.client.Chat(spanCtx, toChatRequest(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AssistantTurnResponse{}, err
	}
	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}

	msg := resp.Choices[0].Message
	res := domain.AssistantTurnResponse{Content: msg.Content}
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
	if resp.Usage != nil {
		res.Usage = domain.AssistantUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return res, nil
}

func toChatRequest(req domain.AssistantTurnRequest) ChatRequest {
	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        req.TopP,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}

	for i, msg := range req.Messages {
		adpMsg := ChatMessage{
			Role:       string(msg.Role),
			ToolCallID: msg.ActionCallID,
			Content:    msg.Content,
		}
		for _, actionCall := range msg.ActionCalls {
			adpMsg.ToolCalls = append(adpMsg.ToolCalls, ToolCall{
				ID:   actionCall.ID,
				Type: "function",
				Function: ToolCallFunction{
					Name:      actionCall.Name,
					Arguments: actionCall.Input,
				},
			})
		}
		adapterReq.Messages[i] = adpMsg
	}

	if len(req.AvailableActions) > 0 {
		adapterReq.ToolChoice = "auto"
		adapterReq.Tools = make([]Tool, len(req.AvailableActions))
		for i, action := range req.AvailableActions {
			adapterReq.Tools[i] = Tool{
				Type: "function",
				Function: ToolFunc{
					Name:        action.Name,
					Description: action.Description,
					Parameters:  action.Parameters,
				},
			}
		}
	}

	return adapterReq
}

// InitAssistantClient registers the model runner adapter when LLM_PROVIDER selects it.
type InitAssistantClient struct {
	HttpClient *http.Client `resolve:""`
	Provider   string       `config:"LLM_PROVIDER" default:"openai"`
	ModelHost  string       `config:"LLM_MODEL_HOST" default:"http://localhost:12434/engines"`
	APIKey     string       `config:"LLM_API_KEY" default:"-"`
}

// Initialize registers domain.Assistant.
func (i InitAssistantClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.Provider != ProviderName {
		return ctx, nil
	}
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	depend.Register[domain.Assistant](NewAssistantClientAdapter(NewChatCompletionsClient(i.ModelHost, apiKey, i.HttpClient)))
	return ctx, nil
}
