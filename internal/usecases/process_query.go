package usecases

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/zral/mcp-ws/internal/common"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"
)

const (
	// Upper bound for each completion, matching what the tool answers usually need.
	QUERY_MAX_TOKENS = 2000

	// FALLBACK_ANSWER is returned when the model produced no content.
	FALLBACK_ANSWER = "Sorry, I could not process your request. Please try again."
)

//go:embed prompts/query.yml
var queryPrompt embed.FS

// QueryInput is one user query addressed to the agent.
type QueryInput struct {
	Query     string
	SessionID string
	UserID    string
}

// QueryAnswer is the result of one processed query.
type QueryAnswer struct {
	SessionID string
	Content   string
	ToolCalls int
	Usage     domain.AssistantUsage
}

// ProcessQuery defines the interface for answering a user query with tool-augmented LLM calls.
type ProcessQuery interface {
	// Execute answers the query within its session and persists the turn.
	Execute(ctx context.Context, input QueryInput) (QueryAnswer, error)
}

// ProcessQueryImpl is the implementation of the ProcessQuery use case.
type ProcessQueryImpl struct {
	memory        ConversationMemory
	catalog       domain.ToolCatalog
	invoker       domain.ToolInvoker
	assistant     domain.Assistant
	timeProvider  domain.CurrentTimeProvider
	logger        *zap.Logger
	model         string
	contextWindow int
	maxQueryChars int
}

// NewProcessQueryImpl creates a new instance of ProcessQueryImpl.
func NewProcessQueryImpl(
	memory ConversationMemory,
	catalog domain.ToolCatalog,
	invoker domain.ToolInvoker,
	assistant domain.Assistant,
	timeProvider domain.CurrentTimeProvider,
	logger *zap.Logger,
	model string,
	contextWindow int,
	maxQueryChars int,
) ProcessQueryImpl {
	return ProcessQueryImpl{
		memory:        memory,
		catalog:       catalog,
		invoker:       invoker,
		assistant:     assistant,
		timeProvider:  timeProvider,
		logger:        logger,
		model:         model,
		contextWindow: contextWindow,
		maxQueryChars: maxQueryChars,
	}
}

// Execute runs one query through the model. When the model requests tools they are invoked in order
// and a second completion, without tools, produces the final answer.
func (pq ProcessQueryImpl) Execute(ctx context.Context, input QueryInput) (QueryAnswer, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	started := time.Now()

	query := strings.TrimSpace(input.Query)
	if err := pq.validateQuery(query); telemetry.RecordErrorAndStatus(span, err) {
		return QueryAnswer{}, err
	}

	now := pq.timeProvider.Now()
	session := domain.NewConversationSession(input.SessionID, input.UserID, domain.GenerateAutoSessionTitle(query), now)
	if err := session.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return QueryAnswer{}, err
	}
	span.SetAttributes(attribute.String("session_id", session.ID))

	history := pq.loadContext(spanCtx, session.ID)

	prompt, err := pq.buildPromptMessages(now, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return QueryAnswer{}, fmt.Errorf("failed to build query prompt: %w", err)
	}

	userMsg := domain.ChatMessage{ChatRole: domain.ChatRole_User, Content: query}
	messages := append(prompt, domain.ToAssistantMessages(history)...)
	messages = append(messages, userMsg.ToAssistantMessage())

	first, err := pq.assistant.RunTurnSync(spanCtx, domain.AssistantTurnRequest{
		Model:            pq.model,
		Messages:         messages,
		MaxTokens:        common.Ptr(QUERY_MAX_TOKENS),
		AvailableActions: pq.actionDefinitions(),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return QueryAnswer{}, fmt.Errorf("first llm call: %w", err)
	}
	RecordLLMTokensUsed(spanCtx, pq.model, first.Usage)

	turn := []domain.ChatMessage{userMsg}
	final := first
	usage := first.Usage

	if len(first.ActionCalls) > 0 {
		assistantMsg := domain.ChatMessage{
			ChatRole:  domain.ChatRole_Assistant,
			Content:   first.Content,
			ToolCalls: first.ActionCalls,
		}
		turn = append(turn, assistantMsg)
		messages = append(messages, assistantMsg.ToAssistantMessage())

		for _, call := range first.ActionCalls {
			result := pq.invoker.Invoke(spanCtx, call.Name, call.Input)
			toolMsg := domain.ChatMessage{
				ChatRole:   domain.ChatRole_Tool,
				Content:    result.JSON(),
				ToolCallID: common.Ptr(call.ID),
			}
			turn = append(turn, toolMsg)
			messages = append(messages, toolMsg.ToAssistantMessage())
		}

		final, err = pq.assistant.RunTurnSync(spanCtx, domain.AssistantTurnRequest{
			Model:     pq.model,
			Messages:  messages,
			MaxTokens: common.Ptr(QUERY_MAX_TOKENS),
		})
		if telemetry.RecordErrorAndStatus(span, err) {
			return QueryAnswer{}, fmt.Errorf("second llm call: %w", err)
		}
		RecordLLMTokensUsed(spanCtx, pq.model, final.Usage)
		usage = usage.Add(final.Usage)
	}

	content := strings.TrimSpace(final.Content)
	if content == "" {
		content = FALLBACK_ANSWER
	}
	turn = append(turn, domain.ChatMessage{ChatRole: domain.ChatRole_Assistant, Content: content})

	if err := pq.memory.RecordTurn(spanCtx, session, turn); err != nil {
		pq.logger.Error("failed to persist conversation turn",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}

	span.SetAttributes(attribute.Int("tool_calls", len(first.ActionCalls)))
	RecordQueryDuration(spanCtx, time.Since(started), len(first.ActionCalls) > 0)
	return QueryAnswer{
		SessionID: session.ID,
		Content:   content,
		ToolCalls: len(first.ActionCalls),
		Usage:     usage,
	}, nil
}

func (pq ProcessQueryImpl) validateQuery(query string) error {
	if query == "" {
		return domain.NewValidationErr("query cannot be empty")
	}
	if pq.maxQueryChars > 0 && utf8.RuneCountInString(query) > pq.maxQueryChars {
		return domain.NewValidationErrf("query cannot exceed %d characters", pq.maxQueryChars)
	}
	return nil
}

// loadContext returns the recent messages of the session. Failures degrade to an empty history.
func (pq ProcessQueryImpl) loadContext(ctx context.Context, sessionID string) []domain.ChatMessage {
	history, err := pq.memory.RecentContext(ctx, sessionID, pq.contextWindow)
	if err != nil {
		pq.logger.Warn("failed to load conversation context, continuing without history",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil
	}
	return history
}

func (pq ProcessQueryImpl) actionDefinitions() []domain.AssistantActionDefinition {
	tools := pq.catalog.List()
	if len(tools) == 0 {
		return nil
	}
	defs := make([]domain.AssistantActionDefinition, 0, len(tools))
	for _, t := range tools {
		defs = append(defs, t.ActionDefinition())
	}
	return defs
}

// buildPromptMessages loads the system prompt and injects the current date. When the query mentions
// a date, the resolved calendar day is added so tools receive absolute dates.
func (pq ProcessQueryImpl) buildPromptMessages(now time.Time, query string) ([]domain.AssistantMessage, error) {
	file, err := queryPrompt.Open("prompts/query.yml")
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck

	prompt := []domain.AssistantMessage{}
	if err := yaml.NewDecoder(file).Decode(&prompt); err != nil {
		return nil, err
	}

	for i, msg := range prompt {
		if strings.Contains(msg.Content, "%[") {
			prompt[i].Content = fmt.Sprintf(msg.Content, now.Format(time.DateOnly))
		}
	}

	if date, ok := domain.ResolveTravelDate(query, now); ok && len(prompt) > 0 {
		prompt[0].Content += fmt.Sprintf("\nThe user's question refers to %s (%s).\n", date.Format(time.DateOnly), date.Weekday())
	}
	return prompt, nil
}

// InitProcessQuery initializes the ProcessQuery use case and registers it in the dependency container.
type InitProcessQuery struct {
	Memory        ConversationMemory         `resolve:""`
	Catalog       domain.ToolCatalog         `resolve:""`
	Invoker       domain.ToolInvoker         `resolve:""`
	Assistant     domain.Assistant           `resolve:""`
	TimeProvider  domain.CurrentTimeProvider `resolve:""`
	Logger        *zap.Logger                `resolve:""`
	Model         string                     `config:"LLM_MODEL" default:"gpt-4o-mini"`
	ContextWindow int                        `config:"CONTEXT_WINDOW" default:"10"`
	MaxQueryChars int                        `config:"MAX_QUERY_CHARS" default:"4000"`
}

// Initialize registers the ProcessQuery use case.
func (i InitProcessQuery) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ProcessQuery](NewProcessQueryImpl(
		i.Memory,
		i.Catalog,
		i.Invoker,
		i.Assistant,
		i.TimeProvider,
		i.Logger,
		i.Model,
		i.ContextWindow,
		i.MaxQueryChars,
	))
	return ctx, nil
}
