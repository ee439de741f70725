package domain

import (
	"context"
	"encoding/json"
)

// AssistantUsage contains token usage for one assistant turn.
type AssistantUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add returns the sum of both usages.
func (u AssistantUsage) Add(other AssistantUsage) AssistantUsage {
	return AssistantUsage{
		PromptTokens:     u.PromptTokens + other.PromptTokens,
		CompletionTokens: u.CompletionTokens + other.CompletionTokens,
		TotalTokens:      u.TotalTokens + other.TotalTokens,
	}
}

// AssistantActionCall contains one tool invocation requested by the assistant.
type AssistantActionCall struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Input string `json:"input"`
}

// AssistantMessage represents a message exchanged during assistant turns.
type AssistantMessage struct {
	Role         ChatRole
	Content      string
	ActionCallID *string
	ActionCalls  []AssistantActionCall
}

// AssistantActionDefinition describes one action the assistant may request.
type AssistantActionDefinition struct {
	Name        string
	Description string
	// Parameters is the JSON schema of the action arguments.
	Parameters json.RawMessage
}

// AssistantTurnRequest is the domain request for one assistant turn.
type AssistantTurnRequest struct {
	Model    string
	Messages []AssistantMessage
	// Optional generation settings.
	Temperature      *float64
	TopP             *float64
	MaxTokens        *int
	AvailableActions []AssistantActionDefinition
}

// AssistantTurnResponse contains the assistant reply for one turn.
type AssistantTurnResponse struct {
	Content     string
	ActionCalls []AssistantActionCall
	Usage       AssistantUsage
}

// Assistant defines LLM interaction in domain terms.
type Assistant interface {
	// RunTurnSync executes one assistant turn and returns the final response.
	RunTurnSync(ctx context.Context, req AssistantTurnRequest) (AssistantTurnResponse, error)
}
