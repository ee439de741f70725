package domain

import (
	"context"
	"time"
)

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
	ChatRole_Tool      ChatRole = "tool"
)

// IsValid reports whether the role is one of the known chat roles.
func (r ChatRole) IsValid() bool {
	switch r {
	case ChatRole_User, ChatRole_Assistant, ChatRole_System, ChatRole_Tool:
		return true
	}
	return false
}

// ChatMessage is one persisted message of a conversation session.
type ChatMessage struct {
	ID         int64
	SessionID  string
	ChatRole   ChatRole
	Content    string
	ToolCalls  []AssistantActionCall
	ToolCallID *string
	CreatedAt  time.Time
}

// Validate checks if the message has valid data.
func (m ChatMessage) Validate() error {
	if m.SessionID == "" {
		return NewValidationErr("message session_id cannot be empty")
	}
	if !m.ChatRole.IsValid() {
		return NewValidationErr("invalid message role: " + string(m.ChatRole))
	}
	if len(m.ToolCalls) > 0 && m.ChatRole != ChatRole_Assistant {
		return NewValidationErr("only assistant messages can carry tool calls")
	}
	return nil
}

// ToAssistantMessage converts the persisted message into an LLM message.
func (m ChatMessage) ToAssistantMessage() AssistantMessage {
	return AssistantMessage{
		Role:         m.ChatRole,
		Content:      m.Content,
		ActionCallID: m.ToolCallID,
		ActionCalls:  m.ToolCalls,
	}
}

// ToAssistantMessages converts a chronological message window into LLM messages.
// Leading tool results are dropped because the call that produced them fell outside the window.
func ToAssistantMessages(msgs []ChatMessage) []AssistantMessage {
	start := 0
	for start < len(msgs) && msgs[start].ChatRole == ChatRole_Tool {
		start++
	}
	res := make([]AssistantMessage, 0, len(msgs)-start)
	for _, m := range msgs[start:] {
		res = append(res, m.ToAssistantMessage())
	}
	return res
}

// ChatMessageRepository defines the interface for chat message persistence
type ChatMessageRepository interface {
	// CreateChatMessages appends messages to a session preserving their order.
	CreateChatMessages(ctx context.Context, messages []ChatMessage) error

	// ListChatMessages returns the latest messages of a session ordered oldest first.
	// If limit is 0 all messages are returned.
	ListChatMessages(ctx context.Context, sessionID string, limit int) ([]ChatMessage, error)

	// DeleteChatMessagesBefore deletes messages created before cutoff, optionally scoped to a user.
	DeleteChatMessagesBefore(ctx context.Context, cutoff time.Time, userID string) (int64, error)
}
