package http

import (
	"errors"
	"net/http"

	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/usecases"
)

const internalErrorMessage = "internal server error"

// toError maps a use case error to an HTTP status and a client-safe message.
func toError(err error) (int, string) {
	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

func toTool(info usecases.ToolInfo) Tool {
	return Tool{
		Name:        info.Descriptor.Name,
		Description: info.Descriptor.Description,
		InputSchema: info.Descriptor.Parameters(),
		Method:      info.Endpoint.Method,
		Path:        info.Endpoint.Path,
		Explicit:    info.Endpoint.Explicit,
	}
}

func toSession(s domain.ConversationSession) Session {
	return Session{
		SessionID:      s.ID,
		UserID:         s.UserID,
		Title:          s.Title,
		CreatedAt:      s.CreatedAt,
		LastActivityAt: s.LastActivityAt,
		MessageCount:   s.MessageCount,
	}
}

func toMessage(m domain.ChatMessage) Message {
	msg := Message{
		ID:         m.ID,
		Role:       string(m.ChatRole),
		Content:    m.Content,
		ToolCallID: m.ToolCallID,
		CreatedAt:  m.CreatedAt,
	}
	for _, call := range m.ToolCalls {
		msg.ToolCalls = append(msg.ToolCalls, ToolCall{
			ID:        call.ID,
			Name:      call.Name,
			Arguments: call.Input,
		})
	}
	return msg
}

func toMemoryStats(s domain.MemoryStats) MemoryStats {
	return MemoryStats{
		TotalMessages: s.TotalMessages,
		TotalSessions: s.TotalSessions,
		UniqueUsers:   s.UniqueUsers,
	}
}
