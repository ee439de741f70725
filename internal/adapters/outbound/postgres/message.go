package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var messageFields = []string{
	"id",
	"session_id",
	"role",
	"content",
	"tool_calls",
	"tool_call_id",
	"created_at",
}

var messageInsertFields = messageFields[1:]

// ChatMessageRepository persists conversation messages in Postgres.
type ChatMessageRepository struct {
	sb squirrel.StatementBuilderType
}

// NewChatMessageRepository creates a new ChatMessageRepository.
func NewChatMessageRepository(br squirrel.BaseRunner) ChatMessageRepository {
	return ChatMessageRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateChatMessages inserts the messages in a single statement, keeping their order.
func (r ChatMessageRepository) CreateChatMessages(ctx context.Context, messages []domain.ChatMessage) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("messages", len(messages)),
	))
	defer span.End()

	if len(messages) == 0 {
		return nil
	}

	insertQry := r.sb.
		Insert("messages").
		Columns(messageInsertFields...)

	for _, message := range messages {
		if err := message.Validate(); telemetry.RecordErrorAndStatus(span, err) {
			return err
		}

		var toolCallsJSON []byte
		if len(message.ToolCalls) > 0 {
			b, err := json.Marshal(message.ToolCalls)
			if telemetry.RecordErrorAndStatus(span, err) {
				return err
			}
			toolCallsJSON = b
		}

		insertQry = insertQry.Values(
			message.SessionID,
			message.ChatRole,
			message.Content,
			toolCallsJSON,
			message.ToolCallID,
			message.CreatedAt,
		)
	}

	_, err := insertQry.ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListChatMessages returns the latest messages of a session in insertion order.
// Ids are allocated while the session row is locked, so they follow commit order per session.
// If limit is 0 every message of the session is returned.
func (r ChatMessageRepository) ListChatMessages(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session_id", sessionID),
		attribute.Int("limit", limit),
	))
	defer span.End()

	qry := r.sb.
		Select(messageFields...).
		From("messages").
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("id DESC")

	if limit > 0 {
		qry = qry.Limit(uint64(limit))
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	msgs := []domain.ChatMessage{}
	for rows.Next() {
		var (
			m      domain.ChatMessage
			tcJSON []byte
		)

		if err := rows.Scan(
			&m.ID,
			&m.SessionID,
			&m.ChatRole,
			&m.Content,
			&tcJSON,
			&m.ToolCallID,
			&m.CreatedAt,
		); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if len(tcJSON) > 0 {
			if err := json.Unmarshal(tcJSON, &m.ToolCalls); telemetry.RecordErrorAndStatus(span, err) {
				return nil, err
			}
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	// newest first from the query, callers want oldest first
	slices.Reverse(msgs)

	return msgs, nil
}

// DeleteChatMessagesBefore deletes messages created before cutoff.
// When userID is set only messages of that user's sessions are removed.
func (r ChatMessageRepository) DeleteChatMessagesBefore(ctx context.Context, cutoff time.Time, userID string) (int64, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("cutoff", cutoff.Format(time.RFC3339)),
		attribute.String("user_id", userID),
	))
	defer span.End()

	qry := r.sb.
		Delete("messages").
		Where(squirrel.Lt{"created_at": cutoff})
	if userID != "" {
		qry = qry.Where(squirrel.Expr("session_id IN (SELECT session_id FROM sessions WHERE user_id = ?)", userID))
	}

	res, err := qry.ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	deleted, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return deleted, nil
}

// InitChatMessageRepository is a Symbiont initializer for ChatMessageRepository.
type InitChatMessageRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ChatMessageRepository in the dependency container.
func (r InitChatMessageRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ChatMessageRepository](NewChatMessageRepository(r.DB))
	return ctx, nil
}
