package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var sessionFields = []string{
	"session_id",
	"user_id",
	"title",
	"created_at",
	"last_activity_at",
	"message_count",
}

// SessionRepository is a PostgreSQL implementation of domain.SessionRepository.
type SessionRepository struct {
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(br squirrel.BaseRunner) SessionRepository {
	return SessionRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateSession inserts the session, leaving an existing row with the same ID untouched.
func (r SessionRepository) CreateSession(ctx context.Context, session domain.ConversationSession) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session_id", session.ID),
	))
	defer span.End()

	if err := session.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err := r.sb.
		Insert("sessions").
		Columns(sessionFields...).
		Values(
			session.ID,
			session.UserID,
			session.Title,
			session.CreatedAt,
			session.LastActivityAt,
			session.MessageCount,
		).
		Suffix("ON CONFLICT (session_id) DO NOTHING").
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// GetSession retrieves a session by ID.
func (r SessionRepository) GetSession(ctx context.Context, sessionID string) (domain.ConversationSession, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session_id", sessionID),
	))
	defer span.End()

	var s domain.ConversationSession
	err := r.sb.
		Select(sessionFields...).
		From("sessions").
		Where(squirrel.Eq{"session_id": sessionID}).
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(
			&s.ID,
			&s.UserID,
			&s.Title,
			&s.CreatedAt,
			&s.LastActivityAt,
			&s.MessageCount,
		)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ConversationSession{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ConversationSession{}, false, err
	}
	return s, true, nil
}

// ListSessions returns sessions ordered by last activity, newest first.
func (r SessionRepository) ListSessions(ctx context.Context, userID string, limit int) ([]domain.ConversationSession, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("user_id", userID),
		attribute.Int("limit", limit),
	))
	defer span.End()

	qry := r.sb.
		Select(sessionFields...).
		From("sessions").
		OrderBy("last_activity_at DESC")

	if userID != "" {
		qry = qry.Where(squirrel.Eq{"user_id": userID})
	}
	if limit > 0 {
		qry = qry.Limit(uint64(limit))
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	sessions := []domain.ConversationSession{}
	for rows.Next() {
		var s domain.ConversationSession
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Title,
			&s.CreatedAt,
			&s.LastActivityAt,
			&s.MessageCount,
		); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return sessions, nil
}

// TouchSession adds to the message count and bumps the last activity of a session.
// The UPDATE takes the row lock, so concurrent appends to one session run one after another.
func (r SessionRepository) TouchSession(ctx context.Context, sessionID string, added int, at time.Time) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session_id", sessionID),
		attribute.Int("added", added),
	))
	defer span.End()

	res, err := r.sb.
		Update("sessions").
		Set("message_count", squirrel.Expr("message_count + ?", added)).
		Set("last_activity_at", at).
		Where(squirrel.Eq{"session_id": sessionID}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return affected > 0, nil
}

// DeleteSessionsInactiveSince deletes sessions whose last activity is older than cutoff.
func (r SessionRepository) DeleteSessionsInactiveSince(ctx context.Context, cutoff time.Time, userID string) (int64, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("cutoff", cutoff.Format(time.RFC3339)),
		attribute.String("user_id", userID),
	))
	defer span.End()

	qry := r.sb.
		Delete("sessions").
		Where(squirrel.Lt{"last_activity_at": cutoff})
	if userID != "" {
		qry = qry.Where(squirrel.Eq{"user_id": userID})
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

// RecountMessages recomputes message_count from the messages table.
func (r SessionRepository) RecountMessages(ctx context.Context, userID string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("user_id", userID),
	))
	defer span.End()

	qry := r.sb.
		Update("sessions").
		Set("message_count", squirrel.Expr("(SELECT COUNT(*) FROM messages WHERE messages.session_id = sessions.session_id)"))
	if userID != "" {
		qry = qry.Where(squirrel.Eq{"user_id": userID})
	}

	_, err := qry.ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Stats returns aggregate counters over sessions and messages.
func (r SessionRepository) Stats(ctx context.Context) (domain.MemoryStats, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var stats domain.MemoryStats
	err := r.sb.
		Select(
			"(SELECT COUNT(*) FROM messages)",
			"COUNT(*)",
			"COUNT(DISTINCT user_id)",
		).
		From("sessions").
		QueryRowContext(spanCtx).
		Scan(
			&stats.TotalMessages,
			&stats.TotalSessions,
			&stats.UniqueUsers,
		)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.MemoryStats{}, err
	}
	return stats, nil
}

// InitSessionRepository is a Symbiont initializer for SessionRepository.
type InitSessionRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the SessionRepository in the dependency container.
func (r InitSessionRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SessionRepository](NewSessionRepository(r.DB))
	return ctx, nil
}
