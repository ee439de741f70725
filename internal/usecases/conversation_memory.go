package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// DEFAULT_SESSION_LIST_LIMIT is used when ListSessions is called without a limit.
	DEFAULT_SESSION_LIST_LIMIT = 20
	MAX_SESSION_LIST_LIMIT     = 100
)

// ConversationMemory defines the interface for the persistent conversation store.
type ConversationMemory interface {
	// CreateSession creates a new session and returns it with its generated ID.
	CreateSession(ctx context.Context, userID, title string) (domain.ConversationSession, error)
	// AppendMessages appends messages to an existing session in one transaction.
	AppendMessages(ctx context.Context, sessionID string, msgs ...domain.ChatMessage) error
	// RecordTurn creates the session when missing and appends the messages of one turn atomically.
	RecordTurn(ctx context.Context, session domain.ConversationSession, msgs []domain.ChatMessage) error
	// RecentContext returns the last window messages of a session, oldest first.
	RecentContext(ctx context.Context, sessionID string, window int) ([]domain.ChatMessage, error)
	// History returns every message of a session, oldest first.
	History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
	// ListSessions returns sessions ordered by last activity, newest first.
	ListSessions(ctx context.Context, userID string, limit int) ([]domain.ConversationSession, error)
	// PurgeOlderThan deletes messages and inactive sessions older than the given number of days.
	PurgeOlderThan(ctx context.Context, days int, userID string) (domain.PurgeResult, error)
	// Stats returns aggregate counters over the stored conversations.
	Stats(ctx context.Context) (domain.MemoryStats, error)
}

// ConversationMemoryImpl is the implementation of the ConversationMemory use case.
type ConversationMemoryImpl struct {
	sessionRepo  domain.SessionRepository
	messageRepo  domain.ChatMessageRepository
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewConversationMemoryImpl creates a new instance of ConversationMemoryImpl.
func NewConversationMemoryImpl(
	sessionRepo domain.SessionRepository,
	messageRepo domain.ChatMessageRepository,
	uow domain.UnitOfWork,
	timeProvider domain.CurrentTimeProvider,
) ConversationMemoryImpl {
	return ConversationMemoryImpl{
		sessionRepo:  sessionRepo,
		messageRepo:  messageRepo,
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// CreateSession creates a new session for the user. Empty values fall back to the defaults.
func (cm ConversationMemoryImpl) CreateSession(ctx context.Context, userID, title string) (domain.ConversationSession, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	session := domain.NewConversationSession("", userID, title, cm.timeProvider.Now())
	span.SetAttributes(attribute.String("session_id", session.ID))

	if err := cm.sessionRepo.CreateSession(spanCtx, session); telemetry.RecordErrorAndStatus(span, err) {
		return domain.ConversationSession{}, err
	}
	return session, nil
}

// AppendMessages appends msgs to the session. The session row is locked for the duration of the
// transaction so concurrent appends to the same session are serialized.
func (cm ConversationMemoryImpl) AppendMessages(ctx context.Context, sessionID string, msgs ...domain.ChatMessage) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(sessionID) == "" {
		err := domain.NewValidationErr("session_id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	if len(msgs) == 0 {
		return nil
	}

	now := cm.timeProvider.Now()
	err := cm.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		found, err := uow.Session().TouchSession(spanCtx, sessionID, len(msgs), now)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewNotFoundErrf("session %s not found", sessionID)
		}
		return uow.ChatMessage().CreateChatMessages(spanCtx, stampMessages(sessionID, now, msgs))
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// RecordTurn persists the messages of one turn. The session is created first when it does not exist yet.
func (cm ConversationMemoryImpl) RecordTurn(ctx context.Context, session domain.ConversationSession, msgs []domain.ChatMessage) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.String("session_id", session.ID), attribute.Int("messages", len(msgs)))

	if err := session.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	now := cm.timeProvider.Now()
	err := cm.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Session().CreateSession(spanCtx, session); err != nil {
			return err
		}
		if len(msgs) == 0 {
			return nil
		}
		if _, err := uow.Session().TouchSession(spanCtx, session.ID, len(msgs), now); err != nil {
			return err
		}
		return uow.ChatMessage().CreateChatMessages(spanCtx, stampMessages(session.ID, now, msgs))
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// RecentContext returns the last window messages of the session, oldest first.
func (cm ConversationMemoryImpl) RecentContext(ctx context.Context, sessionID string, window int) ([]domain.ChatMessage, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if window <= 0 {
		return []domain.ChatMessage{}, nil
	}

	msgs, err := cm.messageRepo.ListChatMessages(spanCtx, sessionID, window)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return msgs, nil
}

// History returns the full message history of the session, oldest first.
func (cm ConversationMemoryImpl) History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, found, err := cm.sessionRepo.GetSession(spanCtx, sessionID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !found {
		err := domain.NewNotFoundErrf("session %s not found", sessionID)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	msgs, err := cm.messageRepo.ListChatMessages(spanCtx, sessionID, 0)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return msgs, nil
}

// ListSessions returns the sessions of userID, or of every user when userID is empty.
func (cm ConversationMemoryImpl) ListSessions(ctx context.Context, userID string, limit int) ([]domain.ConversationSession, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if limit <= 0 {
		limit = DEFAULT_SESSION_LIST_LIMIT
	}
	if limit > MAX_SESSION_LIST_LIMIT {
		limit = MAX_SESSION_LIST_LIMIT
	}

	sessions, err := cm.sessionRepo.ListSessions(spanCtx, userID, limit)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return sessions, nil
}

// PurgeOlderThan removes messages created more than days ago and sessions inactive since then.
func (cm ConversationMemoryImpl) PurgeOlderThan(ctx context.Context, days int, userID string) (domain.PurgeResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if days <= 0 {
		err := domain.NewValidationErr("older_than_days must be greater than zero")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.PurgeResult{}, err
	}

	cutoff := cm.timeProvider.Now().Add(-time.Duration(days) * 24 * time.Hour)

	var result domain.PurgeResult
	err := cm.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		deleted, err := uow.ChatMessage().DeleteChatMessagesBefore(spanCtx, cutoff, userID)
		if err != nil {
			return err
		}
		result.Messages = deleted

		deleted, err = uow.Session().DeleteSessionsInactiveSince(spanCtx, cutoff, userID)
		if err != nil {
			return err
		}
		result.Sessions = deleted

		return uow.Session().RecountMessages(spanCtx, userID)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.PurgeResult{}, err
	}

	span.SetAttributes(
		attribute.Int64("deleted_messages", result.Messages),
		attribute.Int64("deleted_sessions", result.Sessions),
	)
	return result, nil
}

// Stats returns aggregate counters over the stored conversations.
func (cm ConversationMemoryImpl) Stats(ctx context.Context) (domain.MemoryStats, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	stats, err := cm.sessionRepo.Stats(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.MemoryStats{}, err
	}
	return stats, nil
}

// stampMessages assigns the session and creation time to messages that do not carry them yet.
func stampMessages(sessionID string, now time.Time, msgs []domain.ChatMessage) []domain.ChatMessage {
	stamped := make([]domain.ChatMessage, len(msgs))
	for i, m := range msgs {
		m.SessionID = sessionID
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		stamped[i] = m
	}
	return stamped
}

// InitConversationMemory initializes the ConversationMemory use case and registers it in the dependency container.
type InitConversationMemory struct {
	SessionRepo  domain.SessionRepository     `resolve:""`
	MessageRepo  domain.ChatMessageRepository `resolve:""`
	Uow          domain.UnitOfWork            `resolve:""`
	TimeProvider domain.CurrentTimeProvider   `resolve:""`
}

// Initialize registers the ConversationMemory use case.
func (i InitConversationMemory) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ConversationMemory](NewConversationMemoryImpl(i.SessionRepo, i.MessageRepo, i.Uow, i.TimeProvider))
	return ctx, nil
}
