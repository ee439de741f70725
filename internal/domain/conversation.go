package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultUserID owns sessions created without an explicit user.
	DefaultUserID = "default"
	// DefaultSessionTitle is used when a session is created without a title.
	DefaultSessionTitle = "New Conversation"

	maxSessionIDLength = 128
)

// ConversationSession groups the messages of one conversation.
type ConversationSession struct {
	ID             string
	UserID         string
	Title          string
	CreatedAt      time.Time
	LastActivityAt time.Time
	MessageCount   int
}

// Validate checks if the session has valid data.
func (s ConversationSession) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return NewValidationErr("session_id cannot be empty")
	}
	if len(s.ID) > maxSessionIDLength {
		return NewValidationErrf("session_id cannot exceed %d characters", maxSessionIDLength)
	}
	if strings.TrimSpace(s.UserID) == "" {
		return NewValidationErr("user_id cannot be empty")
	}
	return nil
}

// NewConversationSession builds a session starting at now, filling in defaults for empty fields.
func NewConversationSession(id, userID, title string, now time.Time) ConversationSession {
	if strings.TrimSpace(userID) == "" {
		userID = DefaultUserID
	}
	if strings.TrimSpace(id) == "" {
		id = NewSessionID(userID, now)
	}
	if strings.TrimSpace(title) == "" {
		title = DefaultSessionTitle
	}
	return ConversationSession{
		ID:             id,
		UserID:         userID,
		Title:          title,
		CreatedAt:      now,
		LastActivityAt: now,
	}
}

// NewSessionID generates a session identifier of the form <user>_<YYYYmmdd_HHMMSS>_<suffix>.
func NewSessionID(userID string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s", userID, now.UTC().Format("20060102_150405"), uuid.NewString()[:8])
}

// GenerateAutoSessionTitle generates a session title based on the user's first query.
func GenerateAutoSessionTitle(query string) string {
	words := strings.Fields(query)
	if len(words) == 0 {
		return DefaultSessionTitle
	}
	if len(words) <= 5 {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:5], " ") + "..."
}

// PurgeResult reports how many rows a retention cleanup removed.
type PurgeResult struct {
	Messages int64
	Sessions int64
}

// Total returns the number of removed messages and sessions.
func (p PurgeResult) Total() int64 {
	return p.Messages + p.Sessions
}

// MemoryStats summarizes the stored conversations.
type MemoryStats struct {
	TotalMessages int64
	TotalSessions int64
	UniqueUsers   int64
}

// SessionRepository defines the interface for managing conversation sessions.
type SessionRepository interface {
	// CreateSession inserts the session unless one with the same ID already exists.
	CreateSession(ctx context.Context, session ConversationSession) error
	// GetSession returns the session with the given ID and whether it was found.
	GetSession(ctx context.Context, sessionID string) (ConversationSession, bool, error)
	// ListSessions returns sessions ordered by last activity, newest first. An empty userID lists every user.
	ListSessions(ctx context.Context, userID string, limit int) ([]ConversationSession, error)
	// TouchSession locks the session row, adds to its message count and bumps its last activity.
	// It reports false when the session does not exist.
	TouchSession(ctx context.Context, sessionID string, added int, at time.Time) (bool, error)
	// DeleteSessionsInactiveSince deletes sessions without activity since cutoff, optionally scoped to a user.
	DeleteSessionsInactiveSince(ctx context.Context, cutoff time.Time, userID string) (int64, error)
	// RecountMessages recomputes message counts, optionally scoped to a user.
	RecountMessages(ctx context.Context, userID string) error
	// Stats returns aggregate counters over all sessions.
	Stats(ctx context.Context) (MemoryStats, error)
}
