package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/zral/mcp-ws/internal/domain"
)

const selectSessionsSQL = "SELECT session_id, user_id, title, created_at, last_activity_at, message_count FROM sessions"

func TestSessionRepository_CreateSession(t *testing.T) {
	now := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	session := domain.ConversationSession{
		ID:             "default_20260502_080000_abcd1234",
		UserID:         "default",
		Title:          "Weather in Oslo",
		CreatedAt:      now,
		LastActivityAt: now,
	}

	tests := map[string]struct {
		session   domain.ConversationSession
		expect    func(sqlmock.Sqlmock)
		expectErr bool
	}{
		"success": {
			session: session,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO sessions (session_id,user_id,title,created_at,last_activity_at,message_count) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (session_id) DO NOTHING").
					WithArgs(session.ID, session.UserID, session.Title, now, now, 0).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"validation-error": {
			session:   domain.ConversationSession{UserID: "default"},
			expect:    func(m sqlmock.Sqlmock) {},
			expectErr: true,
		},
		"database-error": {
			session: session,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO sessions (session_id,user_id,title,created_at,last_activity_at,message_count) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (session_id) DO NOTHING").
					WithArgs(session.ID, session.UserID, session.Title, now, now, 0).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewSessionRepository(db)
			gotErr := repo.CreateSession(context.Background(), tt.session)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_GetSession(t *testing.T) {
	now := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		expect          func(sqlmock.Sqlmock)
		expectedSession domain.ConversationSession
		expectedFound   bool
		expectErr       bool
	}{
		"found": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(sessionFields).
					AddRow("s1", "default", "Trip", now, now, 4)
				m.ExpectQuery(selectSessionsSQL + " WHERE session_id = $1 LIMIT 1").
					WithArgs("s1").
					WillReturnRows(rows)
			},
			expectedSession: domain.ConversationSession{
				ID:             "s1",
				UserID:         "default",
				Title:          "Trip",
				CreatedAt:      now,
				LastActivityAt: now,
				MessageCount:   4,
			},
			expectedFound: true,
		},
		"not-found": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(selectSessionsSQL + " WHERE session_id = $1 LIMIT 1").
					WithArgs("s1").
					WillReturnError(sql.ErrNoRows)
			},
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(selectSessionsSQL + " WHERE session_id = $1 LIMIT 1").
					WithArgs("s1").
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewSessionRepository(db)
			got, found, gotErr := repo.GetSession(context.Background(), "s1")
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedSession, got)
				assert.Equal(t, tt.expectedFound, found)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_ListSessions(t *testing.T) {
	t1 := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		userID    string
		limit     int
		expect    func(sqlmock.Sqlmock)
		expected  []domain.ConversationSession
		expectErr bool
	}{
		"all-users": {
			limit: 20,
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(sessionFields).
					AddRow("s2", "ingrid", "Bergen", t2, t2, 2).
					AddRow("s1", "default", "Oslo", t1, t1, 6)
				m.ExpectQuery(selectSessionsSQL + " ORDER BY last_activity_at DESC LIMIT 20").
					WillReturnRows(rows)
			},
			expected: []domain.ConversationSession{
				{ID: "s2", UserID: "ingrid", Title: "Bergen", CreatedAt: t2, LastActivityAt: t2, MessageCount: 2},
				{ID: "s1", UserID: "default", Title: "Oslo", CreatedAt: t1, LastActivityAt: t1, MessageCount: 6},
			},
		},
		"scoped-to-user": {
			userID: "ingrid",
			limit:  5,
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(sessionFields).
					AddRow("s2", "ingrid", "Bergen", t2, t2, 2)
				m.ExpectQuery(selectSessionsSQL + " WHERE user_id = $1 ORDER BY last_activity_at DESC LIMIT 5").
					WithArgs("ingrid").
					WillReturnRows(rows)
			},
			expected: []domain.ConversationSession{
				{ID: "s2", UserID: "ingrid", Title: "Bergen", CreatedAt: t2, LastActivityAt: t2, MessageCount: 2},
			},
		},
		"empty": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(selectSessionsSQL + " ORDER BY last_activity_at DESC").
					WillReturnRows(sqlmock.NewRows(sessionFields))
			},
			expected: []domain.ConversationSession{},
		},
		"database-error": {
			limit: 20,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(selectSessionsSQL + " ORDER BY last_activity_at DESC LIMIT 20").
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewSessionRepository(db)
			got, gotErr := repo.ListSessions(context.Background(), tt.userID, tt.limit)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_TouchSession(t *testing.T) {
	at := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	const touchSQL = "UPDATE sessions SET message_count = message_count + $1, last_activity_at = $2 WHERE session_id = $3"

	tests := map[string]struct {
		expect        func(sqlmock.Sqlmock)
		expectedFound bool
		expectErr     bool
	}{
		"touched": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(touchSQL).
					WithArgs(3, at, "s1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedFound: true,
		},
		"missing-session": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(touchSQL).
					WithArgs(3, at, "s1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedFound: false,
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(touchSQL).
					WithArgs(3, at, "s1").
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewSessionRepository(db)
			found, gotErr := repo.TouchSession(context.Background(), "s1", 3, at)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedFound, found)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_DeleteSessionsInactiveSince(t *testing.T) {
	cutoff := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		userID          string
		expect          func(sqlmock.Sqlmock)
		expectedDeleted int64
		expectErr       bool
	}{
		"all-users": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM sessions WHERE last_activity_at < $1").
					WithArgs(cutoff).
					WillReturnResult(sqlmock.NewResult(0, 4))
			},
			expectedDeleted: 4,
		},
		"scoped-to-user": {
			userID: "ingrid",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM sessions WHERE last_activity_at < $1 AND user_id = $2").
					WithArgs(cutoff, "ingrid").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedDeleted: 1,
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM sessions WHERE last_activity_at < $1").
					WithArgs(cutoff).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewSessionRepository(db)
			deleted, gotErr := repo.DeleteSessionsInactiveSince(context.Background(), cutoff, tt.userID)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedDeleted, deleted)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_RecountMessages(t *testing.T) {
	const recountSQL = "UPDATE sessions SET message_count = (SELECT COUNT(*) FROM messages WHERE messages.session_id = sessions.session_id)"

	tests := map[string]struct {
		userID    string
		expect    func(sqlmock.Sqlmock)
		expectErr bool
	}{
		"all-users": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(recountSQL).
					WillReturnResult(sqlmock.NewResult(0, 3))
			},
		},
		"scoped-to-user": {
			userID: "lars",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(recountSQL + " WHERE user_id = $1").
					WithArgs("lars").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(recountSQL).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewSessionRepository(db)
			gotErr := repo.RecountMessages(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_Stats(t *testing.T) {
	const statsSQL = "SELECT (SELECT COUNT(*) FROM messages), COUNT(*), COUNT(DISTINCT user_id) FROM sessions"

	tests := map[string]struct {
		expect    func(sqlmock.Sqlmock)
		expected  domain.MemoryStats
		expectErr bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(statsSQL).
					WillReturnRows(sqlmock.NewRows([]string{"messages", "sessions", "users"}).AddRow(42, 7, 3))
			},
			expected: domain.MemoryStats{TotalMessages: 42, TotalSessions: 7, UniqueUsers: 3},
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(statsSQL).WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewSessionRepository(db)
			got, gotErr := repo.Stats(context.Background())
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitSessionRepository_Initialize(t *testing.T) {
	i := &InitSessionRepository{
		DB: &sql.DB{},
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.SessionRepository]()
	assert.NoError(t, err)
}
