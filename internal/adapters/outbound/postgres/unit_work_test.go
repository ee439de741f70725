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

const touchSessionSQL = "UPDATE sessions SET message_count = message_count + $1, last_activity_at = $2 WHERE session_id = $3"

func TestUnitOfWork_Execute(t *testing.T) {
	at := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)

	touch := func(uow domain.UnitOfWork) error {
		_, err := uow.Session().TouchSession(context.Background(), "s1", 2, at)
		return err
	}

	tests := map[string]struct {
		setupMock   func(sqlmock.Sqlmock)
		fn          func(uow domain.UnitOfWork) error
		expectedErr string
	}{
		"success-commit": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(touchSessionSQL).
					WithArgs(2, at, "s1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn: touch,
		},
		"rollback-on-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(touchSessionSQL).
					WithArgs(2, at, "s1").
					WillReturnError(errors.New("update error"))
				m.ExpectRollback()
			},
			fn:          touch,
			expectedErr: "update error",
		},
		"begin-transaction-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			fn: func(uow domain.UnitOfWork) error {
				return nil
			},
			expectedErr: "begin transaction: begin error",
		},
		"commit-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(touchSessionSQL).
					WithArgs(2, at, "s1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			fn:          touch,
			expectedErr: "commit transaction: commit error",
		},
		"rollback-error-with-original-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(touchSessionSQL).
					WithArgs(2, at, "s1").
					WillReturnError(errors.New("update error"))
				m.ExpectRollback().WillReturnError(errors.New("rollback error"))
			},
			fn:          touch,
			expectedErr: "update error\nrollback transaction: rollback error",
		},
		"nested-execute-reuses-transaction": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(touchSessionSQL).
					WithArgs(2, at, "s1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn: func(uow domain.UnitOfWork) error {
				return uow.Execute(context.Background(), touch)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setupMock(mock)

			uow := NewUnitOfWork(db)
			err = uow.Execute(context.Background(), tt.fn)

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUnitOfWork_Repositories(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	uow := NewUnitOfWork(db)

	assert.IsType(t, SessionRepository{}, uow.Session())
	assert.IsType(t, ChatMessageRepository{}, uow.ChatMessage())
}

func TestUnitOfWork_runner(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	t.Run("returns-db-when-no-transaction", func(t *testing.T) {
		uow := NewUnitOfWork(db)
		runner := uow.runner()
		assert.Equal(t, db, runner)
	})

	t.Run("returns-tx-when-in-transaction", func(t *testing.T) {
		mock.ExpectBegin()

		tx, err := db.Begin()
		assert.NoError(t, err)

		uow := &UnitOfWork{
			db: db,
			tx: tx,
		}

		runner := uow.runner()
		assert.Equal(t, tx, runner)

		mock.ExpectRollback()
		_ = tx.Rollback()
	})
}

func TestUnitOfWork_TurnInOneTransaction(t *testing.T) {
	now := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectBegin()
	mock.ExpectExec(touchSessionSQL).
		WithArgs(2, now, "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO messages (session_id,role,content,tool_calls,tool_call_id,created_at) VALUES ($1,$2,$3,$4,$5,$6),($7,$8,$9,$10,$11,$12)").
		WithArgs(
			"s1", "user", "Hi", []byte(nil), nil, now,
			"s1", "assistant", "Hello!", []byte(nil), nil, now,
		).
		WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectCommit()

	uow := NewUnitOfWork(db)
	err = uow.Execute(context.Background(), func(uow domain.UnitOfWork) error {
		if _, err := uow.Session().TouchSession(context.Background(), "s1", 2, now); err != nil {
			return err
		}
		return uow.ChatMessage().CreateChatMessages(context.Background(), []domain.ChatMessage{
			{SessionID: "s1", ChatRole: domain.ChatRole_User, Content: "Hi", CreatedAt: now},
			{SessionID: "s1", ChatRole: domain.ChatRole_Assistant, Content: "Hello!", CreatedAt: now},
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitUnitOfWork_Initialize(t *testing.T) {
	i := &InitUnitOfWork{
		DB: &sql.DB{},
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.UnitOfWork]()
	assert.NoError(t, err)
}
