package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
)

// UnitOfWork groups session and message writes into one Postgres transaction.
type UnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

// NewUnitOfWork creates a UnitOfWork that opens a transaction per Execute call.
func NewUnitOfWork(db *sql.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Execute runs fn inside a transaction and commits when fn succeeds.
// A UnitOfWork that is already transactional runs fn in its current transaction.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}

	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	tx, err := u.db.BeginTx(spanCtx, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(&UnitOfWork{db: u.db, tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rbErr))
		}
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	if err := tx.Commit(); telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Session returns a SessionRepository bound to this unit of work.
func (u *UnitOfWork) Session() domain.SessionRepository {
	return NewSessionRepository(u.runner())
}

// ChatMessage returns a ChatMessageRepository bound to this unit of work.
func (u *UnitOfWork) ChatMessage() domain.ChatMessageRepository {
	return NewChatMessageRepository(u.runner())
}

func (u *UnitOfWork) runner() squirrel.BaseRunner {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// InitUnitOfWork registers the Postgres domain.UnitOfWork.
type InitUnitOfWork struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the UnitOfWork in the dependency container.
func (iuw InitUnitOfWork) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.UnitOfWork](NewUnitOfWork(iuw.DB))
	return ctx, nil
}
