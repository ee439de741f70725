package domain

import "context"

// UnitOfWork scopes session and message writes to one atomic transaction.
type UnitOfWork interface {
	// Session returns the session repository bound to the unit of work.
	Session() SessionRepository
	// ChatMessage returns the message repository bound to the unit of work.
	ChatMessage() ChatMessageRepository
	// Execute runs fn atomically; fn receives the transactional unit of work.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}
