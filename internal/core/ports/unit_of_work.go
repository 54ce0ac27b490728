package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary. Repositories obtained from it share the
// transaction started by Begin. Aggregates saved through them are tracked and their
// status changes are published once Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active. Calling it after a
	// successful Commit is therefore safe to defer.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	PurchaseRepository() PurchaseRepository
	ActivityLogRepository() ActivityLogRepository
}
