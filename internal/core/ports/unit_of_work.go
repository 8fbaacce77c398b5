package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Callers drive the lifecycle:
// Begin, then Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. After Commit there is
	// nothing to roll back and an error is returned; handlers defer Rollback
	// and ignore that error.
	Rollback(ctx context.Context) error

	// DeliveryRequestRepository returns a repository bound to the transaction.
	DeliveryRequestRepository() DeliveryRequestRepository

	// DispatchRunRepository returns a repository bound to the transaction.
	DispatchRunRepository() DispatchRunRepository
}
