package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Only one unit of work holds
// the depot at a time; Begin waits for the previous one to finish.
type UnitOfWork interface {
	// Begin acquires the depot. Calling it again on an active unit is a no-op.
	Begin(ctx context.Context) error

	// Commit ends the unit of work.
	// Returns an error if Begin was not called.
	Commit(ctx context.Context) error

	// Rollback ends the unit of work without committing.
	// Returns an error if no unit of work is active.
	Rollback(ctx context.Context) error

	// DepotRepository returns a repository bound to this unit of work.
	DepotRepository() DepotRepository
}
