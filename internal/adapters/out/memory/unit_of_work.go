package memory

import (
	"context"

	"depot/internal/core/domain/model/depot"
	"depot/internal/core/ports"
)

var (
	_ ports.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
	_ ports.UnitOfWork        = (*UnitOfWork)(nil)
	_ ports.DepotRepository   = (*DepotRepository)(nil)
)

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns an inactive unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork holds the store between Begin and Commit/Rollback.
// A single instance must not be shared between goroutines.
type UnitOfWork struct {
	store  *Store
	active bool
}

// Begin waits until no other unit of work holds the depot, or until ctx is
// done. Calling Begin on an active unit does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := uow.store.acquire(ctx); err != nil {
		return err
	}

	uow.active = true
	return nil
}

// Commit releases the depot. Changes are already applied in place.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	return uow.finish()
}

// Rollback releases the depot. It returns ErrNoActiveUnitOfWork after
// Commit, which deferred rollbacks ignore.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	return uow.finish()
}

// DepotRepository returns a repository reading through this unit of work.
func (uow *UnitOfWork) DepotRepository() ports.DepotRepository {
	return &DepotRepository{uow: uow}
}

func (uow *UnitOfWork) finish() error {
	if !uow.active {
		return ErrNoActiveUnitOfWork
	}

	uow.active = false
	uow.store.release()
	return nil
}

// DepotRepository hands out the stored depot to an active unit of work.
type DepotRepository struct {
	uow *UnitOfWork
}

// Get returns the depot, or ErrNoActiveUnitOfWork when the unit of work has
// not begun or has already finished.
func (r *DepotRepository) Get(ctx context.Context) (*depot.Depot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.uow.active {
		return nil, ErrNoActiveUnitOfWork
	}
	return r.uow.store.depot, nil
}
