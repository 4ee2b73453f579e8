// Package memory keeps the depot in process memory and serialises access to
// it through units of work.
//
// Every command and query runs inside a unit of work: Begin takes exclusive
// hold of the depot and Commit or Rollback hands it back. HTTP handlers and
// scheduled jobs therefore never touch the depot at the same time.
//
// Rollback does not restore earlier state. Command handlers run all their
// checks before changing the depot, so an aborted unit of work has nothing
// to undo.
//
// Usage:
//
//	store, _ := memory.NewStore(depot.NewDepot())
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	d, err := uow.DepotRepository().Get(ctx)
//	if err != nil {
//	    return err
//	}
//	// ... mutate d
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"errors"

	"depot/internal/core/domain/model/depot"
)

// ErrNoActiveUnitOfWork is returned by Commit, Rollback and repository calls
// made outside Begin/Commit.
var ErrNoActiveUnitOfWork = errors.New("no active unit of work")

// Store owns the depot for the lifetime of the process.
type Store struct {
	depot *depot.Depot
	// lock is a one-slot semaphore; holding the slot means holding the depot
	lock chan struct{}
}

// NewStore wraps d.
func NewStore(d *depot.Depot) (*Store, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &Store{
		depot: d,
		lock:  make(chan struct{}, 1),
	}, nil
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.lock
}
