// Package queries contains read operations over the depot.
// Handlers copy what they need into plain read models while holding a unit
// of work, so results stay valid after it is released.
package queries

import (
	"context"

	"depot/internal/core/domain/model/depot"
	"depot/internal/core/ports"
)

type (
	// ReadUoW is the part of a unit of work a query needs. Queries never
	// commit; they release the depot with Rollback.
	ReadUoW interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error
		DepotRepository() ports.DepotRepository
	}

	// ReadUoWFactory creates new read units of work.
	ReadUoWFactory interface {
		Create() ReadUoW
	}
)

// readDepot runs read against the depot inside a fresh unit of work.
func readDepot(ctx context.Context, factory ReadUoWFactory, read func(d *depot.Depot) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DepotRepository().Get(ctx)
	if err != nil {
		return err
	}

	return read(d)
}
