// Package commands contains business operations that modify the depot.
// Every handler validates its command, opens a unit of work, runs all checks
// against the depot and only then mutates it before committing.
package commands

import (
	"context"

	"depot/internal/core/ports"
)

// Unit of Work interfaces used by command handlers.
type (
	// TxManager controls the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DepotRepoFactory provides the depot repository bound to a unit of work.
	DepotRepoFactory interface {
		DepotRepository() ports.DepotRepository
	}

	// UoW is the unit of work every command runs in.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DepotRepository().Get(ctx)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DepotRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// DeliveryReport is a snapshot of one courier's delivery run. It carries
// plain values so it stays valid after the unit of work ends.
type DeliveryReport struct {
	CourierPosition int
	CourierName     string
	Delivered       int
	Rejected        int
	Messages        []string
	// Report is Messages joined by newlines, or "No orders to deliver".
	Report string
}
