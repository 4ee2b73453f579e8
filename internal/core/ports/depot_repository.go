// Package ports defines the contracts between the application core and its
// storage adapters.
package ports

import (
	"context"

	"depot/internal/core/domain/model/depot"
)

// DepotRepository gives access to the single Depot aggregate.
type DepotRepository interface {
	// Get returns the depot bound to the current unit of work.
	// Changes made to it are visible to later units of work once Commit
	// returns.
	Get(ctx context.Context) (*depot.Depot, error)
}
