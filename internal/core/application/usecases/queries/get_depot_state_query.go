package queries

import (
	"errors"

	"depot/internal/pkg/guard"
)

var (
	ErrGetDepotStateQueryIsNotConstructed = errors.New(
		"GetDepotStateQuery must be created via NewGetDepotStateQuery constructor",
	)
)

// GetDepotStateQuery asks for the text snapshot produced by
// depot.Depot.RenderState.
type GetDepotStateQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDepotStateQuery creates the parameterless query.
func NewGetDepotStateQuery() GetDepotStateQuery {
	return GetDepotStateQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDepotStateQuery) Validate() error {
	return q.guard.Validate(ErrGetDepotStateQueryIsNotConstructed)
}
