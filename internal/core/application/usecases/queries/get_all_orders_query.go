package queries

import (
	"errors"

	"depot/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery lists depot orders in insertion order, optionally only
// those still Pending.
//
// Example:
//
//	query := NewGetAllOrdersQuery(true)
//	orders, err := handler.Handle(ctx, query)
//	fmt.Printf("Found %d orders awaiting delivery\n", len(orders))
type GetAllOrdersQuery struct {
	pendingOnly bool

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates the query. With pendingOnly, Delivered orders
// are left out.
func NewGetAllOrdersQuery(pendingOnly bool) GetAllOrdersQuery {
	return GetAllOrdersQuery{
		pendingOnly: pendingOnly,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// PendingOnly reports whether Delivered orders are filtered out.
func (q GetAllOrdersQuery) PendingOnly() bool {
	return q.pendingOnly
}

// GetAllOrdersQueryResponse is the read model of one order. Position is the
// order's position in the full depot list, also when filtering.
type GetAllOrdersQueryResponse struct {
	Position    int
	ID          string
	Destination string
	Weight      float64
	Status      string
}
