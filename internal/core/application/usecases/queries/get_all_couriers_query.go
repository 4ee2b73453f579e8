package queries

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var (
	ErrGetAllCouriersQueryIsNotConstructed = errors.New(
		"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
	)
)

// GetAllCouriersQuery lists the depot couriers in insertion order.
//
// Example:
//
//	query := NewGetAllCouriersQuery()
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
//	for _, c := range couriers {
//	    fmt.Println(c.Description)
//	}
type GetAllCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCouriersQuery creates the parameterless query.
func NewGetAllCouriersQuery() GetAllCouriersQuery {
	return GetAllCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

// GetAllCouriersQueryResponse is the read model of one courier.
//
// VehiclePosition is nil when no vehicle is assigned, or when the assigned
// vehicle is not in the depot's vehicle list.
type GetAllCouriersQueryResponse struct {
	Position        int
	ID              kernel.UUID
	Name            string
	Vehicle         string
	VehiclePosition *int
	PendingOrderIDs []string
	Description     string
}
