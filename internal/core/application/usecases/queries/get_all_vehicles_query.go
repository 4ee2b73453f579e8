package queries

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var (
	ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
		"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
	)
)

// GetAllVehiclesQuery lists the depot vehicles in insertion order.
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates the parameterless query.
func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// GetAllVehiclesQueryResponse is the read model of one vehicle.
//
// Exactly one of CapacityTonnes (trucks) and MaxSpeedKmh (motorbikes) is set.
type GetAllVehiclesQueryResponse struct {
	Position       int
	ID             kernel.UUID
	Kind           string
	Make           string
	Model          string
	Registration   string
	CapacityTonnes *float64
	MaxSpeedKmh    *float64
	Description    string
}
