package queries

import (
	"context"

	"depot/internal/core/domain/model/depot"
	"depot/internal/core/domain/model/vehicle"
)

// GetAllVehiclesQueryHandler reads the vehicle list.
type GetAllVehiclesQueryHandler struct {
	uowFactory ReadUoWFactory
}

// NewGetAllVehiclesQueryHandler creates a handler backed by uowFactory.
func NewGetAllVehiclesQueryHandler(uowFactory ReadUoWFactory) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{uowFactory: uowFactory}
}

// Handle returns every vehicle in depot order.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var vehicles []GetAllVehiclesQueryResponse
	err := readDepot(ctx, h.uowFactory, func(d *depot.Depot) error {
		all := d.Vehicles()
		vehicles = make([]GetAllVehiclesQueryResponse, 0, len(all))
		for i, v := range all {
			vehicles = append(vehicles, toVehicleResponse(i, v))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return vehicles, nil
}

func toVehicleResponse(position int, v vehicle.Vehicle) GetAllVehiclesQueryResponse {
	response := GetAllVehiclesQueryResponse{
		Position:     position,
		ID:           v.ID(),
		Kind:         v.Kind().String(),
		Make:         v.Make(),
		Model:        v.Model(),
		Registration: v.Registration(),
		Description:  v.String(),
	}

	switch typed := v.(type) {
	case *vehicle.Truck:
		capacity := typed.Capacity()
		response.CapacityTonnes = &capacity
	case *vehicle.Motorbike:
		speed := typed.MaxSpeed()
		response.MaxSpeedKmh = &speed
	}

	return response
}
