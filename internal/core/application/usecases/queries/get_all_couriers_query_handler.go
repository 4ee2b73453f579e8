package queries

import (
	"context"

	"depot/internal/core/domain/model/depot"
	"depot/internal/core/domain/model/vehicle"
)

// GetAllCouriersQueryHandler reads the courier list.
type GetAllCouriersQueryHandler struct {
	uowFactory ReadUoWFactory
}

// NewGetAllCouriersQueryHandler creates a handler backed by uowFactory.
func NewGetAllCouriersQueryHandler(uowFactory ReadUoWFactory) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{uowFactory: uowFactory}
}

// Handle returns every courier in depot order, with its vehicle and the ids
// of its queued orders.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var couriers []GetAllCouriersQueryResponse
	err := readDepot(ctx, h.uowFactory, func(d *depot.Depot) error {
		vehicles := d.Vehicles()
		all := d.Couriers()
		couriers = make([]GetAllCouriersQueryResponse, 0, len(all))

		for i, c := range all {
			response := GetAllCouriersQueryResponse{
				Position:        i,
				ID:              c.ID(),
				Name:            c.Name(),
				PendingOrderIDs: make([]string, 0, c.PendingCount()),
				Description:     c.String(),
			}

			if v := c.Vehicle(); v != nil {
				response.Vehicle = v.String()
				response.VehiclePosition = positionOf(vehicles, v)
			}

			for _, o := range c.PendingOrders() {
				response.PendingOrderIDs = append(response.PendingOrderIDs, o.ID())
			}

			couriers = append(couriers, response)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return couriers, nil
}

func positionOf(vehicles []vehicle.Vehicle, target vehicle.Vehicle) *int {
	for i, v := range vehicles {
		if v.ID().IsEqual(target.ID()) {
			return &i
		}
	}
	return nil
}
