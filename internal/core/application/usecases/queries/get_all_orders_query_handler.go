package queries

import (
	"context"

	"depot/internal/core/domain/model/depot"
)

// GetAllOrdersQueryHandler reads the order list.
type GetAllOrdersQueryHandler struct {
	uowFactory ReadUoWFactory
}

// NewGetAllOrdersQueryHandler creates a handler backed by uowFactory.
func NewGetAllOrdersQueryHandler(uowFactory ReadUoWFactory) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle returns the orders with their current status.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orders []GetAllOrdersQueryResponse
	err := readDepot(ctx, h.uowFactory, func(d *depot.Depot) error {
		orders = make([]GetAllOrdersQueryResponse, 0)
		for i, o := range d.Orders() {
			if query.PendingOnly() && !o.Status().IsPending() {
				continue
			}

			orders = append(orders, GetAllOrdersQueryResponse{
				Position:    i,
				ID:          o.ID(),
				Destination: o.Destination(),
				Weight:      o.Weight(),
				Status:      o.Status().String(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
