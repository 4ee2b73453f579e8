package commands

import (
	"context"

	"depot/internal/core/domain/model/order"
)

// CreateOrderCommandHandler creates a Pending order and records it in the
// depot. The order is not queued on any courier.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler backed by uowFactory.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order and returns its position in the depot.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Destination(), cmd.Weight())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DepotRepository().Get(ctx)
	if err != nil {
		return 0, err
	}

	position, err := d.AddOrder(o)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return position, nil
}
