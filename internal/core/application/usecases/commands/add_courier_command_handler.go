package commands

import (
	"context"

	"depot/internal/core/domain/model/courier"
)

// AddCourierCommandHandler appends a new courier to the depot.
type AddCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddCourierCommandHandler creates a handler backed by uowFactory.
func NewAddCourierCommandHandler(uowFactory UoWFactory) AddCourierCommandHandler {
	return AddCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the courier and returns its position in the depot.
func (h AddCourierCommandHandler) Handle(ctx context.Context, cmd AddCourierCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	c, err := courier.NewCourier(cmd.Name(), nil)
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

	position, err := d.AddCourier(c)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return position, nil
}
