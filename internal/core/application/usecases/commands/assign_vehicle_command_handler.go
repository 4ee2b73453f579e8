package commands

import (
	"context"
)

// AssignVehicleCommandHandler points a courier at a vehicle, replacing any
// previous assignment. A vehicle may end up shared by several couriers.
type AssignVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignVehicleCommandHandler creates a handler backed by uowFactory.
func NewAssignVehicleCommandHandler(uowFactory UoWFactory) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle performs the assignment. Positions past the end of the depot lists
// yield errs.ErrObjectNotFound.
func (h AssignVehicleCommandHandler) Handle(ctx context.Context, cmd AssignVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DepotRepository().Get(ctx)
	if err != nil {
		return err
	}

	c, err := d.Courier(cmd.Courier())
	if err != nil {
		return err
	}

	v, err := d.Vehicle(cmd.Vehicle())
	if err != nil {
		return err
	}

	if err = d.AssignVehicle(c, v); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
