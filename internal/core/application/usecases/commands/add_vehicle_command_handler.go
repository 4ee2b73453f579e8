package commands

import (
	"context"

	"depot/internal/core/domain/model/vehicle"
	"depot/internal/pkg/errs"
)

// AddVehicleCommandHandler builds the vehicle described by an
// AddVehicleCommand and appends it to the depot.
//
// Example:
//
//	handler := NewAddVehicleCommandHandler(uowFactory)
//	cmd, _ := NewAddVehicleCommand("Motorbike", "Yamaha", "MT-07", "XYZ-987", 120)
//
//	position, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("adding vehicle failed: %w", err)
//	}
type AddVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddVehicleCommandHandler creates a handler backed by uowFactory.
func NewAddVehicleCommandHandler(uowFactory UoWFactory) AddVehicleCommandHandler {
	return AddVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the vehicle and returns its position in the depot.
func (h AddVehicleCommandHandler) Handle(ctx context.Context, cmd AddVehicleCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	v, err := buildVehicle(cmd)
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

	position, err := d.AddVehicle(v)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return position, nil
}

func buildVehicle(cmd AddVehicleCommand) (vehicle.Vehicle, error) {
	switch cmd.Kind() {
	case vehicle.TruckKind:
		return vehicle.NewTruck(cmd.Make(), cmd.Model(), cmd.Registration(), cmd.Attribute())
	case vehicle.MotorbikeKind:
		return vehicle.NewMotorbike(cmd.Make(), cmd.Model(), cmd.Registration(), cmd.Attribute())
	case vehicle.UnknownKind:
		return nil, errs.NewValueIsInvalidError("kind")
	default:
		return nil, errs.NewValueIsInvalidError("kind")
	}
}
