package commands

import (
	"errors"

	"depot/internal/pkg/guard"
)

var ErrAssignVehicleCommandIsNotConstructed = errors.New(
	"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
)

// AssignVehicleCommand binds the vehicle at one depot position to the
// courier at another. Both selections are required; nothing is assigned
// when either is missing.
//
// Example:
//
//	courierPos, vehiclePos := 0, 1
//	cmd, err := NewAssignVehicleCommand(&courierPos, &vehiclePos)
//	if errors.Is(err, ErrVehicleIsNotSelected) {
//	    // ask for a vehicle
//	}
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	courier int
	vehicle int

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand validates both selections and joins the failures.
func NewAssignVehicleCommand(courier, vehicle *int) (AssignVehicleCommand, error) {
	cmd := AssignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	var courierErr, vehicleErr error
	cmd.courier, courierErr = selectPosition("courier", courier, ErrCourierIsNotSelected)
	cmd.vehicle, vehicleErr = selectPosition("vehicle", vehicle, ErrVehicleIsNotSelected)

	if err := errors.Join(courierErr, vehicleErr); err != nil {
		return AssignVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// Courier returns the courier position.
func (c AssignVehicleCommand) Courier() int {
	return c.courier
}

// Vehicle returns the vehicle position.
func (c AssignVehicleCommand) Vehicle() int {
	return c.vehicle
}
