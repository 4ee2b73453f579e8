package commands

import (
	"errors"
	"fmt"
	"strings"

	"depot/internal/core/domain/model/vehicle"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var (
	ErrAddVehicleCommandIsNotConstructed = errors.New(
		"AddVehicleCommand must be created via NewAddVehicleCommand constructor",
	)
	ErrMakeIsRequired         = errs.NewValueIsRequiredError("make")
	ErrModelIsRequired        = errs.NewValueIsRequiredError("model")
	ErrRegistrationIsRequired = errs.NewValueIsRequiredError("registration")
)

// AddVehicleCommand registers a new vehicle in the depot.
//
// Attribute is the capacity in tonnes for a truck and the maximum speed in
// km/h for a motorbike.
//
// Example:
//
//	cmd, err := NewAddVehicleCommand("Truck", "Renault", "Truck", "AB-123-CD", 10)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewAddVehicleCommandHandler(uowFactory)
//	position, err := handler.Handle(ctx, cmd)
type AddVehicleCommand struct { //nolint:recvcheck //using for validation
	kind         vehicle.Kind
	make         string
	model        string
	registration string
	attribute    float64

	guard guard.ConstructorGuard
}

// NewAddVehicleCommand validates the raw input. Text fields are trimmed and
// must not be empty; attribute must be greater than 0. All failures are
// joined.
func NewAddVehicleCommand(
	kind, vehicleMake, model, registration string,
	attribute float64,
) (AddVehicleCommand, error) {
	cmd := AddVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setMake(vehicleMake),
		cmd.setModel(model),
		cmd.setRegistration(registration),
		cmd.setAttribute(attribute),
	); err != nil {
		return AddVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAddVehicleCommandIsNotConstructed)
}

// Kind returns the vehicle kind to build.
func (c AddVehicleCommand) Kind() vehicle.Kind {
	return c.kind
}

// Make returns the manufacturer.
func (c AddVehicleCommand) Make() string {
	return c.make
}

// Model returns the model name.
func (c AddVehicleCommand) Model() string {
	return c.model
}

// Registration returns the plate.
func (c AddVehicleCommand) Registration() string {
	return c.registration
}

// Attribute returns the capacity (tonnes) or maximum speed (km/h).
func (c AddVehicleCommand) Attribute() float64 {
	return c.attribute
}

func (c *AddVehicleCommand) setKind(kind string) error {
	k, err := vehicle.ParseKind(kind)
	if err != nil {
		return err
	}

	c.kind = k
	return nil
}

func (c *AddVehicleCommand) setMake(vehicleMake string) error {
	vehicleMake = strings.TrimSpace(vehicleMake)
	if vehicleMake == "" {
		return ErrMakeIsRequired
	}

	c.make = vehicleMake
	return nil
}

func (c *AddVehicleCommand) setModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return ErrModelIsRequired
	}

	c.model = model
	return nil
}

func (c *AddVehicleCommand) setRegistration(registration string) error {
	registration = strings.TrimSpace(registration)
	if registration == "" {
		return ErrRegistrationIsRequired
	}

	c.registration = registration
	return nil
}

func (c *AddVehicleCommand) setAttribute(attribute float64) error {
	if !(attribute > 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"attribute",
			fmt.Errorf("%s is not a positive number", vehicle.FormatNumber(attribute)),
		)
	}

	c.attribute = attribute
	return nil
}
