package commands

import (
	"errors"

	"depot/internal/pkg/guard"
)

var ErrExecuteDeliveriesCommandIsNotConstructed = errors.New(
	"ExecuteDeliveriesCommand must be created via NewExecuteDeliveriesCommand constructor",
)

// ExecuteDeliveriesCommand runs the pending deliveries of the courier at a
// depot position.
type ExecuteDeliveriesCommand struct { //nolint:recvcheck //using for validation
	courier int

	guard guard.ConstructorGuard
}

// NewExecuteDeliveriesCommand returns ErrCourierIsNotSelected when courier
// is nil.
func NewExecuteDeliveriesCommand(courier *int) (ExecuteDeliveriesCommand, error) {
	position, err := selectPosition("courier", courier, ErrCourierIsNotSelected)
	if err != nil {
		return ExecuteDeliveriesCommand{}, err
	}

	return ExecuteDeliveriesCommand{
		courier: position,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExecuteDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrExecuteDeliveriesCommandIsNotConstructed)
}

// Courier returns the courier position.
func (c ExecuteDeliveriesCommand) Courier() int {
	return c.courier
}
