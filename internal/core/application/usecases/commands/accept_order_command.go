package commands

import (
	"errors"

	"depot/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand asks the courier at one depot position to queue the
// order at another.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	courier int
	order   int

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand validates both selections and joins the failures.
func NewAcceptOrderCommand(courier, order *int) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	var courierErr, orderErr error
	cmd.courier, courierErr = selectPosition("courier", courier, ErrCourierIsNotSelected)
	cmd.order, orderErr = selectPosition("order", order, ErrOrderIsNotSelected)

	if err := errors.Join(courierErr, orderErr); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// Courier returns the courier position.
func (c AcceptOrderCommand) Courier() int {
	return c.courier
}

// Order returns the order position.
func (c AcceptOrderCommand) Order() int {
	return c.order
}
