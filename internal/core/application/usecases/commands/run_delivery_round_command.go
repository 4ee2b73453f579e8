package commands

import (
	"errors"

	"depot/internal/pkg/guard"
)

var ErrRunDeliveryRoundCommandIsNotConstructed = errors.New(
	"RunDeliveryRoundCommand must be created via NewRunDeliveryRoundCommand constructor",
)

// RunDeliveryRoundCommand triggers deliveries for every courier that has a
// vehicle and queued orders.
//
// Example:
//
//	cmd := NewRunDeliveryRoundCommand()
//	reports, err := handler.Handle(ctx, cmd)
type RunDeliveryRoundCommand struct {
	guard guard.ConstructorGuard
}

// NewRunDeliveryRoundCommand creates the parameterless command.
func NewRunDeliveryRoundCommand() RunDeliveryRoundCommand {
	return RunDeliveryRoundCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RunDeliveryRoundCommand) Validate() error {
	return c.guard.Validate(ErrRunDeliveryRoundCommandIsNotConstructed)
}
