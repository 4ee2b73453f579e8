package commands

import (
	"errors"
	"strings"

	"depot/internal/core/domain/model/order"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderIDIsRequired     = errs.NewValueIsRequiredError("id")
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
)

// CreateOrderCommand represents a request to create a Pending order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("CMD001", "Paris", 5)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     string
	destination string
	weight      float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks that id and destination are not blank and that
// weight is in (0, 100] kg.
func NewCreateOrderCommand(orderID, destination string, weight float64) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDestination(destination),
		cmd.setWeight(weight),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the order reference.
func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

// Destination returns the delivery label.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// Weight returns the weight in kilograms.
func (c CreateOrderCommand) Weight() float64 {
	return c.weight
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setWeight(weight float64) error {
	if !order.IsWeightValid(weight) {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"weight", weight, 0, order.MaxWeight,
			errors.New("weight must be greater than 0"),
		)
	}

	c.weight = weight
	return nil
}
