package commands

import (
	"context"
	"errors"
)

// ErrOrderNotAccepted is returned when the courier refuses the order: it has
// no vehicle, or the order weight is outside (0, 100] kg.
var ErrOrderNotAccepted = errors.New("order was not accepted by the courier")

// AcceptOrderCommandHandler queues a depot order on a courier.
//
// The order status is not checked, so a Delivered order can be queued
// again; delivering it a second time leaves it Delivered.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotAccepted):
//	    log.Println("courier refused the order")
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("unknown courier or order")
//	}
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptOrderCommandHandler creates a handler backed by uowFactory.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle queues the order, or returns ErrOrderNotAccepted.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	o, err := d.Order(cmd.Order())
	if err != nil {
		return err
	}

	accepted, err := c.AcceptOrder(o)
	if err != nil {
		return err
	}
	if !accepted {
		return ErrOrderNotAccepted
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
