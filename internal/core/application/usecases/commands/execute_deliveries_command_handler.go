package commands

import (
	"context"
	"errors"

	"depot/internal/core/domain/model/courier"
	"depot/internal/core/domain/model/vehicle"
)

var (
	ErrCourierHasNoVehicle = errors.New("courier has no assigned vehicle")
	ErrNoPendingOrders     = errors.New("courier has no orders to deliver")
)

// ExecuteDeliveriesCommandHandler hands every order queued on a courier to
// its vehicle. Each attempted order leaves the queue; rejected ones stay
// Pending in the depot and are not retried.
//
// Example:
//
//	handler := NewExecuteDeliveriesCommandHandler(uowFactory)
//	report, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrCourierHasNoVehicle):
//	    log.Println("assign a vehicle first")
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Println("nothing to deliver")
//	case err != nil:
//	    log.Printf("delivery failed: %v", err)
//	default:
//	    log.Println(report.Report)
//	}
type ExecuteDeliveriesCommandHandler struct {
	uowFactory UoWFactory
}

// NewExecuteDeliveriesCommandHandler creates a handler backed by uowFactory.
func NewExecuteDeliveriesCommandHandler(uowFactory UoWFactory) ExecuteDeliveriesCommandHandler {
	return ExecuteDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs the deliveries and reports their outcomes in queue order.
func (h ExecuteDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd ExecuteDeliveriesCommand,
) (DeliveryReport, error) {
	if err := cmd.Validate(); err != nil {
		return DeliveryReport{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DeliveryReport{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DepotRepository().Get(ctx)
	if err != nil {
		return DeliveryReport{}, err
	}

	c, err := d.Courier(cmd.Courier())
	if err != nil {
		return DeliveryReport{}, err
	}

	if !c.HasVehicle() {
		return DeliveryReport{}, ErrCourierHasNoVehicle
	}
	if c.PendingCount() == 0 {
		return DeliveryReport{}, ErrNoPendingOrders
	}

	outcomes, err := c.ExecuteDeliveries()
	if err != nil {
		return DeliveryReport{}, err
	}

	report := newDeliveryReport(cmd.Courier(), c, outcomes)

	if err = uow.Commit(ctx); err != nil {
		return DeliveryReport{}, err
	}

	return report, nil
}

func newDeliveryReport(position int, c *courier.Courier, outcomes []vehicle.Outcome) DeliveryReport {
	report := DeliveryReport{
		CourierPosition: position,
		CourierName:     c.Name(),
		Messages:        make([]string, 0, len(outcomes)),
		Report:          courier.Report(outcomes),
	}

	for _, o := range outcomes {
		if o.IsDelivered() {
			report.Delivered++
		} else {
			report.Rejected++
		}
		report.Messages = append(report.Messages, o.Message())
	}

	return report
}
