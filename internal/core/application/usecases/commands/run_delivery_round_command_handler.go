package commands

import (
	"context"

	"depot/internal/core/domain/services"
)

// RunDeliveryRoundCommandHandler runs a services.DeliveryRound over every
// courier in the depot.
type RunDeliveryRoundCommandHandler struct {
	uowFactory UoWFactory
}

// NewRunDeliveryRoundCommandHandler creates a handler backed by uowFactory.
func NewRunDeliveryRoundCommandHandler(uowFactory UoWFactory) RunDeliveryRoundCommandHandler {
	return RunDeliveryRoundCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns one report per courier that had deliveries to make, in
// depot order. An empty result means nobody had anything to deliver.
//
// Runs that completed before a failure have already changed the depot; the
// unit of work is committed in that case too and the error is returned.
func (h RunDeliveryRoundCommandHandler) Handle(
	ctx context.Context,
	cmd RunDeliveryRoundCommand,
) ([]DeliveryReport, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DepotRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	runs, roundErr := services.NewDeliveryRound().Execute(d.Couriers())

	reports := make([]DeliveryReport, 0, len(runs))
	for _, run := range runs {
		reports = append(reports, newDeliveryReport(run.Position, run.Courier, run.Outcomes))
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if roundErr != nil {
		return reports, roundErr
	}

	return reports, nil
}
