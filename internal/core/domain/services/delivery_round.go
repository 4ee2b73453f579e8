package services

import (
	"depot/internal/core/domain/model/courier"
	"depot/internal/core/domain/model/vehicle"
)

// CourierRun is the result of one courier's part in a delivery round.
type CourierRun struct {
	// Position is the courier's position in the depot.
	Position int
	Courier  *courier.Courier
	Outcomes []vehicle.Outcome
}

// Report joins the outcome messages as courier.Report does.
func (r CourierRun) Report() string {
	return courier.Report(r.Outcomes)
}

// DeliveryRound is a domain service that executes deliveries for every
// courier able to make some.
//
// Business rules:
//   - Couriers without a vehicle are skipped
//   - Couriers with an empty queue are skipped
//   - Couriers run in depot order; each run follows Courier.ExecuteDeliveries
//
// Example usage:
//
//	round := services.NewDeliveryRound()
//	runs, err := round.Execute(d.Couriers())
//	for _, run := range runs {
//	    fmt.Println(run.Courier.Name(), run.Report())
//	}
type DeliveryRound struct{}

// NewDeliveryRound creates a DeliveryRound.
func NewDeliveryRound() DeliveryRound {
	return DeliveryRound{}
}

// Execute runs deliveries for the eligible couriers and returns one
// CourierRun per courier that delivered or attempted something.
//
// It stops at the first courier whose run fails; runs completed before it
// are returned alongside the error.
func (r DeliveryRound) Execute(couriers []*courier.Courier) ([]CourierRun, error) {
	var runs []CourierRun

	for i, c := range couriers {
		if err := c.Validate(); err != nil {
			return runs, err
		}

		if !c.HasVehicle() || c.PendingCount() == 0 {
			continue
		}

		outcomes, err := c.ExecuteDeliveries()
		if err != nil {
			return runs, err
		}

		runs = append(runs, CourierRun{
			Position: i,
			Courier:  c,
			Outcomes: outcomes,
		})
	}

	return runs, nil
}
