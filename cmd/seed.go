package cmd

import (
	"depot/internal/core/domain/model/courier"
	"depot/internal/core/domain/model/depot"
	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"
)

// SeedDemoData fills d with a truck, a motorbike, one courier without a
// vehicle and two pending orders.
func SeedDemoData(d *depot.Depot) error {
	truck, err := vehicle.NewTruck("Renault", "Truck", "AB-123-CD", 10)
	if err != nil {
		return err
	}
	motorbike, err := vehicle.NewMotorbike("Yamaha", "MT-07", "XYZ-987", 120)
	if err != nil {
		return err
	}
	for _, v := range []vehicle.Vehicle{truck, motorbike} {
		if _, err = d.AddVehicle(v); err != nil {
			return err
		}
	}

	jean, err := courier.FromRecord(map[string]any{courier.RecordNameKey: "Jean Dupont"})
	if err != nil {
		return err
	}
	if _, err = d.AddCourier(jean); err != nil {
		return err
	}

	for _, o := range []struct {
		id          string
		destination string
		weight      float64
	}{
		{id: "CMD001", destination: "Paris", weight: 5},
		{id: "CMD002", destination: "Lyon", weight: 8},
	} {
		created, err := order.NewOrder(o.id, o.destination, o.weight)
		if err != nil {
			return err
		}
		if _, err = d.AddOrder(created); err != nil {
			return err
		}
	}

	return nil
}
