package commands_test

import (
	"testing"

	"depot/internal/core/domain/model/courier"
	"depot/internal/core/domain/model/depot"
	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

// newSeededDepot returns a depot holding a truck (10 t), a motorbike,
// one courier without vehicle and the orders CMD001 (5 kg) and CMD002 (8 kg).
func newSeededDepot(t *testing.T) *depot.Depot {
	t.Helper()

	d := depot.NewDepot()

	truck, err := vehicle.NewTruck("Renault", "Truck", "AB-123-CD", 10)
	require.NoError(t, err)
	bike, err := vehicle.NewMotorbike("Yamaha", "MT-07", "XYZ-987", 120)
	require.NoError(t, err)
	jean, err := courier.NewCourier("Jean Dupont", nil)
	require.NoError(t, err)
	cmd1, err := order.NewOrder("CMD001", "Paris", 5)
	require.NoError(t, err)
	cmd2, err := order.NewOrder("CMD002", "Lyon", 8)
	require.NoError(t, err)

	for _, v := range []vehicle.Vehicle{truck, bike} {
		_, err = d.AddVehicle(v)
		require.NoError(t, err)
	}
	_, err = d.AddCourier(jean)
	require.NoError(t, err)
	for _, o := range []*order.Order{cmd1, cmd2} {
		_, err = d.AddOrder(o)
		require.NoError(t, err)
	}

	return d
}

func courierAt(t *testing.T, d *depot.Depot, i int) *courier.Courier {
	t.Helper()
	c, err := d.Courier(i)
	require.NoError(t, err)
	return c
}

func orderAt(t *testing.T, d *depot.Depot, i int) *order.Order {
	t.Helper()
	o, err := d.Order(i)
	require.NoError(t, err)
	return o
}

func vehicleAt(t *testing.T, d *depot.Depot, i int) vehicle.Vehicle {
	t.Helper()
	v, err := d.Vehicle(i)
	require.NoError(t, err)
	return v
}
