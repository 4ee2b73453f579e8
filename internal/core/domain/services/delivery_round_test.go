package services_test

import (
	"testing"

	"depot/internal/core/domain/model/courier"
	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"
	"depot/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourierWithOrders(t *testing.T, name string, v vehicle.Vehicle, weights ...float64) (*courier.Courier, []*order.Order) {
	t.Helper()

	c, err := courier.NewCourier(name, v)
	require.NoError(t, err)

	orders := make([]*order.Order, 0, len(weights))
	for _, w := range weights {
		o, err := order.NewOrder("CMD", "Paris", w)
		require.NoError(t, err)
		accepted, err := c.AcceptOrder(o)
		require.NoError(t, err)
		require.True(t, accepted)
		orders = append(orders, o)
	}
	return c, orders
}

func TestDeliveryRound_Execute(t *testing.T) {
	truck, err := vehicle.NewTruck("Renault", "Truck", "AB-123-CD", 10)
	require.NoError(t, err)
	bike, err := vehicle.NewMotorbike("Yamaha", "MT-07", "XYZ-987", 120)
	require.NoError(t, err)

	t.Run("should run every courier with a vehicle and pending orders", func(t *testing.T) {
		idle, _ := newCourierWithOrders(t, "Idle", truck)
		alice, aliceOrders := newCourierWithOrders(t, "Alice", truck, 5, 20)
		walker, _ := newCourierWithOrders(t, "Walker", nil)
		bob, bobOrders := newCourierWithOrders(t, "Bob", bike, 50)

		runs, err := services.NewDeliveryRound().Execute([]*courier.Courier{idle, alice, walker, bob})

		require.NoError(t, err)
		require.Len(t, runs, 2)

		assert.Equal(t, 1, runs[0].Position)
		assert.Same(t, alice, runs[0].Courier)
		require.Len(t, runs[0].Outcomes, 2)
		assert.True(t, runs[0].Outcomes[0].IsDelivered())
		assert.False(t, runs[0].Outcomes[1].IsDelivered())
		assert.Equal(t, order.Delivered, aliceOrders[0].Status())
		assert.Equal(t, order.Pending, aliceOrders[1].Status())

		assert.Equal(t, 3, runs[1].Position)
		assert.Equal(t, "Motorbike delivered CMD at 120km/h", runs[1].Report())
		assert.Equal(t, order.Delivered, bobOrders[0].Status())

		assert.Zero(t, alice.PendingCount())
		assert.Zero(t, bob.PendingCount())
	})

	t.Run("should return nothing when no courier has work", func(t *testing.T) {
		idle, _ := newCourierWithOrders(t, "Idle", truck)

		runs, err := services.NewDeliveryRound().Execute([]*courier.Courier{idle})

		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("should fail on invalid courier", func(t *testing.T) {
		_, err := services.NewDeliveryRound().Execute([]*courier.Courier{{}})

		require.ErrorIs(t, err, courier.ErrCourierIsNotConstructed)
	})
}
