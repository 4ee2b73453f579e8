package vehicle_test

import (
	"math"
	"testing"

	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, id string, weight float64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, "Paris", weight)
	require.NoError(t, err)
	return o
}

func TestNewTruck(t *testing.T) {
	t.Run("should create truck with valid parameters", func(t *testing.T) {
		truck, err := vehicle.NewTruck("Renault", "Truck", "AB-123-CD", 10)

		require.NoError(t, err)
		require.NoError(t, truck.Validate())
		require.NoError(t, truck.ID().Validate())
		assert.Equal(t, vehicle.TruckKind, truck.Kind())
		assert.Equal(t, "Renault", truck.Make())
		assert.Equal(t, "Truck", truck.Model())
		assert.Equal(t, "AB-123-CD", truck.Registration())
		assert.InDelta(t, 10.0, truck.Capacity(), 0)
		assert.Equal(t, "Renault Truck (AB-123-CD)", truck.String())
	})

	t.Run("should reject non positive capacity", func(t *testing.T) {
		for _, capacity := range []float64{0, -3, math.NaN()} {
			truck, err := vehicle.NewTruck("Renault", "Truck", "AB-123-CD", capacity)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Nil(t, truck)
		}
	})

	t.Run("should join missing identity fields", func(t *testing.T) {
		_, err := vehicle.NewTruck(" ", "", "", 10)

		require.ErrorIs(t, err, vehicle.ErrMakeIsRequired)
		require.ErrorIs(t, err, vehicle.ErrModelIsRequired)
		require.ErrorIs(t, err, vehicle.ErrRegistrationIsRequired)
	})

	t.Run("should give duplicates distinct identities", func(t *testing.T) {
		a, _ := vehicle.NewTruck("Renault", "Truck", "AB-123-CD", 10)
		b, _ := vehicle.NewTruck("Renault", "Truck", "AB-123-CD", 10)

		assert.False(t, a.ID().IsEqual(b.ID()))
	})
}

func TestNewMotorbike(t *testing.T) {
	t.Run("should create motorbike with valid parameters", func(t *testing.T) {
		bike, err := vehicle.NewMotorbike("Yamaha", "MT-07", "XYZ-987", 120)

		require.NoError(t, err)
		require.NoError(t, bike.Validate())
		assert.Equal(t, vehicle.MotorbikeKind, bike.Kind())
		assert.InDelta(t, 120.0, bike.MaxSpeed(), 0)
		assert.Equal(t, "Yamaha MT-07 (XYZ-987)", bike.String())
	})

	t.Run("should reject non positive max speed", func(t *testing.T) {
		bike, err := vehicle.NewMotorbike("Yamaha", "MT-07", "XYZ-987", 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "max speed")
		assert.Nil(t, bike)
	})
}

func TestVehicle_ValidateZeroValues(t *testing.T) {
	var truck *vehicle.Truck
	assert.Equal(t, vehicle.ErrTruckIsNotConstructed, truck.Validate())
	assert.Equal(t, vehicle.ErrTruckIsNotConstructed, (&vehicle.Truck{}).Validate())

	var bike *vehicle.Motorbike
	assert.Equal(t, vehicle.ErrMotorbikeIsNotConstructed, bike.Validate())
	assert.Equal(t, vehicle.ErrMotorbikeIsNotConstructed, (&vehicle.Motorbike{}).Validate())
}

func TestTruck_Deliver(t *testing.T) {
	truck, err := vehicle.NewTruck("Renault", "Truck", "AB-123-CD", 10)
	require.NoError(t, err)

	t.Run("should deliver order within capacity", func(t *testing.T) {
		o := newOrder(t, "CMD001", 5)

		outcome, err := truck.Deliver(o)

		require.NoError(t, err)
		assert.True(t, outcome.IsDelivered())
		assert.Equal(t, "CMD001", outcome.OrderID())
		assert.Equal(t, "Truck delivered CMD001 (5t)", outcome.Message())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should deliver order exactly at capacity", func(t *testing.T) {
		o := newOrder(t, "CMD002", 10)

		outcome, err := truck.Deliver(o)

		require.NoError(t, err)
		assert.True(t, outcome.IsDelivered())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject order over capacity and leave it pending", func(t *testing.T) {
		o := newOrder(t, "CMD003", 15)

		outcome, err := truck.Deliver(o)

		require.NoError(t, err)
		assert.False(t, outcome.IsDelivered())
		assert.Equal(t, "Error: capacity exceeded (15t > 10t)", outcome.String())
		assert.Contains(t, outcome.Message(), "15")
		assert.Contains(t, outcome.Message(), "10")
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should compare kilograms to tonnes without conversion", func(t *testing.T) {
		small, _ := vehicle.NewTruck("Iveco", "Daily", "TT-1", 0.5)
		o := newOrder(t, "CMD004", 0.75)

		outcome, err := small.Deliver(o)

		require.NoError(t, err)
		assert.False(t, outcome.IsDelivered())
		assert.Equal(t, "Error: capacity exceeded (0.75t > 0.5t)", outcome.Message())
	})

	t.Run("should fail for an order not built by NewOrder", func(t *testing.T) {
		_, err := truck.Deliver(&order.Order{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestTruck_DeliverMarksDeliveredIffWeightWithinCapacity(t *testing.T) {
	truck, _ := vehicle.NewTruck("Renault", "Truck", "AB-123-CD", 10)

	for w := 0.5; w <= 20; w += 0.5 {
		o := newOrder(t, "W", w)

		outcome, err := truck.Deliver(o)

		require.NoError(t, err)
		assert.Equal(t, w <= 10, outcome.IsDelivered(), "weight %v", w)
		assert.Equal(t, w <= 10, o.Status() == order.Delivered, "weight %v", w)
	}
}

func TestMotorbike_Deliver(t *testing.T) {
	bike, err := vehicle.NewMotorbike("Yamaha", "MT-07", "XYZ-987", 120)
	require.NoError(t, err)

	t.Run("should deliver any weight", func(t *testing.T) {
		o := newOrder(t, "HEAVY", 999)

		outcome, err := bike.Deliver(o)

		require.NoError(t, err)
		assert.True(t, outcome.IsDelivered())
		assert.Equal(t, "Motorbike delivered HEAVY at 120km/h", outcome.Message())
		assert.Contains(t, outcome.Message(), "120")
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		_, err := bike.Deliver(nil)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    vehicle.Kind
		wantErr bool
	}{
		{in: "Truck", want: vehicle.TruckKind},
		{in: " motorbike ", want: vehicle.MotorbikeKind},
		{in: "MOTORBIKE", want: vehicle.MotorbikeKind},
		{in: "Bicycle", want: vehicle.UnknownKind, wantErr: true},
		{in: "", want: vehicle.UnknownKind, wantErr: true},
	}

	for _, tt := range tests {
		got, err := vehicle.ParseKind(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, tt.in)
		} else {
			require.NoError(t, err, tt.in)
		}
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Truck", vehicle.TruckKind.String())
	assert.Equal(t, "Motorbike", vehicle.MotorbikeKind.String())
	assert.Equal(t, "Unknown", vehicle.UnknownKind.String())
	assert.Equal(t, "Unknown", vehicle.Kind(9).String())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "10", vehicle.FormatNumber(10))
	assert.Equal(t, "2.5", vehicle.FormatNumber(2.5))
	assert.Equal(t, "-1", vehicle.FormatNumber(-1))
}
