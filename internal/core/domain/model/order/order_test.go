package order_test

import (
	"testing"

	"depot/internal/core/domain/model/order"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with valid parameters", func(t *testing.T) {
		o, err := order.NewOrder("CMD001", "Paris", 5)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "CMD001", o.ID())
		assert.Equal(t, "Paris", o.Destination())
		assert.InDelta(t, 5.0, o.Weight(), 0)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		o, err := order.NewOrder("", "Paris", 5)

		require.ErrorIs(t, err, order.ErrIDIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with blank destination", func(t *testing.T) {
		o, err := order.NewOrder("CMD001", "   ", 5)

		require.ErrorIs(t, err, order.ErrDestinationIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		_, err := order.NewOrder("", "", 5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is required: id")
		assert.Contains(t, err.Error(), "value is required: destination")
	})

	t.Run("should not validate weight", func(t *testing.T) {
		o, err := order.NewOrder("HEAVY", "Lyon", 999)

		require.NoError(t, err)
		assert.InDelta(t, 999.0, o.Weight(), 0)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_MarkDelivered(t *testing.T) {
	t.Run("should move pending order to delivered", func(t *testing.T) {
		o, _ := order.NewOrder("CMD001", "Paris", 5)

		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		o, _ := order.NewOrder("CMD001", "Paris", 5)

		require.NoError(t, o.MarkDelivered())
		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should fail on a zero value order", func(t *testing.T) {
		var o order.Order

		require.Error(t, o.MarkDelivered())
		assert.Equal(t, order.Unknown, o.Status())
	})
}

func TestIsWeightValid(t *testing.T) {
	tests := []struct {
		weight float64
		want   bool
	}{
		{weight: -1, want: false},
		{weight: 0, want: false},
		{weight: 0.001, want: true},
		{weight: 5, want: true},
		{weight: 99.99, want: true},
		{weight: 100, want: true},
		{weight: 100.0001, want: false},
		{weight: 999, want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, order.IsWeightValid(tt.weight), "weight %v", tt.weight)
	}
}

func TestIsWeightValid_MatchesOpenClosedInterval(t *testing.T) {
	for w := -5.0; w <= 105; w += 0.25 {
		assert.Equal(t, w > 0 && w <= 100, order.IsWeightValid(w), "weight %v", w)
	}
}
