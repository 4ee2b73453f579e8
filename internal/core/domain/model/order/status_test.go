package order_test

import (
	"testing"

	"depot/internal/core/domain/model/order"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, order.Status(0), order.Unknown)
	assert.Equal(t, order.Status(1), order.Pending)
	assert.Equal(t, order.Status(2), order.Delivered)
}

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{name: "pending", status: order.Pending},
		{name: "delivered", status: order.Delivered},
		{name: "unknown", status: order.Unknown, wantErr: true},
		{name: "out of range", status: order.Status(42), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(-3).String())
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("pending to delivered", func(t *testing.T) {
		next, err := order.Pending.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("delivered stays delivered", func(t *testing.T) {
		next, err := order.Delivered.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("unknown cannot be delivered", func(t *testing.T) {
		next, err := order.Unknown.Deliver()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown is not a valid status to deliver")
		assert.Equal(t, order.Status(0), next)
	})
}

func TestStatus_IsPending(t *testing.T) {
	assert.True(t, order.Pending.IsPending())
	assert.False(t, order.Delivered.IsPending())
	assert.False(t, order.Unknown.IsPending())
}
