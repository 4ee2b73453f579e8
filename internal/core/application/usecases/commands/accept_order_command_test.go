package commands_test

import (
	"context"

	"testing"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/order"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptOrderCommand(t *testing.T) {
	cmd, err := commands.NewAcceptOrderCommand(ptr(0), ptr(1))
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.Courier())
	assert.Equal(t, 1, cmd.Order())

	_, err = commands.NewAcceptOrderCommand(nil, nil)
	require.ErrorIs(t, err, commands.ErrCourierIsNotSelected)
	require.ErrorIs(t, err, commands.ErrOrderIsNotSelected)
}

func TestAcceptOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should queue order on courier with vehicle", func(t *testing.T) {
		ctx := context.Background()
		d := newSeededDepot(t)
		jean := courierAt(t, d, 0)
		require.NoError(t, d.AssignVehicle(jean, vehicleAt(t, d, 0)))
		m := expectCommit(ctx, d)
		cmd, _ := commands.NewAcceptOrderCommand(ptr(0), ptr(1))

		err := commands.NewAcceptOrderCommandHandler(m.factory).Handle(ctx, cmd)

		require.NoError(t, err)
		require.Equal(t, 1, jean.PendingCount())
		assert.Same(t, orderAt(t, d, 1), jean.PendingOrders()[0])
		assert.Equal(t, order.Pending, orderAt(t, d, 1).Status())
		m.assert(t)
	})

	t.Run("should refuse when courier has no vehicle", func(t *testing.T) {
		ctx := context.Background()
		d := newSeededDepot(t)
		m := expectAbort(ctx, d)
		cmd, _ := commands.NewAcceptOrderCommand(ptr(0), ptr(0))

		err := commands.NewAcceptOrderCommandHandler(m.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrOrderNotAccepted)
		assert.Zero(t, courierAt(t, d, 0).PendingCount())
		m.assert(t)
	})

	t.Run("should report unknown order", func(t *testing.T) {
		ctx := context.Background()
		d := newSeededDepot(t)
		m := expectAbort(ctx, d)
		cmd, _ := commands.NewAcceptOrderCommand(ptr(0), ptr(2))

		err := commands.NewAcceptOrderCommandHandler(m.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		m.assert(t)
	})
}
