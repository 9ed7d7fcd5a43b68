package services_test

import (
	"testing"
	"time"

	"pharmacy/internal/core/domain/model/courier"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/domain/services"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, id kernel.ID) *order.Order {
	t.Helper()
	o, err := services.NewStockReconciler().Place(customer(t), medicine(1, "10", 5), 1, "", time.Now())
	require.NoError(t, err)
	require.NoError(t, o.SetID(id))
	return o
}

func TestDeliveryCoordinator_Assign(t *testing.T) {
	d := services.NewDeliveryCoordinator()

	t.Run("should bind order and courier", func(t *testing.T) {
		c := courier.RestoreCourier(1, "ravi", "hash", "Ravi", "", nil)
		o := pendingOrder(t, 10)

		require.NoError(t, d.Assign(c, o))

		assert.Equal(t, order.Dispatched, o.Status())
		assert.True(t, o.IsHeldBy(1))
		assert.Equal(t, kernel.ID(10), *c.CurrentOrderID())
	})

	t.Run("should leave both untouched when courier is busy", func(t *testing.T) {
		busy := kernel.ID(9)
		c := courier.RestoreCourier(1, "ravi", "hash", "Ravi", "", &busy)
		o := pendingOrder(t, 10)

		require.ErrorIs(t, d.Assign(c, o), errs.ErrInvalidState)

		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Courier())
		assert.Equal(t, busy, *c.CurrentOrderID())
	})

	t.Run("should reject terminal order", func(t *testing.T) {
		c := courier.RestoreCourier(1, "ravi", "hash", "Ravi", "", nil)
		o := pendingOrder(t, 10)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, d.Assign(c, o), errs.ErrInvalidState)
		assert.True(t, c.IsFree())
	})
}

func TestDeliveryCoordinator_Complete(t *testing.T) {
	d := services.NewDeliveryCoordinator()
	c := courier.RestoreCourier(1, "ravi", "hash", "Ravi", "", nil)
	o := pendingOrder(t, 10)
	require.NoError(t, d.Assign(c, o))

	require.ErrorIs(t, d.Complete(c, o), errs.ErrPaymentRequired)
	assert.False(t, c.IsFree())

	require.NoError(t, o.SetPaymentStatus(order.PaymentPaid))
	require.NoError(t, d.Complete(c, o))
	assert.Equal(t, order.Delivered, o.Status())
	assert.True(t, c.IsFree())
}
