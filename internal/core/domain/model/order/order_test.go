package order_test

import (
	"testing"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Asha", "12 MG Road", "+91 98450 12345")
	require.NoError(t, err)
	return c
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(validCustomer(t), 1, 2, money(t, "10"), "", time.Now())
	require.NoError(t, err)
	require.NoError(t, o.SetID(1))
	return o
}

func TestNewOrder(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should create pending unpaid order with frozen total", func(t *testing.T) {
		o, err := order.NewOrder(validCustomer(t), 4, 3, money(t, "12.50"), " rx.png ", createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.False(t, o.PrescriptionVerified())
		assert.True(t, o.StockReserved())
		assert.Equal(t, "37.50", o.Total().String())
		assert.Equal(t, "rx.png", o.PrescriptionImage())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Nil(t, o.Courier())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		o, err := order.NewOrder(order.Customer{}, 0, 0, kernel.Money{}, "", createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())

	var zero order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
}

func TestOrder_Modify(t *testing.T) {
	t.Run("should change line and total while pending", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ChangeLine(2, 5, money(t, "3")))

		assert.Equal(t, kernel.ID(2), o.MedicineID())
		assert.Equal(t, 5, o.Quantity())
		assert.Equal(t, "15.00", o.Total().String())
	})

	t.Run("should reprice from current unit price", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Reprice(money(t, "11")))

		assert.Equal(t, "22.00", o.Total().String())
	})

	t.Run("should reject changes once the order left pending", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.SetStatus(order.Verified))

		err := o.ChangeLine(2, 1, money(t, "1"))
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "cannot modify order in state verified")

		require.ErrorIs(t, o.ChangeCustomer(validCustomer(t)), errs.ErrInvalidState)
		require.ErrorIs(t, o.Reprice(money(t, "1")), errs.ErrInvalidState)
		assert.Equal(t, "20.00", o.Total().String())
	})

	t.Run("should update contact fields selectively", func(t *testing.T) {
		o := newPendingOrder(t)
		address := "7 Park Street"

		c, err := o.Customer().With(nil, &address, nil)
		require.NoError(t, err)
		require.NoError(t, o.ChangeCustomer(c))

		assert.Equal(t, "Asha", o.Customer().Name())
		assert.Equal(t, address, o.Customer().Address())
		assert.Equal(t, kernel.Phone("919845012345"), o.Customer().Phone())
	})
}

func TestOrder_SetStatus(t *testing.T) {
	o := newPendingOrder(t)

	require.NoError(t, o.SetStatus(order.Delivered))
	require.NoError(t, o.SetStatus(order.Pending))
	assert.Equal(t, order.Pending, o.Status())

	require.ErrorIs(t, o.SetStatus("lost"), errs.ErrValueIsInvalid)
	assert.Equal(t, order.Pending, o.Status())
}

func TestOrder_CancelAndDelete(t *testing.T) {
	t.Run("should cancel non terminal order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidState)
	})

	t.Run("should not delete delivered order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.SetStatus(order.Delivered))

		require.ErrorIs(t, o.EnsureDeletable(), errs.ErrInvalidState)
	})

	t.Run("should release reserved stock exactly once", func(t *testing.T) {
		o := newPendingOrder(t)

		assert.Equal(t, 2, o.ReleaseStock())
		assert.False(t, o.StockReserved())
		assert.Equal(t, 0, o.ReleaseStock())
	})
}

func TestOrder_Delivery(t *testing.T) {
	t.Run("should dispatch to courier", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Dispatch(7))

		assert.Equal(t, order.Dispatched, o.Status())
		assert.True(t, o.IsHeldBy(7))
		assert.False(t, o.IsHeldBy(8))
	})

	t.Run("should require payment before delivery", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Dispatch(7))

		require.ErrorIs(t, o.Deliver(), errs.ErrPaymentRequired)
		assert.Equal(t, order.Dispatched, o.Status())

		require.NoError(t, o.SetPaymentStatus(order.PaymentPaid))
		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject delivery work on terminal orders", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Dispatch(7), errs.ErrInvalidState)
		require.ErrorIs(t, o.MarkDispatched(), errs.ErrInvalidState)
		require.ErrorIs(t, o.Deliver(), errs.ErrInvalidState)
	})

	t.Run("should verify prescription regardless of status", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		o.VerifyPrescription()

		assert.True(t, o.PrescriptionVerified())
	})
}
