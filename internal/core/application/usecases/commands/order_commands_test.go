package commands_test

import (
	"context"
	"errors"
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/courier"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "", "abc", 0, 0, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
		assert.ErrorIs(t, err, order.ErrCustomerAddressIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject zero value command in handler", func(t *testing.T) {
		h := commands.NewCreateOrderCommandHandler(orderUoWFactory{newMockUoW()})

		_, err := h.Handle(context.Background(), commands.CreateOrderCommand{})

		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("Asha", "12 MG Road", "+91 98450 12345", 1, 2, "rx.png")
	require.NoError(t, err)

	t.Run("should reserve stock and insert order in one transaction", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		med := testMedicine(1, "12.50", 5)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.medicines.On("GetForUpdate", ctx, []kernel.ID{1}).
				Return(map[kernel.ID]*catalog.Medicine{1: med}, nil).Once(),
			uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
				Run(func(args mock.Arguments) {
					o := args.Get(1).(*order.Order)
					assert.Equal(t, "25.00", o.Total().String())
					assert.Equal(t, order.Pending, o.Status())
					_ = o.SetID(77)
				}).
				Return(nil).Once(),
			uow.medicines.On("Update", ctx, med).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCreateOrderCommandHandler(orderUoWFactory{uow})
		id, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(77), id)
		assert.Equal(t, 3, med.Stock())
		uow.assertAll(t)
	})

	t.Run("should reject over ordering without writing", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		uow.expectTx(ctx, false)
		uow.medicines.On("GetForUpdate", ctx, []kernel.ID{1}).
			Return(map[kernel.ID]*catalog.Medicine{1: testMedicine(1, "12.50", 1)}, nil).Once()

		h := commands.NewCreateOrderCommandHandler(orderUoWFactory{uow})
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, catalog.ErrInsufficientStock)
		uow.assertAll(t)
	})

	t.Run("should surface missing medicine", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		uow.expectTx(ctx, false)
		uow.medicines.On("GetForUpdate", ctx, []kernel.ID{1}).
			Return(nil, errs.NewObjectNotFoundError("medicine", kernel.ID(1))).Once()

		h := commands.NewCreateOrderCommandHandler(orderUoWFactory{uow})
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.assertAll(t)
	})

	t.Run("should stop when transaction cannot begin", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		uow.On("Begin", ctx).Return(errors.New("connection refused")).Once()

		h := commands.NewCreateOrderCommandHandler(orderUoWFactory{uow})
		_, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		uow.assertAll(t)
	})
}

func TestModifyOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should apply quantity delta on the same medicine", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		med := testMedicine(1, "10", 3)
		o := testOrder(5, 1, 2, order.Pending, order.PaymentPending, nil)
		qty := 4
		cmd, err := commands.NewModifyOrderCommand(5, commands.OrderChanges{Quantity: &qty})
		require.NoError(t, err)

		uow.expectTx(ctx, true)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).Return(o, nil).Once()
		uow.medicines.On("GetForUpdate", ctx, []kernel.ID{1, 1}).
			Return(map[kernel.ID]*catalog.Medicine{1: med}, nil).Once()
		uow.medicines.On("Update", ctx, med).Return(nil).Once()
		uow.orders.On("Update", ctx, o).Return(nil).Once()

		h := commands.NewModifyOrderCommandHandler(orderUoWFactory{uow})
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, 1, med.Stock())
		assert.Equal(t, 4, o.Quantity())
		assert.Equal(t, "40.00", o.Total().String())
		uow.assertAll(t)
	})

	t.Run("should move the line to another medicine", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		oldMed := testMedicine(1, "10", 0)
		newMed := testMedicine(2, "4", 3)
		o := testOrder(5, 1, 2, order.Pending, order.PaymentPending, nil)
		target := kernel.ID(2)
		cmd, _ := commands.NewModifyOrderCommand(5, commands.OrderChanges{MedicineID: &target})

		uow.expectTx(ctx, true)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).Return(o, nil).Once()
		uow.medicines.On("GetForUpdate", ctx, []kernel.ID{1, 2}).
			Return(map[kernel.ID]*catalog.Medicine{1: oldMed, 2: newMed}, nil).Once()
		uow.medicines.On("Update", ctx, oldMed).Return(nil).Once()
		uow.medicines.On("Update", ctx, newMed).Return(nil).Once()
		uow.orders.On("Update", ctx, o).Return(nil).Once()

		h := commands.NewModifyOrderCommandHandler(orderUoWFactory{uow})
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, 2, oldMed.Stock())
		assert.Equal(t, 1, newMed.Stock())
		assert.Equal(t, "8.00", o.Total().String())
		uow.assertAll(t)
	})

	t.Run("should reprice when only contact fields change", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		med := testMedicine(1, "11", 3)
		o := testOrder(5, 1, 2, order.Pending, order.PaymentPending, nil)
		address := "7 Park Street"
		cmd, _ := commands.NewModifyOrderCommand(5, commands.OrderChanges{Address: &address})

		uow.expectTx(ctx, true)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).Return(o, nil).Once()
		uow.medicines.On("GetForUpdate", ctx, []kernel.ID{1, 1}).
			Return(map[kernel.ID]*catalog.Medicine{1: med}, nil).Once()
		uow.orders.On("Update", ctx, o).Return(nil).Once()

		h := commands.NewModifyOrderCommandHandler(orderUoWFactory{uow})
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, address, o.Customer().Address())
		assert.Equal(t, "22.00", o.Total().String())
		assert.Equal(t, 3, med.Stock())
		uow.assertAll(t)
	})

	t.Run("should reject orders that are no longer pending", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		o := testOrder(5, 1, 2, order.Verified, order.PaymentPending, nil)
		qty := 1
		cmd, _ := commands.NewModifyOrderCommand(5, commands.OrderChanges{Quantity: &qty})

		uow.expectTx(ctx, false)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).Return(o, nil).Once()

		h := commands.NewModifyOrderCommandHandler(orderUoWFactory{uow})
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		uow.assertAll(t)
	})
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should restore stock and free courier", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		med := testMedicine(1, "10", 3)
		o := testOrder(5, 1, 2, order.Dispatched, order.PaymentPending, idPtr(9))
		c := courier.RestoreCourier(9, "ravi", "hash", "Ravi", "", idPtr(5))
		cmd, _ := commands.NewDeleteOrderCommand(5)

		uow.expectTx(ctx, true)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).Return(o, nil).Once()
		uow.medicines.On("GetForUpdate", ctx, []kernel.ID{1}).
			Return(map[kernel.ID]*catalog.Medicine{1: med}, nil).Once()
		uow.medicines.On("Update", ctx, med).Return(nil).Once()
		uow.couriers.On("FindHoldingForUpdate", ctx, kernel.ID(5)).Return(c, nil).Once()
		uow.couriers.On("Update", ctx, c).Return(nil).Once()
		uow.orders.On("Delete", ctx, kernel.ID(5)).Return(nil).Once()

		h := commands.NewDeleteOrderCommandHandler(orderUoWFactory{uow})
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, 5, med.Stock())
		assert.True(t, c.IsFree())
		uow.assertAll(t)
	})

	t.Run("should reject delivered orders", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		cmd, _ := commands.NewDeleteOrderCommand(5)

		uow.expectTx(ctx, false)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).
			Return(testOrder(5, 1, 2, order.Delivered, order.PaymentPaid, idPtr(9)), nil).Once()

		h := commands.NewDeleteOrderCommandHandler(orderUoWFactory{uow})
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidState)
		uow.assertAll(t)
	})

	t.Run("should surface missing order", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		cmd, _ := commands.NewDeleteOrderCommand(5)

		uow.expectTx(ctx, false)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).
			Return(nil, errs.NewObjectNotFoundError("order", kernel.ID(5))).Once()

		h := commands.NewDeleteOrderCommandHandler(orderUoWFactory{uow})
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
		uow.assertAll(t)
	})
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should keep stock deducted by default", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		o := testOrder(5, 1, 2, order.Verified, order.PaymentPending, nil)
		cmd, _ := commands.NewCancelOrderCommand(5)

		uow.expectTx(ctx, true)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).Return(o, nil).Once()
		uow.couriers.On("FindHoldingForUpdate", ctx, kernel.ID(5)).Return(nil, nil).Once()
		uow.orders.On("Update", ctx, o).Return(nil).Once()

		h := commands.NewCancelOrderCommandHandler(orderUoWFactory{uow}, commands.CancelPolicy{})
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.True(t, o.StockReserved())
		uow.assertAll(t)
	})

	t.Run("should restock when policy says so", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		med := testMedicine(1, "10", 0)
		o := testOrder(5, 1, 2, order.Pending, order.PaymentPending, nil)
		cmd, _ := commands.NewCancelOrderCommand(5)

		uow.expectTx(ctx, true)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).Return(o, nil).Once()
		uow.couriers.On("FindHoldingForUpdate", ctx, kernel.ID(5)).Return(nil, nil).Once()
		uow.medicines.On("GetForUpdate", ctx, []kernel.ID{1}).
			Return(map[kernel.ID]*catalog.Medicine{1: med}, nil).Once()
		uow.medicines.On("Update", ctx, med).Return(nil).Once()
		uow.orders.On("Update", ctx, o).Return(nil).Once()

		h := commands.NewCancelOrderCommandHandler(orderUoWFactory{uow}, commands.CancelPolicy{RestockOnCancel: true})
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, 2, med.Stock())
		assert.False(t, o.StockReserved())
		uow.assertAll(t)
	})

	t.Run("should reject terminal orders", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		cmd, _ := commands.NewCancelOrderCommand(5)

		uow.expectTx(ctx, false)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).
			Return(testOrder(5, 1, 2, order.Cancelled, order.PaymentPending, nil), nil).Once()

		h := commands.NewCancelOrderCommandHandler(orderUoWFactory{uow}, commands.CancelPolicy{})
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidState)
		uow.assertAll(t)
	})
}

func TestUpdateOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should write any status without transition checks", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		o := testOrder(5, 1, 2, order.Dispatched, order.PaymentPending, idPtr(9))
		cmd, err := commands.NewUpdateOrderStatusCommand(5, "pending")
		require.NoError(t, err)

		uow.expectTx(ctx, true)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).Return(o, nil).Once()
		uow.orders.On("Update", ctx, o).Return(nil).Once()

		h := commands.NewUpdateOrderStatusCommandHandler(orderUoWFactory{uow}, commands.CancelPolicy{})
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, order.Pending, o.Status())
		uow.assertAll(t)
	})

	t.Run("should free courier on terminal status", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		o := testOrder(5, 1, 2, order.Dispatched, order.PaymentPending, idPtr(9))
		c := courier.RestoreCourier(9, "ravi", "hash", "Ravi", "", idPtr(5))
		cmd, _ := commands.NewUpdateOrderStatusCommand(5, "delivered")

		uow.expectTx(ctx, true)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).Return(o, nil).Once()
		uow.couriers.On("FindHoldingForUpdate", ctx, kernel.ID(5)).Return(c, nil).Once()
		uow.couriers.On("Update", ctx, c).Return(nil).Once()
		uow.orders.On("Update", ctx, o).Return(nil).Once()

		h := commands.NewUpdateOrderStatusCommandHandler(orderUoWFactory{uow}, commands.CancelPolicy{})
		require.NoError(t, h.Handle(ctx, cmd))

		assert.True(t, c.IsFree())
		uow.assertAll(t)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(5, "shipped")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestVerifyPrescriptionCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	uow := newMockUoW()
	o := testOrder(5, 1, 2, order.Delivered, order.PaymentPaid, nil)
	cmd, _ := commands.NewVerifyPrescriptionCommand(5)

	uow.expectTx(ctx, true)
	uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).Return(o, nil).Once()
	uow.orders.On("Update", ctx, o).Return(nil).Once()

	h := commands.NewVerifyPrescriptionCommandHandler(orderUoWFactory{uow})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, o.PrescriptionVerified())
	uow.assertAll(t)
}

func TestSetPaymentStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should mark order paid", func(t *testing.T) {
		ctx := context.Background()
		uow := newMockUoW()
		o := testOrder(5, 1, 2, order.Dispatched, order.PaymentPending, nil)
		cmd, err := commands.NewSetPaymentStatusCommand(5, "paid")
		require.NoError(t, err)

		uow.expectTx(ctx, true)
		uow.orders.On("GetForUpdate", ctx, kernel.ID(5)).Return(o, nil).Once()
		uow.orders.On("Update", ctx, o).Return(nil).Once()

		h := commands.NewSetPaymentStatusCommandHandler(orderUoWFactory{uow})
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		uow.assertAll(t)
	})

	t.Run("should reject statuses outside pending and paid", func(t *testing.T) {
		_, err := commands.NewSetPaymentStatusCommand(5, "refunded")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
