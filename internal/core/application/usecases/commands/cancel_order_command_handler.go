package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/domain/services"
)

// CancelPolicy decides what an admin cancellation does with held stock.
type CancelPolicy struct {
	// RestockOnCancel returns the units held by the order to stock. When
	// false the units stay deducted, matching the historical admin flow.
	RestockOnCancel bool
}

// CancelOrderCommandHandler cancels a non-terminal order and frees its courier.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     CancelPolicy
	reconciler services.StockReconciler
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, policy CancelPolicy) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		reconciler: services.NewStockReconciler(),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	if err = applyCancellation(ctx, uow, h.reconciler, h.policy, o); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// applyCancellation runs the side effects of an order that has just been
// set to cancelled: the courier is freed and, by policy, stock is returned.
func applyCancellation(
	ctx context.Context,
	uow OrderUoW,
	reconciler services.StockReconciler,
	policy CancelPolicy,
	o *order.Order,
) error {
	if err := releaseCourier(ctx, uow, o.ID()); err != nil {
		return err
	}

	if !policy.RestockOnCancel || !o.StockReserved() {
		return nil
	}

	medicines, err := uow.MedicineRepository().GetForUpdate(ctx, o.MedicineID())
	if err != nil {
		return err
	}
	medicine := medicines[o.MedicineID()]

	if _, err = reconciler.Release(o, medicine); err != nil {
		return err
	}
	return uow.MedicineRepository().Update(ctx, medicine)
}
