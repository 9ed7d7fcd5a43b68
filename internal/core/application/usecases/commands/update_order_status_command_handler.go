package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/domain/services"
)

// UpdateOrderStatusCommandHandler writes any valid status without checking
// the transition. Writing a terminal status frees the courier holding the
// order; writing cancelled also follows the CancelPolicy for stock.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     CancelPolicy
	reconciler services.StockReconciler
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, policy CancelPolicy) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		reconciler: services.NewStockReconciler(),
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if err = o.SetStatus(cmd.Status()); err != nil {
		return err
	}

	switch {
	case cmd.Status() == order.Cancelled:
		err = applyCancellation(ctx, uow, h.reconciler, h.policy, o)
	case cmd.Status().IsTerminal():
		err = releaseCourier(ctx, uow, o.ID())
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
