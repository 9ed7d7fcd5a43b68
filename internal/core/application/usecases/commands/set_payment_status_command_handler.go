package commands

import (
	"context"
)

// SetPaymentStatusCommandHandler writes the payment status of an order.
type SetPaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSetPaymentStatusCommandHandler(uowFactory OrderUoWFactory) SetPaymentStatusCommandHandler {
	return SetPaymentStatusCommandHandler{uowFactory: uowFactory}
}

func (h *SetPaymentStatusCommandHandler) Handle(ctx context.Context, cmd SetPaymentStatusCommand) error {
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

	if err = o.SetPaymentStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
