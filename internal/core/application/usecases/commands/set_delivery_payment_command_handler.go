package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/order"
)

// SetDeliveryPaymentCommandHandler marks an order paid on behalf of the
// courier carrying it.
type SetDeliveryPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSetDeliveryPaymentCommandHandler(uowFactory OrderUoWFactory) SetDeliveryPaymentCommandHandler {
	return SetDeliveryPaymentCommandHandler{uowFactory: uowFactory}
}

func (h *SetDeliveryPaymentCommandHandler) Handle(ctx context.Context, cmd SetDeliveryPaymentCommand) error {
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

	if err = ensureCarriedBy(o, cmd.CourierID()); err != nil {
		return err
	}

	if err = o.SetPaymentStatus(order.PaymentPaid); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
