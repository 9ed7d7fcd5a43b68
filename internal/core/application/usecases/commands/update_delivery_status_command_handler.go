package commands

import (
	"context"
	"fmt"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/domain/services"
	"pharmacy/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler records courier progress. Delivering
// an unpaid order fails with errs.ErrPaymentRequired. A successful delivery
// frees the courier and queues a feedback request for the customer in the
// same transaction; the outbox dispatcher sends it after commit.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	coordinator services.DeliveryCoordinator
	now         func() time.Time
}

func NewUpdateDeliveryStatusCommandHandler(uowFactory OrderUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewDeliveryCoordinator(),
		now:         time.Now,
	}
}

func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	if cmd.Status() == order.Dispatched {
		err = o.MarkDispatched()
	} else {
		err = h.deliver(ctx, uow, o)
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *UpdateDeliveryStatusCommandHandler) deliver(ctx context.Context, uow OrderUoW, o *order.Order) error {
	c, err := uow.CourierRepository().FindHoldingForUpdate(ctx, o.ID())
	if err != nil {
		return err
	}

	if err = h.coordinator.Complete(c, o); err != nil {
		return err
	}

	if c != nil {
		if err = uow.CourierRepository().Update(ctx, c); err != nil {
			return err
		}
	}

	n, err := notification.NewNotification(o.Customer().Phone(), notification.FeedbackRequest(o.ID()), h.now())
	if err != nil {
		return err
	}
	return uow.NotificationRepository().Add(ctx, n)
}

// ensureCarriedBy rejects updates from a courier the order was not dispatched with.
func ensureCarriedBy(o *order.Order, courierID kernel.ID) error {
	if o.IsHeldBy(courierID) {
		return nil
	}
	return fmt.Errorf("order %s is not assigned to courier %s: %w", o.ID(), courierID, errs.ErrForbidden)
}
