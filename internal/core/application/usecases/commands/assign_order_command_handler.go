package commands

import (
	"context"

	"pharmacy/internal/core/domain/services"
)

// AssignOrderCommandHandler binds an order to a free courier and marks it
// dispatched. Both rows are locked (order first, then courier) and both
// updates commit together or not at all.
type AssignOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	coordinator services.DeliveryCoordinator
}

func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewDeliveryCoordinator(),
	}
}

func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	c, err := uow.CourierRepository().GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	// Reassigning a dispatched order takes it away from its previous courier.
	if prev := o.Courier(); prev != nil && *prev != c.ID() {
		if err = releaseCourier(ctx, uow, o.ID()); err != nil {
			return err
		}
	}

	if err = h.coordinator.Assign(c, o); err != nil {
		return err
	}

	if err = uow.CourierRepository().Update(ctx, c); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
