package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/services"
)

// DeleteOrderCommandHandler removes an order, returns the units it holds to
// stock and frees the courier carrying it, all in one transaction.
// Delivered orders cannot be deleted.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	reconciler services.StockReconciler
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewStockReconciler(),
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err = o.EnsureDeletable(); err != nil {
		return err
	}

	if o.StockReserved() {
		medicines, lockErr := uow.MedicineRepository().GetForUpdate(ctx, o.MedicineID())
		if lockErr != nil {
			return lockErr
		}
		medicine := medicines[o.MedicineID()]

		if _, err = h.reconciler.Release(o, medicine); err != nil {
			return err
		}
		if err = uow.MedicineRepository().Update(ctx, medicine); err != nil {
			return err
		}
	}

	if err = releaseCourier(ctx, uow, o.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseCourier frees whichever courier currently holds orderID.
func releaseCourier(ctx context.Context, uow CourierRepoFactory, orderID kernel.ID) error {
	c, err := uow.CourierRepository().FindHoldingForUpdate(ctx, orderID)
	if err != nil || c == nil {
		return err
	}
	if !c.Release(orderID) {
		return nil
	}
	return uow.CourierRepository().Update(ctx, c)
}
