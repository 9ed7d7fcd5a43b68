package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/domain/services"
)

// ModifyOrderCommandHandler changes contact details and the line of a
// pending order. The total is always recomputed from the current price of
// the (possibly new) medicine. When the medicine or quantity changes the
// units held on the old medicine are returned and the new quantity is
// reserved, with both medicine rows locked in ascending ID order.
type ModifyOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	reconciler services.StockReconciler
}

func NewModifyOrderCommandHandler(uowFactory OrderUoWFactory) ModifyOrderCommandHandler {
	return ModifyOrderCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewStockReconciler(),
	}
}

func (h *ModifyOrderCommandHandler) Handle(ctx context.Context, cmd ModifyOrderCommand) error {
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

	changes := cmd.Changes()
	customer, err := o.Customer().With(changes.CustomerName, changes.Address, changes.Phone)
	if err != nil {
		return err
	}
	if err = o.ChangeCustomer(customer); err != nil {
		return err
	}

	targetID, quantity := o.MedicineID(), o.Quantity()
	if changes.MedicineID != nil {
		targetID = *changes.MedicineID
	}
	if changes.Quantity != nil {
		quantity = *changes.Quantity
	}

	medicines, err := uow.MedicineRepository().GetForUpdate(ctx, o.MedicineID(), targetID)
	if err != nil {
		return err
	}
	current, target := medicines[o.MedicineID()], medicines[targetID]

	if lineChanged(o, targetID, quantity) {
		if err = h.reconciler.ChangeLine(o, current, target, quantity); err != nil {
			return err
		}
		if err = saveMedicines(ctx, uow, current, target); err != nil {
			return err
		}
	} else if err = o.Reprice(target.Price()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func lineChanged(o *order.Order, medicineID kernel.ID, quantity int) bool {
	return o.MedicineID() != medicineID || o.Quantity() != quantity
}

func saveMedicines(ctx context.Context, uow MedicineRepoFactory, medicines ...*catalog.Medicine) error {
	saved := make(map[kernel.ID]bool, len(medicines))
	for _, m := range medicines {
		if saved[m.ID()] {
			continue
		}
		if err := uow.MedicineRepository().Update(ctx, m); err != nil {
			return err
		}
		saved[m.ID()] = true
	}
	return nil
}
