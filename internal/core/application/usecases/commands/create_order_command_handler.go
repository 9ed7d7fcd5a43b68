package commands

import (
	"context"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/services"
)

// CreateOrderCommandHandler places an order: it locks the medicine row,
// reserves the units, inserts the order and writes the new stock in one
// transaction. Concurrent orders for the same medicine queue on the row lock,
// so the last unit can only be sold once.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	reconciler services.StockReconciler
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewStockReconciler(),
		now:        time.Now,
	}
}

// Handle returns the ID of the new order. A quantity above the stock on hand
// fails with catalog.ErrInsufficientStock and nothing is written.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	medicines, err := uow.MedicineRepository().GetForUpdate(ctx, cmd.MedicineID())
	if err != nil {
		return 0, err
	}
	medicine := medicines[cmd.MedicineID()]

	o, err := h.reconciler.Place(cmd.Customer(), medicine, cmd.Quantity(), cmd.PrescriptionImage(), h.now())
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.MedicineRepository().Update(ctx, medicine); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return o.ID(), nil
}
