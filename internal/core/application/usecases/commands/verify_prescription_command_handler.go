package commands

import (
	"context"
)

// VerifyPrescriptionCommandHandler sets the prescription-verified flag. It
// has no status precondition.
type VerifyPrescriptionCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewVerifyPrescriptionCommandHandler(uowFactory OrderUoWFactory) VerifyPrescriptionCommandHandler {
	return VerifyPrescriptionCommandHandler{uowFactory: uowFactory}
}

func (h *VerifyPrescriptionCommandHandler) Handle(ctx context.Context, cmd VerifyPrescriptionCommand) error {
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

	o.VerifyPrescription()

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
