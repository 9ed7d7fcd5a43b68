package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"
)

// CreateMedicineCommandHandler adds a medicine after checking its category exists.
type CreateMedicineCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateMedicineCommandHandler(uowFactory CatalogUoWFactory) CreateMedicineCommandHandler {
	return CreateMedicineCommandHandler{uowFactory: uowFactory}
}

// Handle returns the ID of the new medicine.
func (h *CreateMedicineCommandHandler) Handle(ctx context.Context, cmd CreateMedicineCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	medicine, err := catalog.NewMedicine(cmd.Name(), cmd.Description(), cmd.CategoryID(), cmd.Price(), cmd.Stock())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.CategoryRepository().Get(ctx, cmd.CategoryID()); err != nil {
		return 0, err
	}

	if err = uow.MedicineRepository().Add(ctx, medicine); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return medicine.ID(), nil
}
