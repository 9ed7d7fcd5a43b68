package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/catalog"
)

// UpdateMedicineCommandHandler applies admin edits to a locked medicine row.
type UpdateMedicineCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateMedicineCommandHandler(uowFactory CatalogUoWFactory) UpdateMedicineCommandHandler {
	return UpdateMedicineCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateMedicineCommandHandler) Handle(ctx context.Context, cmd UpdateMedicineCommand) error {
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

	medicines, err := uow.MedicineRepository().GetForUpdate(ctx, cmd.MedicineID())
	if err != nil {
		return err
	}
	medicine := medicines[cmd.MedicineID()]

	changes := cmd.Changes()
	if changes.CategoryID != nil {
		if _, err = uow.CategoryRepository().Get(ctx, *changes.CategoryID); err != nil {
			return err
		}
	}

	if err = applyMedicineChanges(medicine, cmd); err != nil {
		return err
	}

	if err = uow.MedicineRepository().Update(ctx, medicine); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyMedicineChanges(m *catalog.Medicine, cmd UpdateMedicineCommand) error {
	changes := cmd.Changes()
	var errList []error
	if changes.Name != nil {
		errList = append(errList, m.Rename(*changes.Name))
	}
	if changes.Description != nil {
		m.Describe(*changes.Description)
	}
	if changes.CategoryID != nil {
		errList = append(errList, m.MoveToCategory(*changes.CategoryID))
	}
	if price := cmd.Price(); price != nil {
		errList = append(errList, m.SetPrice(*price))
	}
	if changes.Stock != nil {
		errList = append(errList, m.SetStock(*changes.Stock))
	}
	return errors.Join(errList...)
}
