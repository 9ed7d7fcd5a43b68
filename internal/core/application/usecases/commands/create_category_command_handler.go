package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"
)

type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle returns the ID of the new category.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	category, err := catalog.NewCategory(cmd.Name(), cmd.Description())
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

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return category.ID(), nil
}
