package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description
		FROM categories
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, storeFailure(err)
	}
	defer rows.Close()

	categories := make([]CategoryView, 0)
	for rows.Next() {
		var (
			category CategoryView
			id       int64
		)
		if err = rows.Scan(&id, &category.Name, &category.Description); err != nil {
			return nil, storeFailure(err)
		}
		category.ID = kernel.ID(id)
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, storeFailure(err)
	}

	return categories, nil
}
