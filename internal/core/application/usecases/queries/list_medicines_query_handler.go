package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const medicineViewColumns = `
	SELECT
		id,
		name,
		description,
		category_id,
		price,
		stock
	FROM medicines`

type medicineRow struct {
	ID          int64
	Name        string
	Description string
	CategoryID  int64
	Price       decimal.Decimal
	Stock       int
}

func (r medicineRow) view() MedicineView {
	return MedicineView{
		ID:          kernel.ID(r.ID),
		Name:        r.Name,
		Description: r.Description,
		CategoryID:  kernel.ID(r.CategoryID),
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

// ListMedicinesQueryHandler reads medicines ordered by name.
type ListMedicinesQueryHandler struct {
	db *gorm.DB
}

func NewListMedicinesQueryHandler(db *gorm.DB) ListMedicinesQueryHandler {
	return ListMedicinesQueryHandler{db: db}
}

func (h ListMedicinesQueryHandler) Handle(ctx context.Context, query ListMedicinesQuery) ([]MedicineView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []medicineRow
	var tx *gorm.DB
	if categoryID := query.CategoryID(); categoryID != nil {
		tx = h.db.WithContext(ctx).Raw(medicineViewColumns+`
		WHERE category_id = ?
		ORDER BY name, id`, categoryID.Int64())
	} else {
		tx = h.db.WithContext(ctx).Raw(medicineViewColumns + `
		ORDER BY name, id`)
	}
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, storeFailure(err)
	}

	medicines := make([]MedicineView, 0, len(rows))
	for _, r := range rows {
		medicines = append(medicines, r.view())
	}
	return medicines, nil
}
