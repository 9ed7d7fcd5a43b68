package queries

import (
	"context"

	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetMedicineQueryHandler struct {
	db *gorm.DB
}

func NewGetMedicineQueryHandler(db *gorm.DB) GetMedicineQueryHandler {
	return GetMedicineQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown medicine.
func (h GetMedicineQueryHandler) Handle(ctx context.Context, query GetMedicineQuery) (MedicineView, error) {
	if err := query.Validate(); err != nil {
		return MedicineView{}, err
	}

	var rows []medicineRow
	err := h.db.WithContext(ctx).
		Raw(medicineViewColumns+` WHERE id = ?`, query.MedicineID().Int64()).
		Scan(&rows).Error
	if err != nil {
		return MedicineView{}, storeFailure(err)
	}
	if len(rows) == 0 {
		return MedicineView{}, errs.NewObjectNotFoundError("medicine", query.MedicineID())
	}

	return rows[0].view(), nil
}
