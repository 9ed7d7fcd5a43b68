package queries

import (
	"context"

	"gorm.io/gorm"
)

type CheckAvailabilityQueryHandler struct {
	db *gorm.DB
}

func NewCheckAvailabilityQueryHandler(db *gorm.DB) CheckAvailabilityQueryHandler {
	return CheckAvailabilityQueryHandler{db: db}
}

func (h CheckAvailabilityQueryHandler) Handle(ctx context.Context, query CheckAvailabilityQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var available bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM medicines WHERE id = ? AND stock > 0
		)
	`, query.MedicineID().Int64()).Scan(&available).Error
	if err != nil {
		return false, storeFailure(err)
	}

	return available, nil
}
