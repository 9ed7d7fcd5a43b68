package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetCurrentOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetCurrentOrderQueryHandler(db *gorm.DB) GetCurrentOrderQueryHandler {
	return GetCurrentOrderQueryHandler{db: db}
}

// Handle returns nil without error when the courier is free or unknown.
func (h GetCurrentOrderQueryHandler) Handle(ctx context.Context, query GetCurrentOrderQuery) (*OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(orderViewColumns+`
		JOIN couriers c ON c.current_order_id = o.id
		WHERE c.id = ?`, query.CourierID().Int64()).Scan(&rows).Error
	if err != nil {
		return nil, storeFailure(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	v := rows[0].view()
	return &v, nil
}
