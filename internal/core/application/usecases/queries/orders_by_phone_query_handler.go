package queries

import (
	"context"

	"gorm.io/gorm"
)

type OrdersByPhoneQueryHandler struct {
	db *gorm.DB
}

func NewOrdersByPhoneQueryHandler(db *gorm.DB) OrdersByPhoneQueryHandler {
	return OrdersByPhoneQueryHandler{db: db}
}

func (h OrdersByPhoneQueryHandler) Handle(ctx context.Context, query OrdersByPhoneQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(orderViewColumns+`
		WHERE o.phone = ?
		ORDER BY o.created_at DESC, o.id DESC`, query.Phone().String()).Scan(&rows).Error
	if err != nil {
		return nil, storeFailure(err)
	}

	return orderViews(rows), nil
}
