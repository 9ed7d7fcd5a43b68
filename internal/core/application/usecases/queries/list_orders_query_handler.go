package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler feeds the admin order table and the recent orders
// widget. Orders created in the same instant are ordered by descending id.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := orderViewColumns + `
		ORDER BY o.created_at DESC, o.id DESC`
	args := []any{}
	if query.Limit() > 0 {
		sql += ` LIMIT ?`
		args = append(args, query.Limit())
	}

	var rows []orderRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, storeFailure(err)
	}

	return orderViews(rows), nil
}
