package queries

import (
	"context"

	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Raw(orderViewColumns+` WHERE o.id = ?`, query.OrderID().Int64()).
		Scan(&rows).Error
	if err != nil {
		return OrderView{}, storeFailure(err)
	}
	if len(rows) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return rows[0].view(), nil
}
