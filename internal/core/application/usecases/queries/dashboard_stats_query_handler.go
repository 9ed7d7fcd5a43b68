package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardStatsQueryHandler struct {
	db *gorm.DB
}

func NewDashboardStatsQueryHandler(db *gorm.DB) DashboardStatsQueryHandler {
	return DashboardStatsQueryHandler{db: db}
}

func (h DashboardStatsQueryHandler) Handle(ctx context.Context, query DashboardStatsQuery) (DashboardStats, error) {
	if err := query.Validate(); err != nil {
		return DashboardStats{}, err
	}

	var row struct {
		TotalOrders  int64
		TotalRevenue decimal.Decimal
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(total_price) FILTER (WHERE status <> ?), 0) AS total_revenue
		FROM orders
	`, order.Cancelled.String()).Scan(&row).Error
	if err != nil {
		return DashboardStats{}, storeFailure(err)
	}

	return DashboardStats{TotalOrders: row.TotalOrders, TotalRevenue: row.TotalRevenue}, nil
}
