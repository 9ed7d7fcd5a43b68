package queries

import (
	"context"
	"database/sql"

	"pharmacy/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListCouriersQueryHandler retrieves couriers sorted by name, each joined
// with its current order and that order's medicine.
type ListCouriersQueryHandler struct {
	db *gorm.DB
}

// NewListCouriersQueryHandler creates a handler reading from the pool.
func NewListCouriersQueryHandler(db *gorm.DB) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{db: db}
}

// Handle returns an empty slice when there are no couriers.
func (h ListCouriersQueryHandler) Handle(ctx context.Context, query ListCouriersQuery) ([]CourierView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.username,
			c.name,
			c.phone,
			o.id,
			o.customer_name,
			o.address,
			m.name,
			o.status
		FROM couriers c
		LEFT JOIN orders o ON o.id = c.current_order_id
		LEFT JOIN medicines m ON m.id = o.medicine_id
		ORDER BY c.name, c.id
	`).Rows()
	if err != nil {
		return nil, storeFailure(err)
	}
	defer rows.Close()

	couriers := make([]CourierView, 0)
	for rows.Next() {
		var (
			courier      CourierView
			id           int64
			orderID      sql.NullInt64
			customerName sql.NullString
			address      sql.NullString
			medicineName sql.NullString
			status       sql.NullString
		)

		err = rows.Scan(
			&id,
			&courier.Username,
			&courier.Name,
			&courier.Phone,
			&orderID,
			&customerName,
			&address,
			&medicineName,
			&status,
		)
		if err != nil {
			return nil, storeFailure(err)
		}

		courier.ID = kernel.ID(id)
		if orderID.Valid {
			courier.CurrentOrder = &AssignmentView{
				OrderID:      kernel.ID(orderID.Int64),
				CustomerName: customerName.String,
				Address:      address.String,
				MedicineName: medicineName.String,
				Status:       status.String,
			}
		}
		couriers = append(couriers, courier)
	}

	if err = rows.Err(); err != nil {
		return nil, storeFailure(err)
	}

	return couriers, nil
}
