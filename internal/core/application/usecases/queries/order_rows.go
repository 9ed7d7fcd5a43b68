package queries

import (
	"time"

	"pharmacy/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// orderViewColumns selects the columns scanned by orderRow. Queries append
// their own FROM, WHERE and ORDER BY.
const orderViewColumns = `
	SELECT
		o.id,
		o.customer_name,
		o.address,
		o.phone,
		o.medicine_id,
		COALESCE(m.name, '') AS medicine_name,
		COALESCE(m.price, 0) AS unit_price,
		o.quantity,
		o.status,
		o.payment_status,
		o.prescription_verified,
		o.prescription_image,
		o.total_price,
		o.courier_id,
		o.created_at
	FROM orders o
	LEFT JOIN medicines m ON m.id = o.medicine_id`

type orderRow struct {
	ID                   int64
	CustomerName         string
	Address              string
	Phone                string
	MedicineID           int64
	MedicineName         string
	UnitPrice            decimal.Decimal
	Quantity             int
	Status               string
	PaymentStatus        string
	PrescriptionVerified bool
	PrescriptionImage    string
	TotalPrice           decimal.Decimal
	CourierID            *int64
	CreatedAt            time.Time
}

func (r orderRow) view() OrderView {
	v := OrderView{
		ID:                   kernel.ID(r.ID),
		CustomerName:         r.CustomerName,
		Address:              r.Address,
		Phone:                r.Phone,
		MedicineID:           kernel.ID(r.MedicineID),
		MedicineName:         r.MedicineName,
		UnitPrice:            r.UnitPrice,
		Quantity:             r.Quantity,
		Status:               r.Status,
		PaymentStatus:        r.PaymentStatus,
		PrescriptionVerified: r.PrescriptionVerified,
		PrescriptionImage:    r.PrescriptionImage,
		TotalPrice:           r.TotalPrice,
		CreatedAt:            r.CreatedAt.UTC(),
	}
	if r.CourierID != nil {
		id := kernel.ID(*r.CourierID)
		v.CourierID = &id
	}
	return v
}

func orderViews(rows []orderRow) []OrderView {
	views := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}
	return views
}
