// Package orderrepo maps the order aggregate to the orders table.
package orderrepo

import (
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is an orders row. TotalPrice is frozen when the line is set and
// StockReserved tells whether the order still holds units of its medicine.
type OrderDTO struct {
	ID                   int64           `gorm:"primaryKey;autoIncrement"`
	CustomerName         string          `gorm:"not null"`
	Address              string          `gorm:"not null"`
	Phone                string          `gorm:"not null;index"`
	MedicineID           int64           `gorm:"not null;index"`
	Quantity             int             `gorm:"not null;check:chk_orders_quantity,quantity > 0"`
	Status               string          `gorm:"not null;index"`
	CreatedAt            time.Time       `gorm:"not null;index"`
	PrescriptionImage    string          `gorm:"not null;default:''"`
	TotalPrice           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentStatus        string          `gorm:"not null;default:pending"`
	PrescriptionVerified bool            `gorm:"not null;default:false"`
	CourierID            *int64          `gorm:"index"`
	StockReserved        bool            `gorm:"not null;default:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var courierID *int64
	if id := o.Courier(); id != nil {
		raw := id.Int64()
		courierID = &raw
	}

	customer := o.Customer()
	return OrderDTO{
		ID:                   o.ID().Int64(),
		CustomerName:         customer.Name(),
		Address:              customer.Address(),
		Phone:                customer.Phone().String(),
		MedicineID:           o.MedicineID().Int64(),
		Quantity:             o.Quantity(),
		Status:               o.Status().String(),
		CreatedAt:            o.CreatedAt(),
		PrescriptionImage:    o.PrescriptionImage(),
		TotalPrice:           o.Total().Decimal(),
		PaymentStatus:        o.PaymentStatus().String(),
		PrescriptionVerified: o.PrescriptionVerified(),
		CourierID:            courierID,
		StockReserved:        o.StockReserved(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	payment, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.ID
	if dto.CourierID != nil {
		id := kernel.ID(*dto.CourierID)
		courierID = &id
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		order.RestoreCustomer(dto.CustomerName, dto.Address, kernel.Phone(dto.Phone)),
		kernel.ID(dto.MedicineID),
		dto.Quantity,
		status,
		dto.CreatedAt,
		dto.PrescriptionImage,
		total,
		payment,
		dto.PrescriptionVerified,
		courierID,
		dto.StockReserved,
	), nil
}
