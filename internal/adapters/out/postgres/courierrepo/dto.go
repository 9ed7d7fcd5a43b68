// Package courierrepo maps the courier aggregate to the couriers table.
package courierrepo

import (
	"pharmacy/internal/core/domain/model/courier"
	"pharmacy/internal/core/domain/model/kernel"
)

// CourierDTO is a couriers row. The unique index on current_order_id keeps
// an order from being held by two couriers at once.
type CourierDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"not null;uniqueIndex"`
	PasswordHash   string `gorm:"not null"`
	Name           string `gorm:"not null"`
	Phone          string `gorm:"not null;default:''"`
	CurrentOrderID *int64 `gorm:"uniqueIndex"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	var current *int64
	if id := c.CurrentOrderID(); id != nil {
		raw := id.Int64()
		current = &raw
	}

	return CourierDTO{
		ID:             c.ID().Int64(),
		Username:       c.Username(),
		PasswordHash:   c.PasswordHash(),
		Name:           c.Name(),
		Phone:          c.Phone().String(),
		CurrentOrderID: current,
	}
}

func toDomain(dto CourierDTO) *courier.Courier {
	var current *kernel.ID
	if dto.CurrentOrderID != nil {
		id := kernel.ID(*dto.CurrentOrderID)
		current = &id
	}

	return courier.RestoreCourier(
		kernel.ID(dto.ID),
		dto.Username,
		dto.PasswordHash,
		dto.Name,
		kernel.Phone(dto.Phone),
		current,
	)
}
