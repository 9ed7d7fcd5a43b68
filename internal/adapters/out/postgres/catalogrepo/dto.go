// Package catalogrepo persists categories and medicines.
package catalogrepo

import (
	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null;default:''"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

// MedicineDTO is a catalog row. The stock check mirrors the aggregate's
// invariant so a bypassing write fails in the store as well.
type MedicineDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"not null;default:''"`
	CategoryID  int64           `gorm:"not null;index"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_medicines_price,price >= 0"`
	Stock       int             `gorm:"not null;check:chk_medicines_stock,stock >= 0"`
}

func (MedicineDTO) TableName() string {
	return "medicines"
}

func categoryFromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID().Int64(),
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func categoryToDomain(dto CategoryDTO) *catalog.Category {
	return catalog.RestoreCategory(kernel.ID(dto.ID), dto.Name, dto.Description)
}

func medicineFromDomain(m *catalog.Medicine) MedicineDTO {
	return MedicineDTO{
		ID:          m.ID().Int64(),
		Name:        m.Name(),
		Description: m.Description(),
		CategoryID:  m.CategoryID().Int64(),
		Price:       m.Price().Decimal(),
		Stock:       m.Stock(),
	}
}

func medicineToDomain(dto MedicineDTO) (*catalog.Medicine, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreMedicine(
		kernel.ID(dto.ID),
		dto.Name,
		dto.Description,
		kernel.ID(dto.CategoryID),
		price,
		dto.Stock,
	), nil
}
