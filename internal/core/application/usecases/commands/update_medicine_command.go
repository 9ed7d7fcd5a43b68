package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrUpdateMedicineCommandIsNotConstructed = errors.New(
	"UpdateMedicineCommand must be created via NewUpdateMedicineCommand constructor",
)

// MedicineChanges lists catalog fields to overwrite. Nil keeps the current value.
type MedicineChanges struct {
	Name        *string
	Description *string
	CategoryID  *kernel.ID
	Price       *string
	Stock       *int
}

// UpdateMedicineCommand is an admin edit of a catalog entry. Setting Stock
// overwrites the counter after an inventory count; orders already placed
// keep their reservations.
type UpdateMedicineCommand struct { //nolint:recvcheck //using for validation
	medicineID kernel.ID
	changes    MedicineChanges
	price      *kernel.Money

	guard guard.ConstructorGuard
}

func NewUpdateMedicineCommand(medicineID kernel.ID, changes MedicineChanges) (UpdateMedicineCommand, error) {
	cmd := UpdateMedicineCommand{
		medicineID: medicineID,
		changes:    changes,
		guard:      guard.NewConstructorGuard(),
	}

	var priceErr, categoryErr, stockErr error
	if changes.Price != nil {
		p, err := kernel.MoneyFromString(*changes.Price)
		priceErr = err
		cmd.price = &p
	}
	if changes.CategoryID != nil {
		categoryErr = changes.CategoryID.Validate()
	}
	if changes.Stock != nil && *changes.Stock < 0 {
		stockErr = errs.NewValueIsOutOfRangeError("stock", *changes.Stock, 0, "unbounded")
	}

	if err := errors.Join(medicineID.Validate(), priceErr, categoryErr, stockErr); err != nil {
		return UpdateMedicineCommand{}, err
	}

	return cmd, nil
}

func (c UpdateMedicineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMedicineCommandIsNotConstructed)
}

func (c UpdateMedicineCommand) MedicineID() kernel.ID    { return c.medicineID }
func (c UpdateMedicineCommand) Changes() MedicineChanges { return c.changes }

// Price returns the parsed new price, or nil when unchanged.
func (c UpdateMedicineCommand) Price() *kernel.Money {
	return c.price
}
