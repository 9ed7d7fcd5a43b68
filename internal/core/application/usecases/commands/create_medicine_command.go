package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrCreateMedicineCommandIsNotConstructed = errors.New(
	"CreateMedicineCommand must be created via NewCreateMedicineCommand constructor",
)

// CreateMedicineCommand adds a medicine to an existing category.
type CreateMedicineCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	categoryID  kernel.ID
	price       kernel.Money
	stock       int

	guard guard.ConstructorGuard
}

// NewCreateMedicineCommand parses price as a decimal string, e.g. "12.50".
func NewCreateMedicineCommand(name, description string, categoryID kernel.ID, price string, stock int) (CreateMedicineCommand, error) {
	p, priceErr := kernel.MoneyFromString(price)

	var nameErr, stockErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if stock < 0 {
		stockErr = errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}

	if err := errors.Join(nameErr, categoryID.Validate(), priceErr, stockErr); err != nil {
		return CreateMedicineCommand{}, err
	}

	return CreateMedicineCommand{
		name:        name,
		description: description,
		categoryID:  categoryID,
		price:       p,
		stock:       stock,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMedicineCommand) Validate() error {
	return c.guard.Validate(ErrCreateMedicineCommandIsNotConstructed)
}

func (c CreateMedicineCommand) Name() string          { return c.name }
func (c CreateMedicineCommand) Description() string   { return c.description }
func (c CreateMedicineCommand) CategoryID() kernel.ID { return c.categoryID }
func (c CreateMedicineCommand) Price() kernel.Money   { return c.price }
func (c CreateMedicineCommand) Stock() int            { return c.stock }
