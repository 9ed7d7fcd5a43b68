package catalog

import (
	"errors"
	"fmt"
	"strings"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrMedicineNameIsRequired   = errs.NewValueIsRequiredError("medicine name")
	ErrMedicineIsNotConstructed = errors.New("Medicine must be created via NewMedicine constructor")

	// ErrInsufficientStock classifies reservations that ask for more units
	// than the medicine has on hand. It also matches errs.ErrInvalidState.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError is returned by Medicine.Reserve.
type InsufficientStockError struct {
	MedicineID kernel.ID
	Requested  int
	Available  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: medicine %s has %d units, %d requested",
		ErrInsufficientStock, e.MedicineID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() []error {
	return []error{ErrInsufficientStock, errs.ErrInvalidState}
}

// Medicine is a sellable item with a unit price and a stock counter.
//
// Invariants:
//   - name is not empty
//   - price is a constructed, non-negative Money
//   - stock >= 0 after every mutation; a mutation that would break this is
//     rejected and leaves the medicine untouched
type Medicine struct {
	id          kernel.ID
	name        string
	description string
	categoryID  kernel.ID
	price       kernel.Money
	stock       int
	guard       guard.ConstructorGuard
}

// NewMedicine validates all attributes of a medicine that is about to be added
// to the catalog.
func NewMedicine(name, description string, categoryID kernel.ID, price kernel.Money, stock int) (*Medicine, error) {
	m := &Medicine{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.Rename(name),
		m.MoveToCategory(categoryID),
		m.SetPrice(price),
		m.SetStock(stock),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMedicine rehydrates a medicine from the store without re-running
// validation; the table's CHECK constraints keep stored rows consistent.
func RestoreMedicine(id kernel.ID, name, description string, categoryID kernel.ID, price kernel.Money, stock int) *Medicine {
	return &Medicine{
		id:          id,
		name:        name,
		description: description,
		categoryID:  categoryID,
		price:       price,
		stock:       stock,
		guard:       guard.NewConstructorGuard(),
	}
}

func (m *Medicine) Validate() error {
	if m == nil {
		return ErrMedicineIsNotConstructed
	}
	return m.guard.Validate(ErrMedicineIsNotConstructed)
}

func (m *Medicine) ID() kernel.ID         { return m.id }
func (m *Medicine) Name() string          { return m.name }
func (m *Medicine) Description() string   { return m.description }
func (m *Medicine) CategoryID() kernel.ID { return m.categoryID }
func (m *Medicine) Price() kernel.Money   { return m.price }
func (m *Medicine) Stock() int            { return m.stock }

// IsAvailable reports whether at least one unit is on hand.
func (m *Medicine) IsAvailable() bool {
	return m.stock > 0
}

// SetID records the identifier assigned by the store on insert.
func (m *Medicine) SetID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

// Reserve takes quantity units out of stock for an order.
func (m *Medicine) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > m.stock {
		return &InsufficientStockError{MedicineID: m.id, Requested: quantity, Available: m.stock}
	}
	m.stock -= quantity
	return nil
}

// Restock returns quantity units to stock, e.g. when an order holding them is
// deleted, or adds a new delivery from the supplier.
func (m *Medicine) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	m.stock += quantity
	return nil
}

// Rename changes the display name.
func (m *Medicine) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMedicineNameIsRequired
	}
	m.name = name
	return nil
}

// Describe replaces the free-form description.
func (m *Medicine) Describe(description string) {
	m.description = strings.TrimSpace(description)
}

// MoveToCategory re-files the medicine under another category.
func (m *Medicine) MoveToCategory(categoryID kernel.ID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	m.categoryID = categoryID
	return nil
}

// SetPrice changes the unit price. Orders keep the total frozen at the time
// they were placed or last modified.
func (m *Medicine) SetPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

// SetStock overwrites the stock counter after a manual inventory count.
func (m *Medicine) SetStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}
	m.stock = stock
	return nil
}
