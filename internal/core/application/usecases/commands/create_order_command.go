package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a customer's request to buy quantity units of one
// medicine, optionally with an uploaded prescription.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Asha", "12 MG Road", "+91 98450 12345", 4, 2, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer          order.Customer
	medicineID        kernel.ID
	quantity          int
	prescriptionImage string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the customer details, the medicine
// reference and that quantity is positive.
func NewCreateOrderCommand(
	customerName, address, phone string,
	medicineID kernel.ID,
	quantity int,
	prescriptionImage string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		prescriptionImage: prescriptionImage,
		guard:             guard.NewConstructorGuard(),
	}

	customer, customerErr := order.NewCustomer(customerName, address, phone)
	cmd.customer = customer

	if err := errors.Join(
		customerErr,
		cmd.setMedicineID(medicineID),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Customer() order.Customer  { return c.customer }
func (c CreateOrderCommand) MedicineID() kernel.ID     { return c.medicineID }
func (c CreateOrderCommand) Quantity() int             { return c.quantity }
func (c CreateOrderCommand) PrescriptionImage() string { return c.prescriptionImage }

func (c *CreateOrderCommand) setMedicineID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.medicineID = id
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	c.quantity = quantity
	return nil
}
