package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrModifyOrderCommandIsNotConstructed = errors.New(
	"ModifyOrderCommand must be created via NewModifyOrderCommand constructor",
)

// OrderChanges lists the fields a customer wants to change. Nil means
// "keep the current value".
type OrderChanges struct {
	CustomerName *string
	Address      *string
	Phone        *string
	MedicineID   *kernel.ID
	Quantity     *int
}

// ModifyOrderCommand edits a pending order.
type ModifyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	changes OrderChanges

	guard guard.ConstructorGuard
}

// NewModifyOrderCommand checks the order reference and the shape of the
// line changes. Contact fields are validated against the current order by
// the handler.
func NewModifyOrderCommand(orderID kernel.ID, changes OrderChanges) (ModifyOrderCommand, error) {
	var medicineErr, quantityErr error
	if changes.MedicineID != nil {
		medicineErr = changes.MedicineID.Validate()
	}
	if changes.Quantity != nil && *changes.Quantity <= 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", *changes.Quantity, 1, "unbounded")
	}

	if err := errors.Join(orderID.Validate(), medicineErr, quantityErr); err != nil {
		return ModifyOrderCommand{}, err
	}

	return ModifyOrderCommand{
		orderID: orderID,
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ModifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrModifyOrderCommandIsNotConstructed)
}

func (c ModifyOrderCommand) OrderID() kernel.ID    { return c.orderID }
func (c ModifyOrderCommand) Changes() OrderChanges { return c.changes }
