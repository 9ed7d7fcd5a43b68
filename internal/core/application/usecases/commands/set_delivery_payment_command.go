package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrSetDeliveryPaymentCommandIsNotConstructed = errors.New(
	"SetDeliveryPaymentCommand must be created via NewSetDeliveryPaymentCommand constructor",
)

// SetDeliveryPaymentCommand is a courier confirming cash was collected on
// the doorstep.
type SetDeliveryPaymentCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.ID
	orderID   kernel.ID

	guard guard.ConstructorGuard
}

func NewSetDeliveryPaymentCommand(courierID, orderID kernel.ID) (SetDeliveryPaymentCommand, error) {
	if err := errors.Join(courierID.Validate(), orderID.Validate()); err != nil {
		return SetDeliveryPaymentCommand{}, err
	}
	return SetDeliveryPaymentCommand{
		courierID: courierID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetDeliveryPaymentCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryPaymentCommandIsNotConstructed)
}

func (c SetDeliveryPaymentCommand) CourierID() kernel.ID { return c.courierID }
func (c SetDeliveryPaymentCommand) OrderID() kernel.ID   { return c.orderID }
