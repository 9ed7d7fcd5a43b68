package commands

import (
	"errors"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is a courier's progress report on the order
// they carry. Only dispatched and delivered are accepted.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.ID
	orderID   kernel.ID
	status    order.Status

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(courierID, orderID kernel.ID, status string) (UpdateDeliveryStatusCommand, error) {
	var statusErr error
	s := order.Status(status)
	if s != order.Dispatched && s != order.Delivered {
		statusErr = errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not one of dispatched, delivered", status))
	}

	if err := errors.Join(courierID.Validate(), orderID.Validate(), statusErr); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		courierID: courierID,
		orderID:   orderID,
		status:    s,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) CourierID() kernel.ID { return c.courierID }
func (c UpdateDeliveryStatusCommand) OrderID() kernel.ID   { return c.orderID }
func (c UpdateDeliveryStatusCommand) Status() order.Status { return c.status }
