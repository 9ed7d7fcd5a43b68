package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand hands an order to a courier.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.ID
	orderID   kernel.ID

	guard guard.ConstructorGuard
}

func NewAssignOrderCommand(courierID, orderID kernel.ID) (AssignOrderCommand, error) {
	if err := errors.Join(courierID.Validate(), orderID.Validate()); err != nil {
		return AssignOrderCommand{}, err
	}
	return AssignOrderCommand{
		courierID: courierID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) CourierID() kernel.ID { return c.courierID }
func (c AssignOrderCommand) OrderID() kernel.ID   { return c.orderID }
