package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/guard"
)

var ErrSetPaymentStatusCommandIsNotConstructed = errors.New(
	"SetPaymentStatusCommand must be created via NewSetPaymentStatusCommand constructor",
)

// SetPaymentStatusCommand records payment for an order. Only "pending" and
// "paid" are accepted.
type SetPaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	status  order.PaymentStatus

	guard guard.ConstructorGuard
}

func NewSetPaymentStatusCommand(orderID kernel.ID, status string) (SetPaymentStatusCommand, error) {
	ps, statusErr := order.ParsePaymentStatus(status)
	if err := errors.Join(orderID.Validate(), statusErr); err != nil {
		return SetPaymentStatusCommand{}, err
	}
	return SetPaymentStatusCommand{
		orderID: orderID,
		status:  ps,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetPaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetPaymentStatusCommandIsNotConstructed)
}

func (c SetPaymentStatusCommand) OrderID() kernel.ID          { return c.orderID }
func (c SetPaymentStatusCommand) Status() order.PaymentStatus { return c.status }
