package services

import (
	"errors"

	"pharmacy/internal/core/domain/model/courier"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"
)

// DeliveryCoordinator keeps the courier's current order and the order's
// courier consistent. Both sides are checked before either is changed, so a
// rejected call leaves the aggregates untouched.
type DeliveryCoordinator struct{}

func NewDeliveryCoordinator() DeliveryCoordinator {
	return DeliveryCoordinator{}
}

// Assign binds o to c and marks it dispatched.
func (DeliveryCoordinator) Assign(c *courier.Courier, o *order.Order) error {
	if err := errors.Join(c.Validate(), o.Validate()); err != nil {
		return err
	}
	if !c.IsFree() {
		return errs.NewInvalidStateError("courier", "busy with order "+c.CurrentOrderID().String(), "assign order to")
	}
	if o.Status().IsTerminal() {
		return errs.NewInvalidStateError("order", o.Status().String(), "assign")
	}

	if err := o.Dispatch(c.ID()); err != nil {
		return err
	}
	return c.Assign(o.ID())
}

// Complete delivers o and frees c. It fails with errs.ErrPaymentRequired
// while o is unpaid. c may be nil when the courier record no longer exists.
func (DeliveryCoordinator) Complete(c *courier.Courier, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.Deliver(); err != nil {
		return err
	}
	if c != nil {
		c.Release(o.ID())
	}
	return nil
}
