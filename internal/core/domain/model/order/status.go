package order

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	pending ──┬──> verified ───┐
//	          ├──> dispatched ─┼──> delivered
//	          └────────────────┴──> cancelled
//
// The graph describes the usual flow. Admin status writes are not checked
// against it; the delivery flow enforces its own preconditions.
type Status string

const (
	Pending    Status = "pending"
	Verified   Status = "verified"
	Dispatched Status = "dispatched"
	Delivered  Status = "delivered"
	Cancelled  Status = "cancelled"
)

// ParseStatus converts external input into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate reports whether s is one of the known statuses.
func (s Status) Validate() error {
	switch s {
	case Pending, Verified, Dispatched, Delivered, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// IsTerminal reports whether no further delivery work can happen.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

func (s Status) String() string {
	return string(s)
}

// PaymentStatus tracks whether the customer has paid for the order.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// ParsePaymentStatus accepts only "pending" and "paid".
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	ps := PaymentStatus(s)
	if err := ps.Validate(); err != nil {
		return "", err
	}
	return ps, nil
}

func (p PaymentStatus) Validate() error {
	if p != PaymentPending && p != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid", fmt.Errorf("%q is not one of pending, paid", string(p)))
	}
	return nil
}

func (p PaymentStatus) String() string {
	return string(p)
}
