package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not built through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a single-line pharmacy order.
//
// Order follows these invariants:
//   - quantity is positive
//   - total equals the unit price times quantity captured by the last
//     NewOrder, ChangeLine or Reprice call and is not recomputed on read
//   - customer details and the line change only while the order is pending
//   - delivered orders have been paid for
//   - stockReserved is true exactly while the order holds units taken from
//     its medicine's stock
type Order struct {
	id                   kernel.ID
	customer             Customer
	medicineID           kernel.ID
	quantity             int
	status               Status
	createdAt            time.Time
	prescriptionImage    string
	total                kernel.Money
	paymentStatus        PaymentStatus
	prescriptionVerified bool
	courierID            *kernel.ID
	stockReserved        bool
	isConstructed        bool
}

// NewOrder creates a pending, unpaid order for quantity units of a medicine
// sold at unitPrice. The caller is expected to have reserved the units, so
// the order starts out holding stock.
//
// Example:
//
//	customer, _ := order.NewCustomer("Asha", "12 MG Road", "+91 98450 12345")
//	if err := medicine.Reserve(2); err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(customer, medicine.ID(), 2, medicine.Price(), "", time.Now())
func NewOrder(
	customer Customer,
	medicineID kernel.ID,
	quantity int,
	unitPrice kernel.Money,
	prescriptionImage string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		customer:          customer,
		status:            Pending,
		paymentStatus:     PaymentPending,
		prescriptionImage: strings.TrimSpace(prescriptionImage),
		createdAt:         createdAt.UTC(),
		stockReserved:     true,
		isConstructed:     true,
	}

	var customerErr error
	if customer.Name() == "" {
		customerErr = ErrCustomerNameIsRequired
	}

	if err := errors.Join(
		customerErr,
		o.setLine(medicineID, quantity, unitPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an order from persistent storage.
func RestoreOrder(
	id kernel.ID,
	customer Customer,
	medicineID kernel.ID,
	quantity int,
	status Status,
	createdAt time.Time,
	prescriptionImage string,
	total kernel.Money,
	paymentStatus PaymentStatus,
	prescriptionVerified bool,
	courierID *kernel.ID,
	stockReserved bool,
) *Order {
	return &Order{
		id:                   id,
		customer:             customer,
		medicineID:           medicineID,
		quantity:             quantity,
		status:               status,
		createdAt:            createdAt,
		prescriptionImage:    prescriptionImage,
		total:                total,
		paymentStatus:        paymentStatus,
		prescriptionVerified: prescriptionVerified,
		courierID:            courierID,
		stockReserved:        stockReserved,
		isConstructed:        true,
	}
}

// Validate ensures the Order was built through one of its constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID                { return o.id }
func (o *Order) Customer() Customer           { return o.customer }
func (o *Order) MedicineID() kernel.ID        { return o.medicineID }
func (o *Order) Quantity() int                { return o.quantity }
func (o *Order) Status() Status               { return o.status }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) PrescriptionImage() string    { return o.prescriptionImage }
func (o *Order) Total() kernel.Money          { return o.total }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) PrescriptionVerified() bool   { return o.prescriptionVerified }
func (o *Order) StockReserved() bool          { return o.stockReserved }

// Courier returns the courier the order was dispatched with, or nil.
func (o *Order) Courier() *kernel.ID {
	return o.courierID
}

// IsHeldBy reports whether courierID is the courier the order was dispatched with.
func (o *Order) IsHeldBy(courierID kernel.ID) bool {
	return o.courierID != nil && *o.courierID == courierID
}

// SetID records the identifier assigned by the store on insert.
func (o *Order) SetID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// ChangeCustomer replaces the contact details of a pending order.
func (o *Order) ChangeCustomer(customer Customer) error {
	if err := o.ensurePending("modify"); err != nil {
		return err
	}
	if customer.Name() == "" {
		return ErrCustomerNameIsRequired
	}
	o.customer = customer
	return nil
}

// ChangeLine points a pending order at another medicine or quantity and
// refreshes the total. Stock bookkeeping is the caller's job; after a
// successful call the order holds the new quantity.
func (o *Order) ChangeLine(medicineID kernel.ID, quantity int, unitPrice kernel.Money) error {
	if err := o.ensurePending("modify"); err != nil {
		return err
	}
	if err := o.setLine(medicineID, quantity, unitPrice); err != nil {
		return err
	}
	o.stockReserved = true
	return nil
}

// Reprice recomputes the total of a pending order from the current unit price.
func (o *Order) Reprice(unitPrice kernel.Money) error {
	if err := o.ensurePending("modify"); err != nil {
		return err
	}
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	o.total = unitPrice.Times(o.quantity)
	return nil
}

// SetStatus writes any valid status. No transition check is made; use the
// dedicated methods when the caller's flow has preconditions.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// Cancel moves a non-terminal order to cancelled.
func (o *Order) Cancel() error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("order", o.status.String(), "cancel")
	}
	o.status = Cancelled
	return nil
}

// EnsureDeletable rejects deletion of delivered orders; their units have
// left the pharmacy and cannot be returned to stock.
func (o *Order) EnsureDeletable() error {
	if o.status == Delivered {
		return errs.NewInvalidStateError("order", o.status.String(), "delete")
	}
	return nil
}

// ReleaseStock reports how many units the order holds and marks them
// released. It returns 0 when nothing is held.
func (o *Order) ReleaseStock() int {
	if !o.stockReserved {
		return 0
	}
	o.stockReserved = false
	return o.quantity
}

// VerifyPrescription marks the attached prescription as checked by staff.
func (o *Order) VerifyPrescription() {
	o.prescriptionVerified = true
}

// SetPaymentStatus records whether the order has been paid.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

// Dispatch hands a non-terminal order to a courier.
func (o *Order) Dispatch(courierID kernel.ID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("order", o.status.String(), "dispatch")
	}
	o.status = Dispatched
	o.courierID = &courierID
	return nil
}

// MarkDispatched is the courier's "picked up" update. The order keeps its courier.
func (o *Order) MarkDispatched() error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("order", o.status.String(), "dispatch")
	}
	o.status = Dispatched
	return nil
}

// Deliver completes the order. Unpaid orders are rejected with an error
// matching errs.ErrPaymentRequired.
func (o *Order) Deliver() error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("order", o.status.String(), "deliver")
	}
	if o.paymentStatus != PaymentPaid {
		return fmt.Errorf("deliver order %s: %w", o.id, errs.ErrPaymentRequired)
	}
	o.status = Delivered
	return nil
}

func (o *Order) ensurePending(action string) error {
	if o.status != Pending {
		return errs.NewInvalidStateError("order", o.status.String(), action)
	}
	return nil
}

func (o *Order) setLine(medicineID kernel.ID, quantity int, unitPrice kernel.Money) error {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(medicineID.Validate(), quantityErr, unitPrice.Validate()); err != nil {
		return err
	}
	o.medicineID = medicineID
	o.quantity = quantity
	o.total = unitPrice.Times(quantity)
	return nil
}
