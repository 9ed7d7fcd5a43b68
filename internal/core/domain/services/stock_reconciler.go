package services

import (
	"errors"
	"fmt"
	"time"

	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/order"
)

// ErrMedicineMismatch is returned when the medicine handed to the reconciler
// is not the one the order refers to.
var ErrMedicineMismatch = errors.New("medicine does not match order line")

// StockReconciler enforces the unit accounting between medicines and orders:
// every unit taken out of a medicine's stock is held by exactly one order,
// and releasing an order returns exactly the units it holds.
//
// Example usage:
//
//	r := services.NewStockReconciler()
//	o, err := r.Place(customer, medicine, 2, "", time.Now())
//	if errors.Is(err, catalog.ErrInsufficientStock) {
//	    // not enough units on hand, nothing was changed
//	}
type StockReconciler struct{}

func NewStockReconciler() StockReconciler {
	return StockReconciler{}
}

// Place reserves quantity units of medicine and creates a pending order
// holding them. On error neither the medicine nor any order is changed.
func (StockReconciler) Place(
	customer order.Customer,
	medicine *catalog.Medicine,
	quantity int,
	prescriptionImage string,
	now time.Time,
) (*order.Order, error) {
	if err := medicine.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(customer, medicine.ID(), quantity, medicine.Price(), prescriptionImage, now)
	if err != nil {
		return nil, err
	}

	if err := medicine.Reserve(quantity); err != nil {
		return nil, err
	}

	return o, nil
}

// ChangeLine moves a pending order to target at the new quantity. current is
// the medicine the order refers to now and may be the same pointer as target.
// The units held on current are returned first and the new quantity is then
// reserved on target; if that fails the returned units are taken back so the
// aggregates are left as they were.
func (StockReconciler) ChangeLine(o *order.Order, current, target *catalog.Medicine, quantity int) error {
	if err := errors.Join(o.Validate(), current.Validate(), target.Validate()); err != nil {
		return err
	}
	if current.ID() != o.MedicineID() {
		return fmt.Errorf("%w: order %s refers to %s, got %s", ErrMedicineMismatch, o.ID(), o.MedicineID(), current.ID())
	}
	if o.Status() != order.Pending {
		// Let the aggregate report the state violation before touching stock.
		return o.ChangeLine(target.ID(), quantity, target.Price())
	}

	held := 0
	if o.StockReserved() {
		held = o.Quantity()
		if err := current.Restock(held); err != nil {
			return err
		}
	}

	if err := target.Reserve(quantity); err != nil {
		if held > 0 {
			_ = current.Reserve(held)
		}
		return err
	}

	if err := o.ChangeLine(target.ID(), quantity, target.Price()); err != nil {
		_ = target.Restock(quantity)
		if held > 0 {
			_ = current.Reserve(held)
		}
		return err
	}

	return nil
}

// Release returns the units held by o to medicine. It reports how many units
// went back; zero means the order held nothing.
func (StockReconciler) Release(o *order.Order, medicine *catalog.Medicine) (int, error) {
	if err := errors.Join(o.Validate(), medicine.Validate()); err != nil {
		return 0, err
	}
	if medicine.ID() != o.MedicineID() {
		return 0, fmt.Errorf("%w: order %s refers to %s, got %s", ErrMedicineMismatch, o.ID(), o.MedicineID(), medicine.ID())
	}

	quantity := o.ReleaseStock()
	if quantity == 0 {
		return 0, nil
	}
	if err := medicine.Restock(quantity); err != nil {
		return 0, err
	}
	return quantity, nil
}
