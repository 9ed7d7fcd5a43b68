// Package order provides the Order aggregate of the pharmacy: a customer's
// request for a quantity of one medicine, its frozen total price and its
// progress from placement to delivery.
//
// The package includes:
//   - Order: the aggregate root holding customer contact, line, status and payment
//   - Customer: a value object with the contact details used for delivery
//   - Status and PaymentStatus: the closed sets of lifecycle and payment states
//
// Key business rules:
//   - Quantity is positive and total equals unit price times quantity at the
//     time the line was last set
//   - Contact details and the line can only change while the order is pending
//   - Delivered and cancelled are terminal; delivery requires payment
//   - An order that holds stock remembers it, so releasing it returns exactly
//     the reserved quantity to the medicine
package order
