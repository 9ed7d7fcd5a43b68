package order

import (
	"errors"
	"strings"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

var (
	ErrCustomerNameIsRequired    = errs.NewValueIsRequiredError("customer name")
	ErrCustomerAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Customer holds the contact details of whoever placed the order. Orders are
// placed anonymously, so the phone number is the only stable key for
// "my orders" lookups from the bot.
type Customer struct {
	name    string
	address string
	phone   kernel.Phone
}

// NewCustomer validates and normalizes contact details.
func NewCustomer(name, address, phone string) (Customer, error) {
	var c Customer

	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	p, phoneErr := kernel.NewPhone(phone)

	var nameErr, addressErr error
	if name == "" {
		nameErr = ErrCustomerNameIsRequired
	}
	if address == "" {
		addressErr = ErrCustomerAddressIsRequired
	}
	if err := errors.Join(nameErr, addressErr, phoneErr); err != nil {
		return c, err
	}

	c.name, c.address, c.phone = name, address, p
	return c, nil
}

// RestoreCustomer rehydrates contact details read from the store.
func RestoreCustomer(name, address string, phone kernel.Phone) Customer {
	return Customer{name: name, address: address, phone: phone}
}

func (c Customer) Name() string        { return c.name }
func (c Customer) Address() string     { return c.address }
func (c Customer) Phone() kernel.Phone { return c.phone }

// With returns a copy where each non-nil argument replaces the current value.
func (c Customer) With(name, address, phone *string) (Customer, error) {
	n, a, p := c.name, c.address, c.phone.String()
	if name != nil {
		n = *name
	}
	if address != nil {
		a = *address
	}
	if phone != nil {
		p = *phone
	}
	return NewCustomer(n, a, p)
}
