package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrOrdersByPhoneQueryIsNotConstructed = errors.New(
	"OrdersByPhoneQuery must be created via NewOrdersByPhoneQuery constructor",
)

// OrdersByPhoneQuery lists the orders a chat user placed from one number.
type OrdersByPhoneQuery struct {
	phone kernel.Phone
	guard guard.ConstructorGuard
}

func NewOrdersByPhoneQuery(phone string) (OrdersByPhoneQuery, error) {
	p, err := kernel.NewPhone(phone)
	if err != nil {
		return OrdersByPhoneQuery{}, err
	}
	return OrdersByPhoneQuery{phone: p, guard: guard.NewConstructorGuard()}, nil
}

func (q OrdersByPhoneQuery) Validate() error {
	return q.guard.Validate(ErrOrdersByPhoneQueryIsNotConstructed)
}

func (q OrdersByPhoneQuery) Phone() kernel.Phone { return q.phone }
