package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrGetCurrentOrderQueryIsNotConstructed = errors.New(
	"GetCurrentOrderQuery must be created via NewGetCurrentOrderQuery constructor",
)

// GetCurrentOrderQuery reads the order a courier is carrying.
type GetCurrentOrderQuery struct {
	courierID kernel.ID
	guard     guard.ConstructorGuard
}

func NewGetCurrentOrderQuery(courierID kernel.ID) (GetCurrentOrderQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCurrentOrderQuery{}, err
	}
	return GetCurrentOrderQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCurrentOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentOrderQueryIsNotConstructed)
}

func (q GetCurrentOrderQuery) CourierID() kernel.ID { return q.courierID }
