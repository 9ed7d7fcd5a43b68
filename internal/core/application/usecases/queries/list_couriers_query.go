package queries

import (
	"errors"

	"pharmacy/internal/pkg/guard"
)

var ErrListCouriersQueryIsNotConstructed = errors.New(
	"ListCouriersQuery must be created via NewListCouriersQuery constructor",
)

// ListCouriersQuery retrieves every courier with the order it currently
// carries, for the admin assignment screen.
//
// Example:
//
//	query := NewListCouriersQuery()
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
//
//	for _, c := range couriers {
//	    if c.CurrentOrder == nil {
//	        fmt.Printf("%s is free\n", c.Name)
//	    }
//	}
type ListCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewListCouriersQuery creates a parameterless query over all couriers.
func NewListCouriersQuery() ListCouriersQuery {
	return ListCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}
