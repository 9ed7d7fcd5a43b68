package queries

import (
	"errors"

	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

const (
	DefaultRecentOrdersLimit = 10
	MaxRecentOrdersLimit     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery or NewRecentOrdersQuery constructor",
)

// ListOrdersQuery reads orders newest first. A zero limit reads them all.
//
// Example:
//
//	all := NewListOrdersQuery()
//	recent, err := NewRecentOrdersQuery(5)
//	if err != nil {
//	    return err
//	}
//	latest, err := handler.Handle(ctx, recent)
type ListOrdersQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewListOrdersQuery reads every order.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewRecentOrdersQuery reads the limit most recent orders.
func NewRecentOrdersQuery(limit int) (ListOrdersQuery, error) {
	if limit < 1 || limit > MaxRecentOrdersLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxRecentOrdersLimit)
	}
	return ListOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Limit() int { return q.limit }
