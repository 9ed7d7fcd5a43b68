package queries

import (
	"errors"

	"pharmacy/internal/pkg/guard"
)

var ErrDashboardStatsQueryIsNotConstructed = errors.New(
	"DashboardStatsQuery must be created via NewDashboardStatsQuery constructor",
)

type DashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewDashboardStatsQuery() DashboardStatsQuery {
	return DashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q DashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrDashboardStatsQueryIsNotConstructed)
}
