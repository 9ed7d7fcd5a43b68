package queries

import (
	"errors"

	"pharmacy/internal/pkg/guard"
)

var ErrListFeedbacksQueryIsNotConstructed = errors.New(
	"ListFeedbacksQuery must be created via NewListFeedbacksQuery constructor",
)

type ListFeedbacksQuery struct {
	guard guard.ConstructorGuard
}

func NewListFeedbacksQuery() ListFeedbacksQuery {
	return ListFeedbacksQuery{guard: guard.NewConstructorGuard()}
}

func (q ListFeedbacksQuery) Validate() error {
	return q.guard.Validate(ErrListFeedbacksQueryIsNotConstructed)
}
