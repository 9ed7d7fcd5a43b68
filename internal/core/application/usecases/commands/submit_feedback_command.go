package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/feedback"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrSubmitFeedbackCommandIsNotConstructed = errors.New(
	"SubmitFeedbackCommand must be created via NewSubmitFeedbackCommand constructor",
)

// SubmitFeedbackCommand rates a delivered order.
type SubmitFeedbackCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	courierID kernel.ID
	rating    int
	comment   string

	guard guard.ConstructorGuard
}

func NewSubmitFeedbackCommand(orderID, courierID kernel.ID, rating int, comment string) (SubmitFeedbackCommand, error) {
	var ratingErr error
	if rating < feedback.MinRating || rating > feedback.MaxRating {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", rating, feedback.MinRating, feedback.MaxRating)
	}

	if err := errors.Join(orderID.Validate(), courierID.Validate(), ratingErr); err != nil {
		return SubmitFeedbackCommand{}, err
	}

	return SubmitFeedbackCommand{
		orderID:   orderID,
		courierID: courierID,
		rating:    rating,
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFeedbackCommandIsNotConstructed)
}

func (c SubmitFeedbackCommand) OrderID() kernel.ID   { return c.orderID }
func (c SubmitFeedbackCommand) CourierID() kernel.ID { return c.courierID }
func (c SubmitFeedbackCommand) Rating() int          { return c.rating }
func (c SubmitFeedbackCommand) Comment() string      { return c.comment }
