// Package feedback holds customer ratings of a completed delivery.
package feedback

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"
)

const (
	MinRating = 1
	MaxRating = 5

	maxCommentLength = 1000
)

var ErrFeedbackIsNotConstructed = errors.New("Feedback must be created via NewFeedback constructor")

// Feedback is append-only: once created it is never changed.
type Feedback struct {
	id            kernel.ID
	orderID       kernel.ID
	courierID     kernel.ID
	rating        int
	comment       string
	createdAt     time.Time
	isConstructed bool
}

// NewFeedback rates the delivery of o by courierID. The order must have been
// delivered by that courier.
func NewFeedback(o *order.Order, courierID kernel.ID, rating int, comment string, createdAt time.Time) (*Feedback, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Delivered {
		return nil, errs.NewInvalidStateError("order", o.Status().String(), "rate")
	}
	if !o.IsHeldBy(courierID) {
		return nil, errs.NewValueIsInvalidErrorWithCause("courier id",
			fmt.Errorf("order %s was not delivered by courier %s", o.ID(), courierID))
	}

	comment = strings.TrimSpace(comment)
	var ratingErr, commentErr error
	if rating < MinRating || rating > MaxRating {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	if len(comment) > maxCommentLength {
		commentErr = errs.NewValueIsOutOfRangeError("comment length", len(comment), 0, maxCommentLength)
	}
	if err := errors.Join(ratingErr, commentErr); err != nil {
		return nil, err
	}

	return &Feedback{
		orderID:       o.ID(),
		courierID:     courierID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreFeedback rehydrates a stored feedback entry.
func RestoreFeedback(id, orderID, courierID kernel.ID, rating int, comment string, createdAt time.Time) *Feedback {
	return &Feedback{
		id:            id,
		orderID:       orderID,
		courierID:     courierID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

func (f *Feedback) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFeedbackIsNotConstructed
	}
	return nil
}

func (f *Feedback) ID() kernel.ID        { return f.id }
func (f *Feedback) OrderID() kernel.ID   { return f.orderID }
func (f *Feedback) CourierID() kernel.ID { return f.courierID }
func (f *Feedback) Rating() int          { return f.rating }
func (f *Feedback) Comment() string      { return f.comment }
func (f *Feedback) CreatedAt() time.Time { return f.createdAt }

// SetID records the identifier assigned by the store on insert.
func (f *Feedback) SetID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}
