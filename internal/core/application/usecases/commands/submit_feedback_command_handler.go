package commands

import (
	"context"
	"time"

	"pharmacy/internal/core/domain/model/feedback"
	"pharmacy/internal/core/domain/model/kernel"
)

// SubmitFeedbackCommandHandler appends a rating for an order delivered by
// the given courier.
type SubmitFeedbackCommandHandler struct {
	uowFactory FeedbackUoWFactory
	now        func() time.Time
}

func NewSubmitFeedbackCommandHandler(uowFactory FeedbackUoWFactory) SubmitFeedbackCommandHandler {
	return SubmitFeedbackCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle returns the ID of the stored feedback.
func (h *SubmitFeedbackCommandHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	f, err := feedback.NewFeedback(o, cmd.CourierID(), cmd.Rating(), cmd.Comment(), h.now())
	if err != nil {
		return 0, err
	}

	if err = uow.FeedbackRepository().Add(ctx, f); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return f.ID(), nil
}
