package commands

import (
	"context"
	"time"

	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/ports"

	"github.com/rs/zerolog"
)

// DispatchPolicy bounds outbox delivery.
type DispatchPolicy struct {
	// SendTimeout bounds a single provider call.
	SendTimeout time.Duration
	// MaxAttempts parks a notification as failed after this many failures.
	MaxAttempts int
	// Lease keeps claimed rows away from other dispatchers while sending.
	Lease time.Duration
}

// DispatchResult counts what happened to a batch.
type DispatchResult struct {
	Claimed int
	Sent    int
	Failed  int
}

// DispatchNotificationsCommandHandler drains the outbox. Rows are claimed in
// a short transaction, sent with no transaction open, and each outcome is
// written back in its own transaction. A send failure never fails the batch;
// it is logged and recorded on the notification for the next run.
type DispatchNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	sender     ports.MessageSender
	policy     DispatchPolicy
	logger     zerolog.Logger
	now        func() time.Time
}

func NewDispatchNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	sender ports.MessageSender,
	policy DispatchPolicy,
	logger zerolog.Logger,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		sender:     sender,
		policy:     policy,
		logger:     logger.With().Str("component", "notification-dispatcher").Logger(),
		now:        time.Now,
	}
}

func (h *DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) (DispatchResult, error) {
	var result DispatchResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	claimed, err := h.claim(ctx, cmd.BatchSize())
	if err != nil {
		return result, err
	}
	result.Claimed = len(claimed)

	for _, n := range claimed {
		if ctx.Err() != nil {
			// Unsent rows keep their lease and are picked up once it expires.
			break
		}

		if sendErr := h.send(ctx, n); sendErr != nil {
			n.MarkAttemptFailed(sendErr, h.now(), h.policy.MaxAttempts)
			result.Failed++
			h.logger.Warn().
				Err(sendErr).
				Stringer("notification_id", n.ID()).
				Int("attempts", n.Attempts()).
				Bool("parked", !n.IsPending()).
				Msg("notification delivery failed")
		} else {
			n.MarkSent(h.now())
			result.Sent++
		}

		if err = h.save(ctx, n); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (h *DispatchNotificationsCommandHandler) claim(ctx context.Context, limit int) ([]*notification.Notification, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	claimed, err := uow.NotificationRepository().ClaimPending(ctx, limit, h.policy.Lease)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return claimed, nil
}

func (h *DispatchNotificationsCommandHandler) send(ctx context.Context, n *notification.Notification) error {
	sendCtx, cancel := context.WithTimeout(ctx, h.policy.SendTimeout)
	defer cancel()
	return h.sender.Send(sendCtx, n.Recipient(), n.Message())
}

func (h *DispatchNotificationsCommandHandler) save(ctx context.Context, n *notification.Notification) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().Update(ctx, n); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
