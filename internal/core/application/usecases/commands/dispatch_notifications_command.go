package commands

import (
	"errors"

	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

const maxDispatchBatch = 500

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

// DispatchNotificationsCommand sends one batch from the notification outbox.
type DispatchNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewDispatchNotificationsCommand(batchSize int) (DispatchNotificationsCommand, error) {
	if batchSize <= 0 || batchSize > maxDispatchBatch {
		return DispatchNotificationsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, maxDispatchBatch)
	}
	return DispatchNotificationsCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

func (c DispatchNotificationsCommand) BatchSize() int {
	return c.batchSize
}
