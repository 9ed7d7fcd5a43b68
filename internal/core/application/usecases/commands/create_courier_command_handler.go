package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/courier"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/ports"
)

// CreateCourierCommandHandler hashes the password and stores a free courier.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	hasher     ports.PasswordHasher
}

func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory, hasher ports.PasswordHasher) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

// Handle returns the ID of the new courier.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return 0, err
	}

	c, err := courier.NewCourier(cmd.Username(), hash, cmd.Name(), cmd.Phone())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, c); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return c.ID(), nil
}
