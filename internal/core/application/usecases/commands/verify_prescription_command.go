package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrVerifyPrescriptionCommandIsNotConstructed = errors.New(
	"VerifyPrescriptionCommand must be created via NewVerifyPrescriptionCommand constructor",
)

// VerifyPrescriptionCommand records that staff checked the prescription.
type VerifyPrescriptionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewVerifyPrescriptionCommand(orderID kernel.ID) (VerifyPrescriptionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return VerifyPrescriptionCommand{}, err
	}
	return VerifyPrescriptionCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c VerifyPrescriptionCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPrescriptionCommandIsNotConstructed)
}

func (c VerifyPrescriptionCommand) OrderID() kernel.ID {
	return c.orderID
}
