package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrCheckAvailabilityQueryIsNotConstructed = errors.New(
	"CheckAvailabilityQuery must be created via NewCheckAvailabilityQuery constructor",
)

// CheckAvailabilityQuery asks whether a medicine has at least one unit in
// stock. An unknown medicine is reported as unavailable, not as missing.
type CheckAvailabilityQuery struct {
	medicineID kernel.ID
	guard      guard.ConstructorGuard
}

func NewCheckAvailabilityQuery(medicineID kernel.ID) (CheckAvailabilityQuery, error) {
	if err := medicineID.Validate(); err != nil {
		return CheckAvailabilityQuery{}, err
	}
	return CheckAvailabilityQuery{medicineID: medicineID, guard: guard.NewConstructorGuard()}, nil
}

func (q CheckAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckAvailabilityQueryIsNotConstructed)
}

func (q CheckAvailabilityQuery) MedicineID() kernel.ID { return q.medicineID }
