package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrGetMedicineQueryIsNotConstructed = errors.New(
	"GetMedicineQuery must be created via NewGetMedicineQuery constructor",
)

type GetMedicineQuery struct {
	medicineID kernel.ID
	guard      guard.ConstructorGuard
}

func NewGetMedicineQuery(medicineID kernel.ID) (GetMedicineQuery, error) {
	if err := medicineID.Validate(); err != nil {
		return GetMedicineQuery{}, err
	}
	return GetMedicineQuery{medicineID: medicineID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMedicineQuery) Validate() error {
	return q.guard.Validate(ErrGetMedicineQueryIsNotConstructed)
}

func (q GetMedicineQuery) MedicineID() kernel.ID { return q.medicineID }
