package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrListMedicinesQueryIsNotConstructed = errors.New(
	"ListMedicinesQuery must be created via NewListMedicinesQuery constructor",
)

// ListMedicinesQuery returns the catalog, optionally narrowed to one
// category. A nil category returns every medicine.
//
// Example:
//
//	painRelief := kernel.ID(3)
//	query, err := NewListMedicinesQuery(&painRelief)
//	if err != nil {
//	    return err
//	}
//	medicines, err := handler.Handle(ctx, query)
type ListMedicinesQuery struct {
	categoryID *kernel.ID
	guard      guard.ConstructorGuard
}

// NewListMedicinesQuery validates the category filter when one is given.
func NewListMedicinesQuery(categoryID *kernel.ID) (ListMedicinesQuery, error) {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return ListMedicinesQuery{}, err
		}
		id := *categoryID
		categoryID = &id
	}
	return ListMedicinesQuery{categoryID: categoryID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMedicinesQuery) Validate() error {
	return q.guard.Validate(ErrListMedicinesQueryIsNotConstructed)
}

func (q ListMedicinesQuery) CategoryID() *kernel.ID { return q.categoryID }
