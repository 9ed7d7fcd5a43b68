// Package pgerr maps GORM and PostgreSQL errors onto the core error taxonomy.
package pgerr

import (
	"errors"

	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

// Dependency is the name reported in errs.DependencyFailureError.
const Dependency = "postgres"

// Classify turns a store error into errs.ErrObjectNotFound for a missing row
// and errs.ErrDependencyFailure for everything else.
func Classify(err error, entity string, id any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError(entity, id)
	default:
		return errs.NewDependencyFailureError(Dependency, err)
	}
}

// Wrap reports err as a store failure.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return errs.NewDependencyFailureError(Dependency, err)
}
