package pgerr_test

import (
	"errors"
	"testing"

	"pharmacy/internal/adapters/out/postgres/pgerr"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, pgerr.Classify(nil, "order", 1))
	assert.ErrorIs(t, pgerr.Classify(gorm.ErrRecordNotFound, "order", 1), errs.ErrObjectNotFound)

	cause := errors.New("connection reset by peer")
	err := pgerr.Classify(cause, "order", 1)
	assert.ErrorIs(t, err, errs.ErrDependencyFailure)
	assert.ErrorIs(t, err, cause)
}

func TestWrap(t *testing.T) {
	assert.NoError(t, pgerr.Wrap(nil))
	assert.ErrorIs(t, pgerr.Wrap(errors.New("boom")), errs.ErrDependencyFailure)
}
