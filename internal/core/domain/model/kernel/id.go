package kernel

import (
	"fmt"
	"math"
	"strconv"

	"pharmacy/internal/pkg/errs"
)

// ID identifies a persisted entity. Values are assigned by the store's
// sequence and are always positive; the zero value means "not yet persisted".
type ID int64

// NewID validates a raw identifier coming from the store or from a request.
func NewID(v int64) (ID, error) {
	id := ID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses a decimal identifier, e.g. a path parameter or a bot button payload.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a number", s))
	}
	return NewID(v)
}

// Validate reports whether the identifier is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", int64(id), 1, int64(math.MaxInt64))
	}
	return nil
}

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw value.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
