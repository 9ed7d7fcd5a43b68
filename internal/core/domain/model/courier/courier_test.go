package courier_test

import (
	"testing"

	"pharmacy/internal/core/domain/model/courier"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	t.Run("should create free courier", func(t *testing.T) {
		c, err := courier.NewCourier(" Ravi ", "$2a$10$hash", "Ravi Kumar", "919800000001")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "ravi", c.Username())
		assert.Equal(t, "Ravi Kumar", c.Name())
		assert.True(t, c.IsFree())
		assert.Nil(t, c.CurrentOrderID())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		c, err := courier.NewCourier("", "", " ", "")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, courier.ErrUsernameIsRequired)
		assert.ErrorIs(t, err, courier.ErrPasswordIsRequired)
		assert.ErrorIs(t, err, courier.ErrNameIsRequired)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var c courier.Courier

		assert.Equal(t, courier.ErrCourierIsNotConstructed, c.Validate())
	})
}

func TestCourier_Assign(t *testing.T) {
	t.Run("should hold one order at a time", func(t *testing.T) {
		c := courier.RestoreCourier(1, "ravi", "hash", "Ravi", "", nil)

		require.NoError(t, c.Assign(10))
		require.NotNil(t, c.CurrentOrderID())
		assert.Equal(t, kernel.ID(10), *c.CurrentOrderID())

		err := c.Assign(11)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "busy with order 10")
		assert.Equal(t, kernel.ID(10), *c.CurrentOrderID())
	})

	t.Run("should reject invalid order id", func(t *testing.T) {
		c := courier.RestoreCourier(1, "ravi", "hash", "Ravi", "", nil)

		require.ErrorIs(t, c.Assign(0), errs.ErrValueIsOutOfRange)
		assert.True(t, c.IsFree())
	})
}

func TestCourier_Release(t *testing.T) {
	current := kernel.ID(10)
	c := courier.RestoreCourier(1, "ravi", "hash", "Ravi", "", &current)

	assert.False(t, c.Release(11))
	assert.False(t, c.IsFree())

	assert.True(t, c.Release(10))
	assert.True(t, c.IsFree())
	assert.False(t, c.Release(10))
}
