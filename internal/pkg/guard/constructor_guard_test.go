package guard_test

import (
	"errors"
	"testing"

	"pharmacy/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("entity not constructed")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type dosage struct {
		milligrams int
		guard      guard.ConstructorGuard
	}

	errDosageNotConstructed := errors.New("dosage must be created via newDosage")

	newDosage := func(mg int) (dosage, error) {
		if mg <= 0 {
			return dosage{}, errors.New("milligrams must be positive")
		}
		return dosage{milligrams: mg, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_marks_value_valid", func(t *testing.T) {
		d, err := newDosage(500)

		require.NoError(t, err)
		require.NoError(t, d.guard.Validate(errDosageNotConstructed))
		assert.Equal(t, 500, d.milligrams)
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		d, err := newDosage(0)

		require.Error(t, err)
		require.ErrorIs(t, d.guard.Validate(errDosageNotConstructed), errDosageNotConstructed)
	})

	t.Run("copies_keep_guard_state", func(t *testing.T) {
		d, _ := newDosage(250)
		cp := d

		require.NoError(t, cp.guard.Validate(errDosageNotConstructed))
	})
}
