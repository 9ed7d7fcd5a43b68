package kernel_test

import (
	"testing"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		for _, s := range []string{"0", "10", "4.99"} {
			m, err := kernel.MoneyFromString(s)

			require.NoError(t, err)
			require.NoError(t, m.Validate())
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Validate(t *testing.T) {
	var m kernel.Money

	assert.Equal(t, kernel.ErrMoneyIsNotConstructed, m.Validate())
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.MoneyFromString("12.50")

	t.Run("should multiply by quantity", func(t *testing.T) {
		total := price.Times(3)

		assert.Equal(t, "37.50", total.String())
		require.NoError(t, total.Validate())
	})

	t.Run("should add amounts", func(t *testing.T) {
		other, _ := kernel.MoneyFromString("0.5")

		assert.Equal(t, "13.00", price.Add(other).String())
	})

	t.Run("should compare numerically", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("10")
		b, _ := kernel.MoneyFromString("10.00")

		assert.True(t, a.IsEqual(b))
		assert.True(t, kernel.ZeroMoney().IsEqual(a.Times(0)))
	})
}
