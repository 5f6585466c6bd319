//go:build unit

package money_test

import (
	"testing"

	"cleanmarket/internal/domain/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrency(t *testing.T) {
	t.Run("valid codes", func(t *testing.T) {
		for _, code := range []string{"HUF", "EUR", "USD"} {
			c, err := money.NewCurrency(code)
			require.NoError(t, err)
			assert.Equal(t, code, c.String())
		}
	})

	t.Run("invalid codes", func(t *testing.T) {
		for _, code := range []string{"", "hu", "huf", "HUFF", "H1F"} {
			_, err := money.NewCurrency(code)
			assert.ErrorIs(t, err, money.ErrInvalidCurrency, code)
		}
	})
}

func TestMoneyArithmetic(t *testing.T) {
	huf := money.Currency("HUF")
	eur := money.Currency("EUR")

	t.Run("add and sub", func(t *testing.T) {
		a := money.NewFromMinorUnits(10050, huf) // 100.50
		b := money.NewFromMinorUnits(2500, huf)  // 25.00

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "125.50", sum.StringFixed())

		diff, err := a.Sub(b)
		require.NoError(t, err)
		assert.Equal(t, "75.50", diff.StringFixed())
	})

	t.Run("currency mismatch fails fast", func(t *testing.T) {
		a := money.NewFromMinorUnits(100, huf)
		b := money.NewFromMinorUnits(100, eur)

		_, err := a.Add(b)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
		_, err = a.Sub(b)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
		_, err = a.Min(b)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
		_, err = a.LessThan(b)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	})

	t.Run("percent is exact", func(t *testing.T) {
		m := money.NewFromMinorUnits(1050000, huf) // 10500.00
		p := m.Percent(decimal.NewFromInt(50))
		assert.Equal(t, "5250.00", p.StringFixed())
	})

	t.Run("percent does not round intermediates", func(t *testing.T) {
		m := money.NewFromMinorUnits(1001, huf) // 10.01
		p := m.Percent(decimal.NewFromInt(33))
		// 10.01 * 0.33 = 3.3033; rounded only at output
		assert.Equal(t, "3.30", p.StringFixed())
		assert.Equal(t, int64(330), p.MinorUnits())
	})

	t.Run("min picks the smaller amount", func(t *testing.T) {
		a := money.NewFromMinorUnits(1000, huf)
		b := money.NewFromMinorUnits(999, huf)

		got, err := a.Min(b)
		require.NoError(t, err)
		assert.True(t, got.Equal(b))

		got, err = b.Min(a)
		require.NoError(t, err)
		assert.True(t, got.Equal(b))
	})

	t.Run("mul int", func(t *testing.T) {
		rate := money.NewFromMinorUnits(10000, huf) // 100.00
		total := rate.MulInt(50)
		assert.Equal(t, "5000.00", total.StringFixed())
	})

	t.Run("predicates", func(t *testing.T) {
		assert.True(t, money.Zero(huf).IsZero())
		assert.False(t, money.Zero(huf).IsNegative())

		neg, err := money.Zero(huf).Sub(money.NewFromMinorUnits(1, huf))
		require.NoError(t, err)
		assert.True(t, neg.IsNegative())
	})
}

func TestMoneyConstruction(t *testing.T) {
	huf := money.Currency("HUF")

	t.Run("from string", func(t *testing.T) {
		m, err := money.NewFromString("125.50", huf)
		require.NoError(t, err)
		assert.Equal(t, int64(12550), m.MinorUnits())
	})

	t.Run("from invalid string", func(t *testing.T) {
		_, err := money.NewFromString("not-a-number", huf)
		assert.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("minor units round-trip", func(t *testing.T) {
		m := money.NewFromMinorUnits(12550, huf)
		assert.Equal(t, int64(12550), m.MinorUnits())
		assert.Equal(t, "125.50", m.StringFixed())
	})
}
