package money

import (
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrInvalidAmount    = errors.New("invalid amount")
)

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

type Currency string

func NewCurrency(code string) (Currency, error) {
	if !currencyRegex.MatchString(code) {
		return "", ErrInvalidCurrency
	}
	return Currency(code), nil
}

func (c Currency) String() string {
	return string(c)
}

// Money is a currency-tagged fixed-point amount. All arithmetic stays on the
// decimal representation; rounding happens only at the defined output points
// (StringFixed, MinorUnits).
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

func New(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

func NewFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: d, currency: currency}, nil
}

// NewFromMinorUnits builds a Money from an integer number of minor units
// (cents, fillér, ...). Two fraction digits are assumed for every currency.
func NewFromMinorUnits(units int64, currency Currency) Money {
	return Money{amount: decimal.New(units, -2), currency: currency}
}

func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

func (m Money) SameCurrency(other Money) bool {
	return m.currency == other.currency
}

func (m Money) Add(other Money) (Money, error) {
	if !m.SameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

func (m Money) Sub(other Money) (Money, error) {
	if !m.SameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

func (m Money) MulInt(n int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(n)), currency: m.currency}
}

// Percent returns p percent of m without rounding.
func (m Money) Percent(p decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(p).Div(decimal.NewFromInt(100)), currency: m.currency}
}

func (m Money) Min(other Money) (Money, error) {
	if !m.SameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	if other.amount.LessThan(m.amount) {
		return other, nil
	}
	return m, nil
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) LessThan(other Money) (bool, error) {
	if !m.SameCurrency(other) {
		return false, ErrCurrencyMismatch
	}
	return m.amount.LessThan(other.amount), nil
}

// MinorUnits rounds to two fraction digits and returns the integer minor-unit
// value, the representation persisted by the repositories.
func (m Money) MinorUnits() int64 {
	return m.amount.Round(2).Shift(2).IntPart()
}

// StringFixed renders the amount with exactly two fraction digits.
func (m Money) StringFixed() string {
	return m.amount.StringFixed(2)
}
