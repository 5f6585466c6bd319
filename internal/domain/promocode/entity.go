package promocode

import (
	"errors"
	"time"

	"cleanmarket/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotYetActive      = errors.New("promocode is not yet active")
	ErrExpired           = errors.New("promocode has expired")
	ErrUsageLimitReached = errors.New("promocode usage limit reached")
)

type Promocode struct {
	id                 uuid.UUID
	code               Code
	discountPercentage decimal.Decimal
	maxDiscountAmount  money.Money
	startsAt           *time.Time
	expiresAt          *time.Time
	maxGlobalUses      *int32
}

func NewPromocode(
	id uuid.UUID,
	code string,
	discountPercentage decimal.Decimal,
	maxDiscountAmount money.Money,
	startsAt, expiresAt *time.Time,
	maxGlobalUses *int32,
) (*Promocode, error) {
	normalized, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	if !discountPercentage.IsPositive() || discountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidDiscountPercent
	}

	return &Promocode{
		id:                 id,
		code:               normalized,
		discountPercentage: discountPercentage,
		maxDiscountAmount:  maxDiscountAmount,
		startsAt:           startsAt,
		expiresAt:          expiresAt,
		maxGlobalUses:      maxGlobalUses,
	}, nil
}

// ActiveAt reports whether t falls inside [startsAt, expiresAt]; both bounds
// are inclusive, an unset bound leaves that side open.
func (p *Promocode) ActiveAt(t time.Time) bool {
	if p.startsAt != nil && t.Before(*p.startsAt) {
		return false
	}
	if p.expiresAt != nil && t.After(*p.expiresAt) {
		return false
	}
	return true
}

func (p *Promocode) ValidateWindow(t time.Time) error {
	if p.startsAt != nil && t.Before(*p.startsAt) {
		return ErrNotYetActive
	}
	if p.expiresAt != nil && t.After(*p.expiresAt) {
		return ErrExpired
	}
	return nil
}

// UsageLimitReached checks the global cap against the count of non-cancelled
// bookings referencing this code. With no cap it never trips.
func (p *Promocode) UsageLimitReached(nonCancelledUses int64) bool {
	if p.maxGlobalUses == nil {
		return false
	}
	return nonCancelledUses >= int64(*p.maxGlobalUses)
}

// DiscountFor clamps the percentage discount to both the configured cap and
// the subtotal itself, so totals never go negative.
func (p *Promocode) DiscountFor(subtotal money.Money) (money.Money, error) {
	raw := subtotal.Percent(p.discountPercentage)

	capped, err := raw.Min(p.maxDiscountAmount)
	if err != nil {
		return money.Money{}, err
	}
	return capped.Min(subtotal)
}

func (p *Promocode) ID() uuid.UUID                       { return p.id }
func (p *Promocode) Code() Code                          { return p.code }
func (p *Promocode) DiscountPercentage() decimal.Decimal { return p.discountPercentage }
func (p *Promocode) MaxDiscountAmount() money.Money      { return p.maxDiscountAmount }
func (p *Promocode) StartsAt() *time.Time                { return p.startsAt }
func (p *Promocode) ExpiresAt() *time.Time               { return p.expiresAt }
func (p *Promocode) MaxGlobalUses() *int32               { return p.maxGlobalUses }
