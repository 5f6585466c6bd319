package pricing

import (
	"errors"

	"cleanmarket/internal/domain/catalog"
	"cleanmarket/internal/domain/money"
)

var (
	ErrMissingPricing         = errors.New("pricing tier is required for area-range services")
	ErrPricingServiceMismatch = errors.New("pricing tier belongs to a different service")
	ErrMissingArea            = errors.New("area is required for price-per-meter services")
	ErrAreaBelowMinimum       = errors.New("area is below the service minimum")
)

// Breakdown is the result of a pricing run. The balance invariant holds for
// every breakdown the chain produces:
//
//	Total = Selected + Extras - Discount, with 0 ≤ Discount ≤ Selected + Extras.
type Breakdown struct {
	Selected money.Money
	Extras   money.Money
	Discount money.Money
	Total    money.Money
}

func (b Breakdown) Currency() money.Currency {
	return b.Total.Currency()
}

// Calculator is one stage of the pricing pipeline. Stages compose by
// wrapping; each stage calls its inner calculator and post-processes the
// breakdown it receives. Calculate is pure: no clock, no randomness, no
// stored state.
type Calculator interface {
	Calculate(in Input) (Breakdown, error)
}

// NewChain composes the full pipeline: promo discount over extra charges over
// the base price.
func NewChain() Calculator {
	return NewPromoDiscount(NewExtraCharges(NewBasePrice()))
}

type basePrice struct{}

func NewBasePrice() Calculator {
	return &basePrice{}
}

func (c *basePrice) Calculate(in Input) (Breakdown, error) {
	if err := in.checkCurrencies(); err != nil {
		return Breakdown{}, err
	}

	selected, err := selectedAmount(in)
	if err != nil {
		return Breakdown{}, err
	}

	zero := money.Zero(in.Currency)
	return Breakdown{
		Selected: selected,
		Extras:   zero,
		Discount: zero,
		Total:    selected,
	}, nil
}

func selectedAmount(in Input) (money.Money, error) {
	switch in.Service.PricingModel() {
	case catalog.AreaRange:
		if in.Tier == nil {
			return money.Money{}, ErrMissingPricing
		}
		if in.Tier.ServiceID() != in.Service.ID() {
			return money.Money{}, ErrPricingServiceMismatch
		}
		return in.Tier.Amount(), nil

	case catalog.PricePerMeter:
		if in.Area == nil {
			return money.Money{}, ErrMissingArea
		}
		if min := in.Service.MinArea(); min != nil && *in.Area < *min {
			return money.Money{}, ErrAreaBelowMinimum
		}
		return in.Service.PricePerMeter().MulInt(*in.Area), nil

	default:
		return money.Money{}, catalog.ErrInvalidPricingModel
	}
}

type extraCharges struct {
	inner Calculator
}

func NewExtraCharges(inner Calculator) Calculator {
	return &extraCharges{inner: inner}
}

func (c *extraCharges) Calculate(in Input) (Breakdown, error) {
	b, err := c.inner.Calculate(in)
	if err != nil {
		return Breakdown{}, err
	}

	extras := money.Zero(in.Currency)
	for _, extra := range in.Extras {
		extras, err = extras.Add(extra.Amount())
		if err != nil {
			return Breakdown{}, err
		}
	}

	total, err := b.Total.Add(extras)
	if err != nil {
		return Breakdown{}, err
	}

	b.Extras = extras
	b.Total = total
	return b, nil
}

type promoDiscount struct {
	inner Calculator
}

func NewPromoDiscount(inner Calculator) Calculator {
	return &promoDiscount{inner: inner}
}

func (c *promoDiscount) Calculate(in Input) (Breakdown, error) {
	b, err := c.inner.Calculate(in)
	if err != nil {
		return Breakdown{}, err
	}

	if in.Promo == nil {
		return b, nil
	}

	// The inner total is the subtotal: selected + extras, pre-discount.
	subtotal := b.Total

	discount, err := in.Promo.DiscountFor(subtotal)
	if err != nil {
		return Breakdown{}, err
	}

	total, err := subtotal.Sub(discount)
	if err != nil {
		return Breakdown{}, err
	}

	b.Discount = discount
	b.Total = total
	return b, nil
}
