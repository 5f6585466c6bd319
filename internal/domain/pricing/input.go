package pricing

import (
	"cleanmarket/internal/domain/catalog"
	"cleanmarket/internal/domain/money"
	"cleanmarket/internal/domain/promocode"
)

// Input is the immutable aggregate describing one pricing request. It is
// assembled per request and discarded; it carries no identity.
type Input struct {
	Service *catalog.Service
	// Exactly one of Tier / Area is required, determined by the service's
	// pricing model.
	Tier                 *catalog.PricingTier
	Area                 *int64
	Extras               []*catalog.Extra
	HasCleaningMaterials bool
	Promo                *promocode.Promocode
	Currency             money.Currency
}

// checkCurrencies fails with ErrCurrencyMismatch before any arithmetic runs if
// the service, tier, extras or promo cap disagree with the request currency.
func (in Input) checkCurrencies() error {
	if in.Service.Currency() != in.Currency {
		return money.ErrCurrencyMismatch
	}
	if in.Tier != nil && in.Tier.Amount().Currency() != in.Currency {
		return money.ErrCurrencyMismatch
	}
	for _, extra := range in.Extras {
		if extra.Amount().Currency() != in.Currency {
			return money.ErrCurrencyMismatch
		}
	}
	if in.Promo != nil && in.Promo.MaxDiscountAmount().Currency() != in.Currency {
		return money.ErrCurrencyMismatch
	}
	return nil
}
