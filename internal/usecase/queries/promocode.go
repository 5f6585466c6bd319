package queries

import (
	"context"
	"errors"
	"log/slog"

	"cleanmarket/internal/domain/catalog"
	"cleanmarket/internal/domain/money"
	"cleanmarket/internal/domain/pricing"
	"cleanmarket/internal/domain/promocode"
	"cleanmarket/internal/infra"
	"cleanmarket/internal/pkg/clock"
	"cleanmarket/internal/pkg/errs"

	"github.com/google/uuid"
)

type ValidateRequest struct {
	Code string
	// Optional booking parameters; when present and the code is valid, the
	// response carries a trial price breakdown for this combination.
	ServiceID            *uuid.UUID
	PricingID            *uuid.UUID
	Area                 *int64
	ExtraIDs             []uuid.UUID
	HasCleaningMaterials bool
}

type PromocodeQueries interface {
	Validate(ctx context.Context, req ValidateRequest) (*PromocodeValidationView, error)
}

type promocodeQueriesImpl struct {
	promocodes PromocodeReadStore
	quotes     QuoteQueries
	clock      clock.Clock
}

func NewPromocodeQueries(promoStore PromocodeReadStore, quotes QuoteQueries, clk clock.Clock) PromocodeQueries {
	return &promocodeQueriesImpl{
		promocodes: promoStore,
		quotes:     quotes,
		clock:      clk,
	}
}

// Validate never surfaces an internal error: every failure path is downgraded
// to a typed reason in the view.
func (q *promocodeQueriesImpl) Validate(ctx context.Context, req ValidateRequest) (*PromocodeValidationView, error) {
	normalized, err := promocode.NewCode(req.Code)
	if err != nil {
		return invalidView(promocode.ReasonNotFound), nil
	}

	snap, err := q.promocodes.FindByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return invalidView(promocode.ReasonNotFound), nil
		}
		slog.Error("promocode lookup failed", "code", normalized.String(), "error", err)
		return invalidView(promocode.ReasonUnknown), nil
	}

	promo, err := promoFromSnapshot(snap)
	if err != nil {
		slog.Error("stored promocode failed validation", "code", normalized.String(), "error", err)
		return invalidView(promocode.ReasonUnknown), nil
	}

	if !promo.ActiveAt(q.clock.Now()) {
		return invalidView(promocode.ReasonInactivePeriod), nil
	}

	if promo.MaxGlobalUses() != nil {
		uses, err := q.promocodes.CountBookingsUsing(ctx, promo.ID())
		if err != nil {
			slog.Error("promocode usage count failed", "code", normalized.String(), "error", err)
			return invalidView(promocode.ReasonUnknown), nil
		}
		if promo.UsageLimitReached(uses) {
			return invalidView(promocode.ReasonUsageLimitReached), nil
		}
	}

	view := &PromocodeValidationView{
		Valid:    true,
		Includes: &PromocodeIncludes{Promocode: promocodeViewFrom(promo)},
	}

	if req.ServiceID != nil {
		pricingView, reason := q.trialPricing(ctx, req, normalized.String())
		if reason != "" {
			return invalidView(reason), nil
		}
		view.Pricing = pricingView
	}

	return view, nil
}

// trialPricing runs the full quote for the supplied booking parameters.
// Price-eligibility failures are data problems, not system errors, so they
// come back as booking_not_eligible; anything unexpected as unknown.
func (q *promocodeQueriesImpl) trialPricing(ctx context.Context, req ValidateRequest, code string) (*QuoteView, promocode.ValidationReason) {
	quote, err := q.quotes.Quote(ctx, QuoteRequest{
		ServiceID:            *req.ServiceID,
		PricingID:            req.PricingID,
		Area:                 req.Area,
		ExtraIDs:             req.ExtraIDs,
		HasCleaningMaterials: req.HasCleaningMaterials,
		PromoCode:            &code,
	})
	if err == nil {
		return quote, ""
	}

	if isEligibilityError(err) {
		return nil, promocode.ReasonBookingNotEligible
	}

	slog.Error("trial pricing failed", "code", code, "error", err)
	return nil, promocode.ReasonUnknown
}

func isEligibilityError(err error) bool {
	eligibility := []error{
		pricing.ErrMissingPricing,
		pricing.ErrPricingServiceMismatch,
		pricing.ErrMissingArea,
		pricing.ErrAreaBelowMinimum,
		money.ErrCurrencyMismatch,
		catalog.ErrInvalidPricingModel,
		errs.ErrServiceNotFound,
		errs.ErrPricingNotFound,
		errs.ErrExtraNotFound,
		errs.ErrDomainValidation,
	}
	for _, target := range eligibility {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func invalidView(reason promocode.ValidationReason) *PromocodeValidationView {
	r := string(reason)
	return &PromocodeValidationView{Valid: false, Reason: &r}
}

func promocodeViewFrom(p *promocode.Promocode) PromocodeView {
	return PromocodeView{
		ID:                 p.ID(),
		Code:               p.Code().String(),
		DiscountPercentage: p.DiscountPercentage().String(),
		MaxDiscountAmount:  p.MaxDiscountAmount().StringFixed(),
		Currency:           string(p.MaxDiscountAmount().Currency()),
		StartsAt:           p.StartsAt(),
		ExpiresAt:          p.ExpiresAt(),
	}
}
