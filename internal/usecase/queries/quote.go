package queries

import (
	"context"

	"cleanmarket/internal/domain/catalog"
	"cleanmarket/internal/domain/money"
	"cleanmarket/internal/domain/pricing"
	"cleanmarket/internal/domain/promocode"
	"cleanmarket/internal/infra"
	"cleanmarket/internal/pkg/clock"
	"cleanmarket/internal/pkg/errs"
	"cleanmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	ServiceID            uuid.UUID
	PricingID            *uuid.UUID
	Area                 *int64
	ExtraIDs             []uuid.UUID
	HasCleaningMaterials bool
	PromoCode            *string
}

type CatalogReadStore interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error)
	PricingTierByID(ctx context.Context, id uuid.UUID) (*shared.PricingTierSnapshot, error)
	ExtrasByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.ExtraSnapshot, error)
}

type PromocodeReadStore interface {
	FindByCode(ctx context.Context, code string) (*shared.PromocodeSnapshot, error)
	CountBookingsUsing(ctx context.Context, promocodeID uuid.UUID) (int64, error)
}

type QuoteQueries interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	catalog    CatalogReadStore
	promocodes PromocodeReadStore
	chain      pricing.Calculator
	clock      clock.Clock
}

func NewQuoteQueries(catalogStore CatalogReadStore, promoStore PromocodeReadStore, clk clock.Clock) QuoteQueries {
	return &quoteQueriesImpl{
		catalog:    catalogStore,
		promocodes: promoStore,
		chain:      pricing.NewChain(),
		clock:      clk,
	}
}

func (q *quoteQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error) {
	in, promoID, err := q.buildInput(ctx, req)
	if err != nil {
		return nil, err
	}

	breakdown, err := q.chain.Calculate(*in)
	if err != nil {
		return nil, err
	}

	return &QuoteView{
		ServiceID:      req.ServiceID,
		PromocodeID:    promoID,
		SelectedAmount: breakdown.Selected.StringFixed(),
		ExtrasAmount:   breakdown.Extras.StringFixed(),
		DiscountAmount: breakdown.Discount.StringFixed(),
		TotalAmount:    breakdown.Total.StringFixed(),
		Currency:       string(breakdown.Currency()),
	}, nil
}

func (q *quoteQueriesImpl) buildInput(ctx context.Context, req QuoteRequest) (*pricing.Input, *uuid.UUID, error) {
	svcSnap, err := q.catalog.ServiceByID(ctx, req.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	svc, err := serviceFromSnapshot(svcSnap)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var tier *catalog.PricingTier
	if req.PricingID != nil {
		tierSnap, err := q.catalog.PricingTierByID(ctx, *req.PricingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, nil, errs.Mark(err, errs.ErrPricingNotFound)
			}
			return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		tier, err = tierFromSnapshot(tierSnap)
		if err != nil {
			return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	extras, err := q.loadExtras(ctx, req.ExtraIDs)
	if err != nil {
		return nil, nil, err
	}

	var promo *promocode.Promocode
	var promoID *uuid.UUID
	if req.PromoCode != nil {
		promo, err = q.resolvePromo(ctx, *req.PromoCode)
		if err != nil {
			return nil, nil, err
		}
		id := promo.ID()
		promoID = &id
	}

	return &pricing.Input{
		Service:              svc,
		Tier:                 tier,
		Area:                 req.Area,
		Extras:               extras,
		HasCleaningMaterials: req.HasCleaningMaterials,
		Promo:                promo,
		Currency:             svc.Currency(),
	}, promoID, nil
}

func (q *quoteQueriesImpl) loadExtras(ctx context.Context, ids []uuid.UUID) ([]*catalog.Extra, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	snaps, err := q.catalog.ExtrasByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(snaps) != len(dedupe(ids)) {
		return nil, errs.ErrExtraNotFound
	}

	extras := make([]*catalog.Extra, 0, len(snaps))
	for _, snap := range snaps {
		e, err := extraFromSnapshot(snap)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		extras = append(extras, e)
	}
	return extras, nil
}

// resolvePromo enforces eligibility before the code is attached to the
// pricing input; quotes never apply an inactive or exhausted code.
func (q *quoteQueriesImpl) resolvePromo(ctx context.Context, code string) (*promocode.Promocode, error) {
	normalized, err := promocode.NewCode(code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPromocodeNotFound)
	}

	snap, err := q.promocodes.FindByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPromocodeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	promo, err := promoFromSnapshot(snap)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := promo.ValidateWindow(q.clock.Now()); err != nil {
		return nil, err
	}

	if promo.MaxGlobalUses() != nil {
		uses, err := q.promocodes.CountBookingsUsing(ctx, promo.ID())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if promo.UsageLimitReached(uses) {
			return nil, promocode.ErrUsageLimitReached
		}
	}

	return promo, nil
}

func serviceFromSnapshot(snap *shared.ServiceSnapshot) (*catalog.Service, error) {
	model, err := catalog.NewPricingModel(snap.PricingModel)
	if err != nil {
		return nil, err
	}
	currency, err := money.NewCurrency(snap.Currency)
	if err != nil {
		return nil, err
	}
	return catalog.NewService(
		snap.ID, snap.Name, model,
		money.NewFromMinorUnits(snap.PricePerMeterMinor, currency),
		snap.MinArea, currency,
	)
}

func tierFromSnapshot(snap *shared.PricingTierSnapshot) (*catalog.PricingTier, error) {
	currency, err := money.NewCurrency(snap.Currency)
	if err != nil {
		return nil, err
	}
	return catalog.NewPricingTier(
		snap.ID, snap.ServiceID, snap.MinArea, snap.MaxArea,
		money.NewFromMinorUnits(snap.AmountMinor, currency),
	)
}

func extraFromSnapshot(snap shared.ExtraSnapshot) (*catalog.Extra, error) {
	currency, err := money.NewCurrency(snap.Currency)
	if err != nil {
		return nil, err
	}
	return catalog.NewExtra(snap.ID, snap.Name, money.NewFromMinorUnits(snap.AmountMinor, currency))
}

func promoFromSnapshot(snap *shared.PromocodeSnapshot) (*promocode.Promocode, error) {
	currency, err := money.NewCurrency(snap.Currency)
	if err != nil {
		return nil, err
	}
	return promocode.NewPromocode(
		snap.ID, snap.Code, snap.DiscountPercentage,
		money.NewFromMinorUnits(snap.MaxDiscountMinor, currency),
		snap.StartsAt, snap.ExpiresAt, snap.MaxGlobalUses,
	)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
