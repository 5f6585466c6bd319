//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"cleanmarket/internal/domain/promocode"
	"cleanmarket/internal/infra"
	"cleanmarket/internal/pkg/clock"
	"cleanmarket/internal/pkg/errs"
	"cleanmarket/internal/usecase/queries"
	"cleanmarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const huf = "HUF"

type fakeCatalogStore struct {
	services map[uuid.UUID]*shared.ServiceSnapshot
	tiers    map[uuid.UUID]*shared.PricingTierSnapshot
	extras   map[uuid.UUID]shared.ExtraSnapshot
}

func newFakeCatalogStore() *fakeCatalogStore {
	return &fakeCatalogStore{
		services: map[uuid.UUID]*shared.ServiceSnapshot{},
		tiers:    map[uuid.UUID]*shared.PricingTierSnapshot{},
		extras:   map[uuid.UUID]shared.ExtraSnapshot{},
	}
}

func (f *fakeCatalogStore) ServiceByID(_ context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
}

func (f *fakeCatalogStore) PricingTierByID(_ context.Context, id uuid.UUID) (*shared.PricingTierSnapshot, error) {
	if tier, ok := f.tiers[id]; ok {
		return tier, nil
	}
	return nil, infra.WrapRepoErr("pricing not found", nil, infra.KindNotFound)
}

func (f *fakeCatalogStore) ExtrasByIDs(_ context.Context, ids []uuid.UUID) ([]shared.ExtraSnapshot, error) {
	var found []shared.ExtraSnapshot
	for _, id := range ids {
		if e, ok := f.extras[id]; ok {
			found = append(found, e)
		}
	}
	return found, nil
}

type fakePromoStore struct {
	codes  map[string]*shared.PromocodeSnapshot
	counts map[uuid.UUID]int64
}

func newFakePromoStore() *fakePromoStore {
	return &fakePromoStore{
		codes:  map[string]*shared.PromocodeSnapshot{},
		counts: map[uuid.UUID]int64{},
	}
}

func (f *fakePromoStore) FindByCode(_ context.Context, code string) (*shared.PromocodeSnapshot, error) {
	if p, ok := f.codes[code]; ok {
		return p, nil
	}
	return nil, infra.WrapRepoErr("promocode not found", nil, infra.KindNotFound)
}

func (f *fakePromoStore) CountBookingsUsing(_ context.Context, id uuid.UUID) (int64, error) {
	return f.counts[id], nil
}

func (f *fakeCatalogStore) addPerMeterService(rateMinor int64, minArea *int64) uuid.UUID {
	id := uuid.New()
	f.services[id] = &shared.ServiceSnapshot{
		ID: id, Name: "Deep cleaning", PricingModel: "price_per_meter",
		PricePerMeterMinor: rateMinor, MinArea: minArea, Currency: huf,
	}
	return id
}

func (f *fakeCatalogStore) addAreaRangeService() uuid.UUID {
	id := uuid.New()
	f.services[id] = &shared.ServiceSnapshot{
		ID: id, Name: "Standard cleaning", PricingModel: "area_range", Currency: huf,
	}
	return id
}

func (f *fakeCatalogStore) addTier(serviceID uuid.UUID, amountMinor int64) uuid.UUID {
	id := uuid.New()
	f.tiers[id] = &shared.PricingTierSnapshot{
		ID: id, ServiceID: serviceID, MinArea: 20, MaxArea: 60,
		AmountMinor: amountMinor, Currency: huf,
	}
	return id
}

func (f *fakeCatalogStore) addExtra(name string, amountMinor int64) uuid.UUID {
	id := uuid.New()
	f.extras[id] = shared.ExtraSnapshot{ID: id, Name: name, AmountMinor: amountMinor, Currency: huf}
	return id
}

func (f *fakePromoStore) addCode(code string, pct int64, capMinor int64, startsAt, expiresAt *time.Time, maxUses *int32) uuid.UUID {
	id := uuid.New()
	f.codes[code] = &shared.PromocodeSnapshot{
		ID: id, Code: code, DiscountPercentage: decimal.NewFromInt(pct),
		MaxDiscountMinor: capMinor, Currency: huf,
		StartsAt: startsAt, ExpiresAt: expiresAt, MaxGlobalUses: maxUses,
	}
	return id
}

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func TestQuote(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))

	t.Run("per-meter quote with extras and promo", func(t *testing.T) {
		catalogStore := newFakeCatalogStore()
		promoStore := newFakePromoStore()
		q := queries.NewQuoteQueries(catalogStore, promoStore, clk)

		serviceID := catalogStore.addPerMeterService(10000, nil)
		extraID := catalogStore.addExtra("Fridge", 50000)
		promoStore.addCode("SAVE50", 50, 100000, nil, nil, nil)

		view, err := q.Quote(ctx, queries.QuoteRequest{
			ServiceID: serviceID,
			Area:      i64Ptr(100),
			ExtraIDs:  []uuid.UUID{extraID},
			PromoCode: strPtr("save50"),
		})
		require.NoError(t, err)

		assert.Equal(t, "10000.00", view.SelectedAmount)
		assert.Equal(t, "500.00", view.ExtrasAmount)
		assert.Equal(t, "1000.00", view.DiscountAmount)
		assert.Equal(t, "9500.00", view.TotalAmount)
		assert.Equal(t, huf, view.Currency)
		require.NotNil(t, view.PromocodeID)
	})

	t.Run("tiered quote", func(t *testing.T) {
		catalogStore := newFakeCatalogStore()
		q := queries.NewQuoteQueries(catalogStore, newFakePromoStore(), clk)

		serviceID := catalogStore.addAreaRangeService()
		tierID := catalogStore.addTier(serviceID, 300000)
		extraID := catalogStore.addExtra("Windows", 50000)

		view, err := q.Quote(ctx, queries.QuoteRequest{
			ServiceID: serviceID,
			PricingID: &tierID,
			ExtraIDs:  []uuid.UUID{extraID},
		})
		require.NoError(t, err)
		assert.Equal(t, "3500.00", view.TotalAmount)
		assert.Nil(t, view.PromocodeID)
	})

	t.Run("unknown service", func(t *testing.T) {
		q := queries.NewQuoteQueries(newFakeCatalogStore(), newFakePromoStore(), clk)
		_, err := q.Quote(ctx, queries.QuoteRequest{ServiceID: uuid.New(), Area: i64Ptr(10)})
		assert.ErrorIs(t, err, errs.ErrServiceNotFound)
	})

	t.Run("unknown extra", func(t *testing.T) {
		catalogStore := newFakeCatalogStore()
		q := queries.NewQuoteQueries(catalogStore, newFakePromoStore(), clk)
		serviceID := catalogStore.addPerMeterService(10000, nil)

		_, err := q.Quote(ctx, queries.QuoteRequest{
			ServiceID: serviceID,
			Area:      i64Ptr(10),
			ExtraIDs:  []uuid.UUID{uuid.New()},
		})
		assert.ErrorIs(t, err, errs.ErrExtraNotFound)
	})

	t.Run("unknown promo code", func(t *testing.T) {
		catalogStore := newFakeCatalogStore()
		q := queries.NewQuoteQueries(catalogStore, newFakePromoStore(), clk)
		serviceID := catalogStore.addPerMeterService(10000, nil)

		_, err := q.Quote(ctx, queries.QuoteRequest{
			ServiceID: serviceID,
			Area:      i64Ptr(10),
			PromoCode: strPtr("NOPE1"),
		})
		assert.ErrorIs(t, err, errs.ErrPromocodeNotFound)
	})

	t.Run("expired promo is not applied", func(t *testing.T) {
		catalogStore := newFakeCatalogStore()
		promoStore := newFakePromoStore()
		q := queries.NewQuoteQueries(catalogStore, promoStore, clk)

		serviceID := catalogStore.addPerMeterService(10000, nil)
		expired := clk.Now().Add(-time.Hour)
		promoStore.addCode("OLD10", 10, 100000, nil, &expired, nil)

		_, err := q.Quote(ctx, queries.QuoteRequest{
			ServiceID: serviceID,
			Area:      i64Ptr(10),
			PromoCode: strPtr("OLD10"),
		})
		assert.ErrorIs(t, err, promocode.ErrExpired)
	})

	t.Run("exhausted promo is not applied", func(t *testing.T) {
		catalogStore := newFakeCatalogStore()
		promoStore := newFakePromoStore()
		q := queries.NewQuoteQueries(catalogStore, promoStore, clk)

		serviceID := catalogStore.addPerMeterService(10000, nil)
		limit := int32(5)
		promoID := promoStore.addCode("FULL5", 10, 100000, nil, nil, &limit)
		promoStore.counts[promoID] = 5

		_, err := q.Quote(ctx, queries.QuoteRequest{
			ServiceID: serviceID,
			Area:      i64Ptr(10),
			PromoCode: strPtr("FULL5"),
		})
		assert.ErrorIs(t, err, promocode.ErrUsageLimitReached)
	})
}
