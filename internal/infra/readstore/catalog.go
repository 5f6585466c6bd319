package readstore

import (
	"context"

	"cleanmarket/internal/infra"
	"cleanmarket/internal/infra/db"
	"cleanmarket/internal/pkg/pgconv"
	"cleanmarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(pool db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: pool}
}

const serviceByIDQuery = `
SELECT id, name, pricing_model, price_per_meter_minor, min_area, currency
FROM services
WHERE id = $1 AND deleted_at IS NULL
`

func (r *CatalogReadStore) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	var (
		snap shared.ServiceSnapshot
		ppm  pgtype.Int8
	)
	err := r.db.QueryRow(ctx, serviceByIDQuery, id).Scan(
		&snap.ID, &snap.Name, &snap.PricingModel,
		&ppm, &snap.MinArea, &snap.Currency,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by id", err)
	}

	// NULL for area-range services
	if ppm.Valid {
		snap.PricePerMeterMinor = ppm.Int64
	}
	return &snap, nil
}

const pricingTierByIDQuery = `
SELECT id, service_id, min_area, max_area, amount_minor, currency
FROM pricings
WHERE id = $1
`

func (r *CatalogReadStore) PricingTierByID(ctx context.Context, id uuid.UUID) (*shared.PricingTierSnapshot, error) {
	var snap shared.PricingTierSnapshot
	err := r.db.QueryRow(ctx, pricingTierByIDQuery, id).Scan(
		&snap.ID, &snap.ServiceID, &snap.MinArea, &snap.MaxArea,
		&snap.AmountMinor, &snap.Currency,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pricing by id", err)
	}
	return &snap, nil
}

const extrasByIDsQuery = `
SELECT id, name, amount_minor, currency
FROM extras
WHERE id = ANY($1) AND deleted_at IS NULL
ORDER BY name
`

func (r *CatalogReadStore) ExtrasByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.ExtraSnapshot, error) {
	rows, err := r.db.Query(ctx, extrasByIDsQuery, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find extras by ids", err)
	}

	snaps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.ExtraSnapshot, error) {
		var snap shared.ExtraSnapshot
		err := row.Scan(&snap.ID, &snap.Name, &snap.AmountMinor, &snap.Currency)
		return snap, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan extras", err)
	}
	return snaps, nil
}
