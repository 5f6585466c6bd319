package readstore

import (
	"context"

	"cleanmarket/internal/infra"
	"cleanmarket/internal/infra/db"
	"cleanmarket/internal/pkg/pgconv"
	"cleanmarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PromocodeReadStore struct {
	db db.DBTX
}

func NewPromocodeReadStore(pool db.DBTX) *PromocodeReadStore {
	return &PromocodeReadStore{db: pool}
}

const promocodeByCodeQuery = `
SELECT id, code, discount_percentage, max_discount_minor, currency,
       starts_at, expires_at, max_global_uses
FROM promocodes
WHERE code = $1 AND deleted_at IS NULL
`

func (r *PromocodeReadStore) FindByCode(ctx context.Context, code string) (*shared.PromocodeSnapshot, error) {
	var (
		snap      shared.PromocodeSnapshot
		pct       pgtype.Numeric
		startsAt  pgtype.Timestamptz
		expiresAt pgtype.Timestamptz
		maxUses   pgtype.Int4
	)
	err := r.db.QueryRow(ctx, promocodeByCodeQuery, code).Scan(
		&snap.ID, &snap.Code, &pct, &snap.MaxDiscountMinor, &snap.Currency,
		&startsAt, &expiresAt, &maxUses,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promocode not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promocode by code", err)
	}

	snap.DiscountPercentage, err = pgconv.DecimalFromNumeric(pct)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid discount percentage", err)
	}
	snap.StartsAt = pgconv.TimePtrFromPgtype(startsAt)
	snap.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
	snap.MaxGlobalUses = pgconv.Int32PtrFromPgtype(maxUses)

	return &snap, nil
}

const countBookingsUsingQuery = `
SELECT COUNT(*)
FROM bookings
WHERE promocode_id = $1 AND status <> 'cancelled'
`

func (r *PromocodeReadStore) CountBookingsUsing(ctx context.Context, promocodeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countBookingsUsingQuery, promocodeID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count promocode uses", err)
	}
	return count, nil
}
