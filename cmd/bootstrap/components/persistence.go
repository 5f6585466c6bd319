package components

import (
	"cleanmarket/internal/infra/db"
	"cleanmarket/internal/infra/readstore"
	"cleanmarket/internal/infra/uow"
	"cleanmarket/internal/infra/wallet"
	"cleanmarket/internal/usecase/queries"
	"cleanmarket/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		NewPromocodeReadStore,
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			wallet.NewLedger,
			fx.As(new(shared.WalletLedger)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewPromocodeReadStore layers the redis cache over the database store when a
// client is configured; otherwise every lookup goes straight to Postgres.
func NewPromocodeReadStore(pool db.DBTX, cache *redis.Client) queries.PromocodeReadStore {
	store := readstore.NewPromocodeReadStore(pool)
	if cache == nil {
		return store
	}
	return readstore.NewCachedPromocodeReadStore(store, cache)
}
