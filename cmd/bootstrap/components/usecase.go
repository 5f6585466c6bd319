package components

import (
	"cleanmarket/internal/infra/db"
	"cleanmarket/internal/pkg/clock"
	"cleanmarket/internal/pkg/config"
	"cleanmarket/internal/usecase"
	"cleanmarket/internal/usecase/commands"
	"cleanmarket/internal/usecase/queries"
	"cleanmarket/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		queries.NewQuoteQueries,
		queries.NewPromocodeQueries,
		NewWalletQueries,
		commands.NewSettlementUseCase,
	),
)

func NewWalletQueries(pool db.DBTX, ledger shared.WalletLedger, cfg config.Config) queries.WalletQueries {
	return queries.NewWalletQueries(pool, ledger, cfg.Wallet)
}
