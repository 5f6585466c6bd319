package queries

import (
	"context"

	"cleanmarket/internal/domain/money"
	"cleanmarket/internal/infra/db"
	"cleanmarket/internal/pkg/config"
	"cleanmarket/internal/pkg/errs"
	"cleanmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

const walletTransactionLimit = 50

type WalletQueries interface {
	CleanerWallet(ctx context.Context, cleanerID uuid.UUID) (*WalletView, error)
}

type walletQueriesImpl struct {
	pool   db.DBTX
	ledger shared.WalletLedger
	cfg    config.WalletConfig
}

func NewWalletQueries(pool db.DBTX, ledger shared.WalletLedger, cfg config.WalletConfig) WalletQueries {
	return &walletQueriesImpl{
		pool:   pool,
		ledger: ledger,
		cfg:    cfg,
	}
}

// CleanerWallet reads the ledger for the cleaner's wallet. The wallet id is
// the cleaner's user id; the platform fee is informational only.
func (q *walletQueriesImpl) CleanerWallet(ctx context.Context, cleanerID uuid.UUID) (*WalletView, error) {
	currency, err := money.NewCurrency(q.cfg.Currency)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	balance, err := q.ledger.Balance(ctx, q.pool, cleanerID, currency)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	txs, err := q.ledger.TransactionsByWallet(ctx, q.pool, cleanerID, walletTransactionLimit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]WalletTransactionView, 0, len(txs))
	for _, tx := range txs {
		txCurrency, err := money.NewCurrency(tx.Currency)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		views = append(views, WalletTransactionView{
			ID:        tx.ID,
			Type:      tx.Type,
			Amount:    money.NewFromMinorUnits(tx.AmountMinor, txCurrency).StringFixed(),
			Currency:  tx.Currency,
			Confirmed: tx.Confirmed,
			Meta:      tx.Meta,
			CreatedAt: tx.CreatedAt,
		})
	}

	return &WalletView{
		WalletID:           cleanerID,
		Balance:            balance.StringFixed(),
		Currency:           string(currency),
		PlatformFeePercent: q.cfg.PlatformFeePercent,
		Transactions:       views,
	}, nil
}
