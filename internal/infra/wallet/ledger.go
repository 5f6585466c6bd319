package wallet

import (
	"context"

	"cleanmarket/internal/domain/money"
	"cleanmarket/internal/infra"
	"cleanmarket/internal/infra/db"
	"cleanmarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	txTypeDeposit  = "deposit"
	txTypeWithdraw = "withdraw"
)

// Ledger is the append-only wallet transaction store. Balances are derived,
// never stored: a wallet's balance is the sum of its confirmed transactions.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

const depositQuery = `
INSERT INTO wallet_transactions (id, wallet_id, type, amount_minor, currency, confirmed, meta)
VALUES ($1, $2, $3, $4, $5, TRUE, $6)
RETURNING id, wallet_id, type, amount_minor, currency, confirmed, meta, created_at
`

func (l *Ledger) Deposit(ctx context.Context, dbtx db.DBTX, walletID uuid.UUID, amount money.Money, meta map[string]any) (*shared.WalletTransaction, error) {
	var tx shared.WalletTransaction
	err := dbtx.QueryRow(ctx, depositQuery,
		uuid.New(), walletID, txTypeDeposit, amount.MinorUnits(), string(amount.Currency()), meta,
	).Scan(
		&tx.ID, &tx.WalletID, &tx.Type, &tx.AmountMinor, &tx.Currency,
		&tx.Confirmed, &tx.Meta, &tx.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to record wallet deposit", err)
	}
	return &tx, nil
}

const balanceQuery = `
SELECT COALESCE(SUM(CASE WHEN type = 'deposit' THEN amount_minor ELSE -amount_minor END), 0)
FROM wallet_transactions
WHERE wallet_id = $1 AND currency = $2 AND confirmed
`

func (l *Ledger) Balance(ctx context.Context, dbtx db.DBTX, walletID uuid.UUID, currency money.Currency) (money.Money, error) {
	var minor int64
	if err := dbtx.QueryRow(ctx, balanceQuery, walletID, string(currency)).Scan(&minor); err != nil {
		return money.Money{}, infra.WrapRepoErr("failed to read wallet balance", err)
	}
	return money.NewFromMinorUnits(minor, currency), nil
}

const transactionsByWalletQuery = `
SELECT id, wallet_id, type, amount_minor, currency, confirmed, meta, created_at
FROM wallet_transactions
WHERE wallet_id = $1
ORDER BY created_at DESC
LIMIT $2
`

func (l *Ledger) TransactionsByWallet(ctx context.Context, dbtx db.DBTX, walletID uuid.UUID, limit int32) ([]shared.WalletTransaction, error) {
	rows, err := dbtx.Query(ctx, transactionsByWalletQuery, walletID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wallet transactions", err)
	}

	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.WalletTransaction, error) {
		var tx shared.WalletTransaction
		err := row.Scan(
			&tx.ID, &tx.WalletID, &tx.Type, &tx.AmountMinor, &tx.Currency,
			&tx.Confirmed, &tx.Meta, &tx.CreatedAt,
		)
		return tx, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan wallet transactions", err)
	}
	return txs, nil
}
