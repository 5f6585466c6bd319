package shared

import (
	"context"
	"time"

	"cleanmarket/internal/domain/money"
	"cleanmarket/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Wallet() WalletLedger
	DB() db.DBTX
}

type BookingRepository interface {
	// FindByIDForUpdate locks the booking row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	RecordCashSettlement(ctx context.Context, db db.DBTX, bookingID uuid.UUID, record CashSettlementRecord) error
}

type WalletLedger interface {
	Deposit(ctx context.Context, db db.DBTX, walletID uuid.UUID, amount money.Money, meta map[string]any) (*WalletTransaction, error)
	Balance(ctx context.Context, db db.DBTX, walletID uuid.UUID, currency money.Currency) (money.Money, error)
	TransactionsByWallet(ctx context.Context, db db.DBTX, walletID uuid.UUID, limit int32) ([]WalletTransaction, error)
}

// CashSettlementRecord is what gets persisted when a cash hand-over completes:
// the new status plus the all-or-none settlement columns.
type CashSettlementRecord struct {
	Status              string
	ReceivedAt          time.Time
	AmountMinor         int64
	Currency            string
	WalletTransactionID uuid.UUID
}
