package repository

import (
	"context"

	"cleanmarket/internal/infra"
	"cleanmarket/internal/infra/db"
	"cleanmarket/internal/pkg/pgconv"
	"cleanmarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const bookingForUpdateQuery = `
SELECT id, client_id, cleaner_id, status, payment_method, amount_minor, currency,
       promocode_id, cash_received_at, cash_received_amount_minor,
       cash_received_currency, cash_received_wallet_transaction_id
FROM bookings
WHERE id = $1
FOR UPDATE
`

// FindByIDForUpdate takes the row lock that serializes concurrent settlement
// attempts on the same booking.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap         shared.BookingSnapshot
		cleanerID    pgtype.UUID
		promocodeID  pgtype.UUID
		receivedAt   pgtype.Timestamptz
		cashMinor    pgtype.Int8
		cashCurrency pgtype.Text
		walletTxID   pgtype.UUID
	)
	err := dbtx.QueryRow(ctx, bookingForUpdateQuery, id).Scan(
		&snap.ID, &snap.ClientID, &cleanerID, &snap.Status, &snap.PaymentMethod,
		&snap.AmountMinor, &snap.Currency, &promocodeID,
		&receivedAt, &cashMinor, &cashCurrency, &walletTxID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	snap.CleanerID = pgconv.UUIDPtrFromPgtype(cleanerID)
	snap.PromocodeID = pgconv.UUIDPtrFromPgtype(promocodeID)
	snap.CashReceivedAt = pgconv.TimePtrFromPgtype(receivedAt)
	snap.CashAmountMinor = pgconv.Int64PtrFromPgtype(cashMinor)
	if cashCurrency.Valid {
		snap.CashCurrency = &cashCurrency.String
	}
	snap.WalletTransactionID = pgconv.UUIDPtrFromPgtype(walletTxID)

	return &snap, nil
}

const recordCashSettlementQuery = `
UPDATE bookings
SET status = $2,
    cash_received_at = $3,
    cash_received_amount_minor = $4,
    cash_received_currency = $5,
    cash_received_wallet_transaction_id = $6,
    updated_at = now()
WHERE id = $1 AND cash_received_at IS NULL
`

// RecordCashSettlement writes the four settlement columns in one statement.
// The guard on cash_received_at makes the write itself refuse a second
// settlement even if a caller skipped the row lock.
func (r *BookingRepository) RecordCashSettlement(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, record shared.CashSettlementRecord) error {
	tag, err := dbtx.Exec(ctx, recordCashSettlementQuery,
		bookingID, record.Status,
		pgconv.TimeToPgtype(record.ReceivedAt),
		record.AmountMinor, record.Currency,
		pgconv.UUIDToPgtype(record.WalletTransactionID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record cash settlement", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking already settled or missing", nil, infra.KindConflict)
	}
	return nil
}
