//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"cleanmarket/internal/domain/money"
	"cleanmarket/internal/infra"
	"cleanmarket/internal/infra/db"
	"cleanmarket/internal/pkg/clock"
	"cleanmarket/internal/pkg/errs"
	"cleanmarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const huf = "HUF"

type fakeBookingRepo struct {
	snapshot  *shared.BookingSnapshot
	findErr   error
	recorded  []shared.CashSettlementRecord
	recordErr error
}

func (f *fakeBookingRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, _ uuid.UUID) (*shared.BookingSnapshot, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.snapshot, nil
}

func (f *fakeBookingRepo) RecordCashSettlement(_ context.Context, _ db.DBTX, _ uuid.UUID, record shared.CashSettlementRecord) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, record)
	// Mirror the write back into the snapshot so a second call inside the
	// same fake observes the settled state, like a real locked row would.
	f.snapshot.Status = record.Status
	f.snapshot.CashReceivedAt = &record.ReceivedAt
	f.snapshot.CashAmountMinor = &record.AmountMinor
	f.snapshot.CashCurrency = &record.Currency
	txID := record.WalletTransactionID
	f.snapshot.WalletTransactionID = &txID
	return nil
}

type fakeLedger struct {
	deposits   []shared.WalletTransaction
	depositErr error
}

func (f *fakeLedger) Deposit(_ context.Context, _ db.DBTX, walletID uuid.UUID, amount money.Money, meta map[string]any) (*shared.WalletTransaction, error) {
	if f.depositErr != nil {
		return nil, f.depositErr
	}
	tx := shared.WalletTransaction{
		ID:          uuid.New(),
		WalletID:    walletID,
		Type:        "deposit",
		AmountMinor: amount.MinorUnits(),
		Currency:    string(amount.Currency()),
		Confirmed:   true,
		Meta:        meta,
	}
	f.deposits = append(f.deposits, tx)
	return &tx, nil
}

func (f *fakeLedger) Balance(_ context.Context, _ db.DBTX, _ uuid.UUID, currency money.Currency) (money.Money, error) {
	total := money.Zero(currency)
	for _, d := range f.deposits {
		if d.Currency != string(currency) {
			continue
		}
		next, err := total.Add(money.NewFromMinorUnits(d.AmountMinor, currency))
		if err != nil {
			return money.Money{}, err
		}
		total = next
	}
	return total, nil
}

func (f *fakeLedger) TransactionsByWallet(_ context.Context, _ db.DBTX, _ uuid.UUID, _ int32) ([]shared.WalletTransaction, error) {
	return f.deposits, nil
}

type fakeTx struct {
	bookings *fakeBookingRepo
	ledger   *fakeLedger
}

func (f *fakeTx) Bookings() shared.BookingRepository { return f.bookings }
func (f *fakeTx) Wallet() shared.WalletLedger        { return f.ledger }
func (f *fakeTx) DB() db.DBTX                        { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, f.tx)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func confirmedSnapshot(bookingID, cleanerID uuid.UUID, amountMinor int64) *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:            bookingID,
		ClientID:      uuid.New(),
		CleanerID:     &cleanerID,
		Status:        "confirmed",
		PaymentMethod: "cash",
		AmountMinor:   amountMinor,
		Currency:      huf,
	}
}

func newSettlementFixture(snapshot *shared.BookingSnapshot) (SettlementCommands, *fakeBookingRepo, *fakeLedger, *clock.MockClock) {
	bookings := &fakeBookingRepo{snapshot: snapshot}
	ledger := &fakeLedger{}
	clk := clock.NewMockClock(time.Date(2026, 4, 12, 10, 30, 0, 0, time.UTC))
	uc := NewSettlementUseCase(&fakeUoW{tx: &fakeTx{bookings: bookings, ledger: ledger}}, clk)
	return uc, bookings, ledger, clk
}

func TestConfirmCashReceived(t *testing.T) {
	ctx := context.Background()

	t.Run("credits the wallet with the full booking amount", func(t *testing.T) {
		bookingID, cleanerID := uuid.New(), uuid.New()
		uc, bookings, ledger, clk := newSettlementFixture(confirmedSnapshot(bookingID, cleanerID, 12550))

		result, err := uc.ConfirmCashReceived(ctx, bookingID, cleanerID)
		require.NoError(t, err)

		assert.Equal(t, bookingID, result.BookingID)
		assert.Equal(t, "125.50", result.Payout.StringFixed())
		assert.Equal(t, clk.Now(), result.ReceivedAt)

		require.Len(t, ledger.deposits, 1)
		deposit := ledger.deposits[0]
		assert.Equal(t, cleanerID, deposit.WalletID)
		assert.Equal(t, int64(12550), deposit.AmountMinor)
		assert.Equal(t, "cash_on_delivery", deposit.Meta["source"])
		assert.Equal(t, bookingID.String(), deposit.Meta["booking_id"])
		assert.Equal(t, huf, deposit.Meta["currency"])

		require.Len(t, bookings.recorded, 1)
		record := bookings.recorded[0]
		assert.Equal(t, "completed", record.Status)
		assert.Equal(t, int64(12550), record.AmountMinor)
		assert.Equal(t, deposit.ID, record.WalletTransactionID)
	})

	t.Run("second call is rejected and the wallet is credited once", func(t *testing.T) {
		bookingID, cleanerID := uuid.New(), uuid.New()
		uc, bookings, ledger, _ := newSettlementFixture(confirmedSnapshot(bookingID, cleanerID, 12550))

		_, err := uc.ConfirmCashReceived(ctx, bookingID, cleanerID)
		require.NoError(t, err)

		_, err = uc.ConfirmCashReceived(ctx, bookingID, cleanerID)
		assert.ErrorIs(t, err, errs.ErrCashAlreadyConfirmed)

		assert.Len(t, ledger.deposits, 1)
		assert.Len(t, bookings.recorded, 1)

		balance, err := ledger.Balance(ctx, nil, cleanerID, money.Currency(huf))
		require.NoError(t, err)
		assert.Equal(t, "125.50", balance.StringFixed())
	})

	t.Run("unknown booking", func(t *testing.T) {
		bookingID, cleanerID := uuid.New(), uuid.New()
		uc, bookings, _, _ := newSettlementFixture(nil)
		bookings.findErr = infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)

		_, err := uc.ConfirmCashReceived(ctx, bookingID, cleanerID)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("another cleaner cannot settle", func(t *testing.T) {
		bookingID, cleanerID := uuid.New(), uuid.New()
		uc, _, ledger, _ := newSettlementFixture(confirmedSnapshot(bookingID, cleanerID, 12550))

		_, err := uc.ConfirmCashReceived(ctx, bookingID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrNotAssignedCleaner)
		assert.Empty(t, ledger.deposits)
	})

	t.Run("wrong booking status", func(t *testing.T) {
		for _, status := range []string{"pending", "completed", "cancelled"} {
			bookingID, cleanerID := uuid.New(), uuid.New()
			snap := confirmedSnapshot(bookingID, cleanerID, 12550)
			snap.Status = status
			uc, _, ledger, _ := newSettlementFixture(snap)

			_, err := uc.ConfirmCashReceived(ctx, bookingID, cleanerID)
			assert.ErrorIs(t, err, errs.ErrInvalidBookingStatus, status)
			assert.Empty(t, ledger.deposits, status)
		}
	})

	t.Run("guarded write conflict maps to already confirmed", func(t *testing.T) {
		bookingID, cleanerID := uuid.New(), uuid.New()
		uc, bookings, _, _ := newSettlementFixture(confirmedSnapshot(bookingID, cleanerID, 12550))
		bookings.recordErr = infra.WrapRepoErr("booking already settled", nil, infra.KindConflict)

		_, err := uc.ConfirmCashReceived(ctx, bookingID, cleanerID)
		assert.ErrorIs(t, err, errs.ErrCashAlreadyConfirmed)
	})
}
