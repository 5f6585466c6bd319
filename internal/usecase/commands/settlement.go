package commands

import (
	"context"
	"errors"
	"time"

	"cleanmarket/internal/domain/booking"
	"cleanmarket/internal/domain/money"
	"cleanmarket/internal/infra"
	"cleanmarket/internal/pkg/clock"
	"cleanmarket/internal/pkg/errs"
	"cleanmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type SettlementResult struct {
	BookingID   uuid.UUID
	Payout      money.Money
	Transaction *shared.WalletTransaction
	ReceivedAt  time.Time
}

type SettlementCommands interface {
	ConfirmCashReceived(ctx context.Context, bookingID, cleanerID uuid.UUID) (*SettlementResult, error)
}

type settlementUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSettlementUseCase(uow shared.UnitOfWork, clk clock.Clock) SettlementCommands {
	return &settlementUseCaseImpl{
		uow:   uow,
		clock: clk,
	}
}

// ConfirmCashReceived credits the cleaner's wallet for a cash hand-over, at
// most once per booking. The booking row is locked for the whole transaction:
// a concurrent attempt blocks on the lock, then observes the settlement fields
// already set and fails with ErrCashAlreadyConfirmed.
func (s *settlementUseCaseImpl) ConfirmCashReceived(ctx context.Context, bookingID, cleanerID uuid.UUID) (*SettlementResult, error) {
	var result *SettlementResult

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		b, err := bookingFromSnapshot(snap)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if !b.IsAssignedTo(cleanerID) {
			return errs.ErrNotAssignedCleaner
		}

		if err := b.EnsureSettleable(); err != nil {
			return mapSettleErr(err)
		}

		// The payout is the full booking amount; the platform fee is
		// informational and settled out of band.
		payout := b.Amount()

		walletTx, err := tx.Wallet().Deposit(ctx, tx.DB(), cleanerID, payout, map[string]any{
			"source":     "cash_on_delivery",
			"booking_id": bookingID.String(),
			"currency":   string(payout.Currency()),
		})
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		now := s.clock.Now()
		if _, err := b.ConfirmCashReceived(now, walletTx.ID); err != nil {
			return mapSettleErr(err)
		}

		record := shared.CashSettlementRecord{
			Status:              string(b.Status()),
			ReceivedAt:          now,
			AmountMinor:         payout.MinorUnits(),
			Currency:            string(payout.Currency()),
			WalletTransactionID: walletTx.ID,
		}
		if err := tx.Bookings().RecordCashSettlement(ctx, tx.DB(), bookingID, record); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrCashAlreadyConfirmed)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &SettlementResult{
			BookingID:   bookingID,
			Payout:      payout,
			Transaction: walletTx,
			ReceivedAt:  now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func mapSettleErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrAlreadySettled):
		return errs.Mark(err, errs.ErrCashAlreadyConfirmed)
	case errors.Is(err, booking.ErrNotConfirmed), errors.Is(err, booking.ErrNoAssignedCleaner):
		return errs.Mark(err, errs.ErrInvalidBookingStatus)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

func bookingFromSnapshot(snap *shared.BookingSnapshot) (*booking.Booking, error) {
	status, err := booking.NewStatus(snap.Status)
	if err != nil {
		return nil, err
	}
	method, err := booking.NewPaymentMethod(snap.PaymentMethod)
	if err != nil {
		return nil, err
	}
	currency, err := money.NewCurrency(snap.Currency)
	if err != nil {
		return nil, err
	}

	var settlement *booking.CashSettlement
	if snap.CashReceivedAt != nil && snap.CashAmountMinor != nil && snap.CashCurrency != nil && snap.WalletTransactionID != nil {
		cashCurrency, err := money.NewCurrency(*snap.CashCurrency)
		if err != nil {
			return nil, err
		}
		settlement = &booking.CashSettlement{
			ReceivedAt:          *snap.CashReceivedAt,
			Amount:              money.NewFromMinorUnits(*snap.CashAmountMinor, cashCurrency),
			WalletTransactionID: *snap.WalletTransactionID,
		}
	}

	return booking.Reconstruct(
		snap.ID, snap.ClientID, snap.CleanerID,
		status, method,
		money.NewFromMinorUnits(snap.AmountMinor, currency),
		snap.PromocodeID, settlement,
	), nil
}
