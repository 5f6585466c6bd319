package booking

import (
	"errors"
	"time"

	"cleanmarket/internal/domain/money"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var ErrInvalidStatus = errors.New("invalid booking status")

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

func NewPaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCard:
		return PaymentMethod(s), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// CashSettlement records a completed cash hand-over. All three fields are set
// together or not at all.
type CashSettlement struct {
	ReceivedAt          time.Time
	Amount              money.Money
	WalletTransactionID uuid.UUID
}

var (
	ErrAlreadySettled    = errors.New("cash already confirmed for this booking")
	ErrNotConfirmed      = errors.New("booking is not in confirmed status")
	ErrNoAssignedCleaner = errors.New("booking has no assigned cleaner")
)

type Booking struct {
	id            uuid.UUID
	clientID      uuid.UUID
	cleanerID     *uuid.UUID
	status        Status
	paymentMethod PaymentMethod
	amount        money.Money
	promocodeID   *uuid.UUID
	settlement    *CashSettlement
}

// Reconstruct rebuilds a booking from persisted state. It trusts the store
// and does not re-run creation validation.
func Reconstruct(
	id, clientID uuid.UUID,
	cleanerID *uuid.UUID,
	status Status,
	paymentMethod PaymentMethod,
	amount money.Money,
	promocodeID *uuid.UUID,
	settlement *CashSettlement,
) *Booking {
	return &Booking{
		id:            id,
		clientID:      clientID,
		cleanerID:     cleanerID,
		status:        status,
		paymentMethod: paymentMethod,
		amount:        amount,
		promocodeID:   promocodeID,
		settlement:    settlement,
	}
}

// EnsureSettleable checks the preconditions for confirming a cash hand-over.
// Idempotence first: a booking that has already been settled reports
// ErrAlreadySettled regardless of its current status.
func (b *Booking) EnsureSettleable() error {
	if b.settlement != nil {
		return ErrAlreadySettled
	}
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if b.cleanerID == nil {
		return ErrNoAssignedCleaner
	}
	return nil
}

// ConfirmCashReceived marks the booking settled and returns the cleaner's
// payout. The payout is the full booking amount; the platform fee is settled
// out of band.
func (b *Booking) ConfirmCashReceived(now time.Time, txID uuid.UUID) (money.Money, error) {
	if err := b.EnsureSettleable(); err != nil {
		return money.Money{}, err
	}
	b.status = StatusCompleted
	b.settlement = &CashSettlement{
		ReceivedAt:          now,
		Amount:              b.amount,
		WalletTransactionID: txID,
	}
	return b.amount, nil
}

func (b *Booking) IsCashReceived() bool {
	return b.settlement != nil
}

func (b *Booking) IsAssignedTo(cleanerID uuid.UUID) bool {
	return b.cleanerID != nil && *b.cleanerID == cleanerID
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ClientID() uuid.UUID          { return b.clientID }
func (b *Booking) CleanerID() *uuid.UUID        { return b.cleanerID }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentMethod() PaymentMethod { return b.paymentMethod }
func (b *Booking) Amount() money.Money          { return b.amount }
func (b *Booking) PromocodeID() *uuid.UUID      { return b.promocodeID }
func (b *Booking) Settlement() *CashSettlement  { return b.settlement }
