package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingSnapshot struct {
	ID                  uuid.UUID
	ClientID            uuid.UUID
	CleanerID           *uuid.UUID
	Status              string
	PaymentMethod       string
	AmountMinor         int64
	Currency            string
	PromocodeID         *uuid.UUID
	CashReceivedAt      *time.Time
	CashAmountMinor     *int64
	CashCurrency        *string
	WalletTransactionID *uuid.UUID
}

type ServiceSnapshot struct {
	ID                 uuid.UUID
	Name               string
	PricingModel       string
	PricePerMeterMinor int64
	MinArea            *int64
	Currency           string
}

type PricingTierSnapshot struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID
	MinArea     int64
	MaxArea     int64
	AmountMinor int64
	Currency    string
}

type ExtraSnapshot struct {
	ID          uuid.UUID
	Name        string
	AmountMinor int64
	Currency    string
}

type PromocodeSnapshot struct {
	ID                 uuid.UUID
	Code               string
	DiscountPercentage decimal.Decimal
	MaxDiscountMinor   int64
	Currency           string
	StartsAt           *time.Time
	ExpiresAt          *time.Time
	MaxGlobalUses      *int32
}

type WalletTransaction struct {
	ID          uuid.UUID
	WalletID    uuid.UUID
	Type        string
	AmountMinor int64
	Currency    string
	Confirmed   bool
	Meta        map[string]any
	CreatedAt   time.Time
}
