package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type QuoteView struct {
	ServiceID      uuid.UUID  `json:"service_id"`
	PromocodeID    *uuid.UUID `json:"promocode_id,omitempty"`
	SelectedAmount string     `json:"selected_amount"`
	ExtrasAmount   string     `json:"extras_amount"`
	DiscountAmount string     `json:"discount_amount"`
	TotalAmount    string     `json:"total_amount"`
	Currency       string     `json:"currency"`
}

type PromocodeValidationView struct {
	Valid    bool               `json:"valid"`
	Reason   *string            `json:"reason"`
	Pricing  *QuoteView         `json:"pricing"`
	Includes *PromocodeIncludes `json:"includes,omitempty"`
}

type PromocodeIncludes struct {
	Promocode PromocodeView `json:"promocode"`
}

type PromocodeView struct {
	ID                 uuid.UUID  `json:"id"`
	Code               string     `json:"code"`
	DiscountPercentage string     `json:"discount_percentage"`
	MaxDiscountAmount  string     `json:"max_discount_amount"`
	Currency           string     `json:"currency"`
	StartsAt           *time.Time `json:"starts_at,omitempty"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
}

type WalletView struct {
	WalletID           uuid.UUID               `json:"wallet_id"`
	Balance            string                  `json:"balance"`
	Currency           string                  `json:"currency"`
	PlatformFeePercent int                     `json:"platform_fee_percent"`
	Transactions       []WalletTransactionView `json:"transactions"`
}

type WalletTransactionView struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Amount    string         `json:"amount"`
	Currency  string         `json:"currency"`
	Confirmed bool           `json:"confirmed"`
	Meta      map[string]any `json:"meta,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
