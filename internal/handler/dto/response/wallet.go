package response

import (
	"time"

	"cleanmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type WalletResponse struct {
	WalletID           uuid.UUID                   `json:"walletId"`
	Balance            string                      `json:"balance"`
	Currency           string                      `json:"currency"`
	PlatformFeePercent int                         `json:"platformFeePercent"`
	Transactions       []WalletTransactionResponse `json:"transactions"`
}

type WalletTransactionResponse struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Amount    string         `json:"amount"`
	Currency  string         `json:"currency"`
	Confirmed bool           `json:"confirmed"`
	Meta      map[string]any `json:"meta,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func FromWalletView(v *queries.WalletView) WalletResponse {
	txs := make([]WalletTransactionResponse, 0, len(v.Transactions))
	for _, tx := range v.Transactions {
		txs = append(txs, WalletTransactionResponse{
			ID:        tx.ID,
			Type:      tx.Type,
			Amount:    tx.Amount,
			Currency:  tx.Currency,
			Confirmed: tx.Confirmed,
			Meta:      tx.Meta,
			CreatedAt: tx.CreatedAt,
		})
	}
	return WalletResponse{
		WalletID:           v.WalletID,
		Balance:            v.Balance,
		Currency:           v.Currency,
		PlatformFeePercent: v.PlatformFeePercent,
		Transactions:       txs,
	}
}
