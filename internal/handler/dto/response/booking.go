package response

import (
	"time"

	"cleanmarket/internal/usecase/commands"

	"github.com/google/uuid"
)

type SettlementResponse struct {
	BookingID           uuid.UUID `json:"bookingId"`
	PaymentMethod       string    `json:"paymentMethod"`
	IsCashReceived      bool      `json:"isCashReceived"`
	CashReceivedAmount  string    `json:"cashReceivedAmount"`
	Currency            string    `json:"currency"`
	CashReceivedAt      time.Time `json:"cashReceivedAt"`
	WalletTransactionID uuid.UUID `json:"walletTransactionId"`
}

func FromSettlementResult(r *commands.SettlementResult) SettlementResponse {
	return SettlementResponse{
		BookingID:           r.BookingID,
		PaymentMethod:       "cash",
		IsCashReceived:      true,
		CashReceivedAmount:  r.Payout.StringFixed(),
		Currency:            string(r.Payout.Currency()),
		CashReceivedAt:      r.ReceivedAt,
		WalletTransactionID: r.Transaction.ID,
	}
}
