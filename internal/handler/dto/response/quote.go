package response

import (
	"cleanmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	ServiceID      uuid.UUID  `json:"serviceId"`
	PromocodeID    *uuid.UUID `json:"promocodeId,omitempty"`
	SelectedAmount string     `json:"selectedAmount"`
	ExtrasAmount   string     `json:"extrasAmount"`
	DiscountAmount string     `json:"discountAmount"`
	TotalAmount    string     `json:"totalAmount"`
	Currency       string     `json:"currency"`
}

func FromQuoteView(v *queries.QuoteView) QuoteResponse {
	return QuoteResponse{
		ServiceID:      v.ServiceID,
		PromocodeID:    v.PromocodeID,
		SelectedAmount: v.SelectedAmount,
		ExtrasAmount:   v.ExtrasAmount,
		DiscountAmount: v.DiscountAmount,
		TotalAmount:    v.TotalAmount,
		Currency:       v.Currency,
	}
}
