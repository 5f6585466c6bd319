package response

import (
	"time"

	"cleanmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type ValidatePromocodeResponse struct {
	Valid    bool              `json:"valid"`
	Reason   *string           `json:"reason"`
	Pricing  *QuoteResponse    `json:"pricing"`
	Includes *IncludesResponse `json:"includes,omitempty"`
}

type IncludesResponse struct {
	Promocode PromocodeResponse `json:"promocode"`
}

type PromocodeResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Code               string     `json:"code"`
	DiscountPercentage string     `json:"discountPercentage"`
	MaxDiscountAmount  string     `json:"maxDiscountAmount"`
	Currency           string     `json:"currency"`
	StartsAt           *time.Time `json:"startsAt,omitempty"`
	ExpiresAt          *time.Time `json:"expiresAt,omitempty"`
}

func FromValidationView(v *queries.PromocodeValidationView) ValidatePromocodeResponse {
	resp := ValidatePromocodeResponse{
		Valid:  v.Valid,
		Reason: v.Reason,
	}
	if v.Pricing != nil {
		pricing := FromQuoteView(v.Pricing)
		resp.Pricing = &pricing
	}
	if v.Includes != nil {
		resp.Includes = &IncludesResponse{
			Promocode: PromocodeResponse{
				ID:                 v.Includes.Promocode.ID,
				Code:               v.Includes.Promocode.Code,
				DiscountPercentage: v.Includes.Promocode.DiscountPercentage,
				MaxDiscountAmount:  v.Includes.Promocode.MaxDiscountAmount,
				Currency:           v.Includes.Promocode.Currency,
				StartsAt:           v.Includes.Promocode.StartsAt,
				ExpiresAt:          v.Includes.Promocode.ExpiresAt,
			},
		}
	}
	return resp
}
