package request

import "github.com/google/uuid"

type QuoteRequest struct {
	ServiceID            uuid.UUID   `json:"service_id" binding:"required"`
	PricingID            *uuid.UUID  `json:"pricing_id"`
	Area                 *int64      `json:"area" binding:"omitempty,min=1"`
	ExtraIDs             []uuid.UUID `json:"extra_ids"`
	HasCleaningMaterials bool        `json:"has_cleaning_materials"`
	PromoCode            *string     `json:"promocode"`
}
