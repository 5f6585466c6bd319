package request

import "github.com/google/uuid"

type ValidatePromocodeRequest struct {
	Code string `json:"code" binding:"required"`

	// Optional booking parameters for a trial price calculation.
	ServiceID            *uuid.UUID  `json:"service_id"`
	PricingID            *uuid.UUID  `json:"pricing_id"`
	Area                 *int64      `json:"area" binding:"omitempty,min=1"`
	ExtraIDs             []uuid.UUID `json:"extra_ids"`
	HasCleaningMaterials bool        `json:"has_cleaning_materials"`
}
