package api

import (
	"net/http"

	reqdto "cleanmarket/internal/handler/dto/request"
	resdto "cleanmarket/internal/handler/dto/response"
	"cleanmarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromocodeHandler struct {
	promocodeQueries queries.PromocodeQueries
}

func NewPromocodeHandler(promocodeQueries queries.PromocodeQueries) *PromocodeHandler {
	return &PromocodeHandler{
		promocodeQueries: promocodeQueries,
	}
}

// @Summary Validate promocode
// @Description Check a promocode's eligibility, optionally with a trial price calculation
// @Tags promocodes
// @Accept json
// @Produce json
// @Param request body request.ValidatePromocodeRequest true "Validation request"
// @Success 200 {object} response.ValidatePromocodeResponse
// @Failure 400 {object} map[string]string
// @Router /promocodes/validate [post]
func (h *PromocodeHandler) ValidatePromocode(c *gin.Context) {
	var req reqdto.ValidatePromocodeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.promocodeQueries.Validate(c.Request.Context(), queries.ValidateRequest{
		Code:                 req.Code,
		ServiceID:            req.ServiceID,
		PricingID:            req.PricingID,
		Area:                 req.Area,
		ExtraIDs:             req.ExtraIDs,
		HasCleaningMaterials: req.HasCleaningMaterials,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidationView(view))
}
