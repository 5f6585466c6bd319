package api

import (
	"errors"
	"net/http"

	"cleanmarket/internal/domain/money"
	"cleanmarket/internal/domain/pricing"
	"cleanmarket/internal/domain/promocode"
	reqdto "cleanmarket/internal/handler/dto/request"
	resdto "cleanmarket/internal/handler/dto/response"
	"cleanmarket/internal/pkg/errs"
	"cleanmarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteQueries queries.QuoteQueries
}

func NewQuoteHandler(quoteQueries queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteQueries: quoteQueries,
	}
}

// @Summary Calculate booking price
// @Description Price a service/extras/promocode combination without creating a booking
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body request.QuoteRequest true "Quote request"
// @Success 200 {object} response.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.quoteQueries.Quote(c.Request.Context(), queries.QuoteRequest{
		ServiceID:            req.ServiceID,
		PricingID:            req.PricingID,
		Area:                 req.Area,
		ExtraIDs:             req.ExtraIDs,
		HasCleaningMaterials: req.HasCleaningMaterials,
		PromoCode:            req.PromoCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, errs.ErrPricingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pricing not found",
			})
		case errors.Is(err, errs.ErrExtraNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Extra not found",
			})
		case errors.Is(err, errs.ErrPromocodeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Promocode not found",
			})
		case errors.Is(err, promocode.ErrNotYetActive), errors.Is(err, promocode.ErrExpired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Promocode is not active",
			})
		case errors.Is(err, promocode.ErrUsageLimitReached):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Promocode usage limit reached",
			})
		case errors.Is(err, pricing.ErrMissingPricing):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Pricing tier is required for this service",
			})
		case errors.Is(err, pricing.ErrPricingServiceMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Pricing tier belongs to a different service",
			})
		case errors.Is(err, pricing.ErrMissingArea):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Area is required for this service",
			})
		case errors.Is(err, pricing.ErrAreaBelowMinimum):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Area is below the service minimum",
			})
		case errors.Is(err, money.ErrCurrencyMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Currency mismatch",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
