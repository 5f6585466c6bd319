package api

import (
	"errors"
	"net/http"

	resdto "cleanmarket/internal/handler/dto/response"
	"cleanmarket/internal/handler/middleware"
	"cleanmarket/internal/pkg/errs"
	"cleanmarket/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	settlementCommands commands.SettlementCommands
}

func NewBookingHandler(settlementCommands commands.SettlementCommands) *BookingHandler {
	return &BookingHandler{
		settlementCommands: settlementCommands,
	}
}

// @Summary Confirm cash received
// @Description Record a cash hand-over for a booking and credit the cleaner's wallet, at most once
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} response.SettlementResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cash-received [post]
func (h *BookingHandler) ConfirmCashReceived(c *gin.Context) {
	cleanerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking id",
		})
		return
	}

	result, err := h.settlementCommands.ConfirmCashReceived(c.Request.Context(), bookingID, cleanerID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrCashAlreadyConfirmed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cash already confirmed for this booking",
			})
		case errors.Is(err, errs.ErrNotAssignedCleaner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking is assigned to another cleaner",
			})
		case errors.Is(err, errs.ErrInvalidBookingStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking is not in a settleable status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettlementResult(result))
}
