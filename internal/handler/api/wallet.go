package api

import (
	"net/http"

	resdto "cleanmarket/internal/handler/dto/response"
	"cleanmarket/internal/handler/middleware"
	"cleanmarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletQueries queries.WalletQueries
}

func NewWalletHandler(walletQueries queries.WalletQueries) *WalletHandler {
	return &WalletHandler{
		walletQueries: walletQueries,
	}
}

// @Summary Get cleaner wallet
// @Description Current balance and recent transactions for the authenticated cleaner
// @Tags cleaners
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.WalletResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /cleaners/me/wallet [get]
func (h *WalletHandler) GetMyWallet(c *gin.Context) {
	cleanerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.walletQueries.CleanerWallet(c.Request.Context(), cleanerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalletView(view))
}
