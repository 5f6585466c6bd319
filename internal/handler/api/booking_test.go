//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"cleanmarket/internal/domain/money"
	"cleanmarket/internal/domain/user"
	"cleanmarket/internal/handler/api"
	resdto "cleanmarket/internal/handler/dto/response"
	"cleanmarket/internal/pkg/errs"
	"cleanmarket/internal/usecase/commands"
	"cleanmarket/internal/usecase/shared"
	"cleanmarket/tests/common/httptest"
	commandsmock "cleanmarket/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSettlementCommands
	handler      *api.BookingHandler
	cleanerID    uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSettlementCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)
	s.cleanerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.cleanerID)
		c.Set("user_role", user.RoleCleaner)
		c.Next()
	}

	s.router.POST("/bookings/:id/cash-received", authMiddleware, s.handler.ConfirmCashReceived)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestConfirmCashReceived() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cash-received"

	payout := money.NewFromMinorUnits(12550, money.Currency("HUF"))
	txID := uuid.New()
	receivedAt := time.Date(2026, 4, 12, 10, 30, 0, 0, time.UTC)

	s.Run("success: returns 200 with settlement view", func() {
		s.mockCommands.EXPECT().
			ConfirmCashReceived(gomock.Any(), bookingID, s.cleanerID).
			Return(&commands.SettlementResult{
				BookingID:   bookingID,
				Payout:      payout,
				Transaction: &shared.WalletTransaction{ID: txID},
				ReceivedAt:  receivedAt,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var resp resdto.SettlementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(bookingID, resp.BookingID)
		s.Equal("125.50", resp.CashReceivedAmount)
		s.Equal("HUF", resp.Currency)
		s.Equal("cash", resp.PaymentMethod)
		s.True(resp.IsCashReceived)
		s.Equal(txID, resp.WalletTransactionID)
	})

	s.Run("already confirmed: returns 409", func() {
		s.mockCommands.EXPECT().
			ConfirmCashReceived(gomock.Any(), bookingID, s.cleanerID).
			Return(nil, errs.ErrCashAlreadyConfirmed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already confirmed")
	})

	s.Run("wrong status: returns 400", func() {
		s.mockCommands.EXPECT().
			ConfirmCashReceived(gomock.Any(), bookingID, s.cleanerID).
			Return(nil, errs.ErrInvalidBookingStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not in a settleable status")
	})

	s.Run("wrong cleaner: returns 403", func() {
		s.mockCommands.EXPECT().
			ConfirmCashReceived(gomock.Any(), bookingID, s.cleanerID).
			Return(nil, errs.ErrNotAssignedCleaner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another cleaner")
	})

	s.Run("unknown booking: returns 404", func() {
		s.mockCommands.EXPECT().
			ConfirmCashReceived(gomock.Any(), bookingID, s.cleanerID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("malformed booking id: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/cash-received", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})

	s.Run("missing token: returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
