//go:build e2e

package e2e

import (
	"net/http"
	"testing"

	"cleanmarket/internal/domain/user"
	"cleanmarket/internal/handler/dto/response"
	"cleanmarket/tests/common/authtest"
	"cleanmarket/tests/common/dbtest"
	"cleanmarket/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SettlementSuite struct {
	SharedSuite
}

func TestSettlementSuite(t *testing.T) {
	suite.Run(t, new(SettlementSuite))
}

type settlementFixture struct {
	bookingID    uuid.UUID
	cleanerID    uuid.UUID
	cleanerToken string
}

// confirmed cash booking of 12550 minor units assigned to a fresh cleaner
func (s *SettlementSuite) createConfirmedCashBooking() settlementFixture {
	t := s.T()

	clientID := dbtest.CreateTestUser(t, s.DB, "client@example.com", "client")
	cleanerID := dbtest.CreateTestUser(t, s.DB, "cleaner@example.com", "cleaner")
	ppm := int64(5000)
	serviceID := dbtest.CreateTestService(t, s.DB, "Deep Cleaning", "price_per_meter", &ppm, nil)

	bookingID := dbtest.CreateTestBooking(t, s.DB, dbtest.BookingParams{
		ClientID:      clientID,
		CleanerID:     &cleanerID,
		ServiceID:     serviceID,
		Status:        "confirmed",
		PaymentMethod: "cash",
		AmountMinor:   12550,
	})

	token := authtest.TokenFor(t, authtest.NewTokenService(), cleanerID, user.RoleCleaner)

	return settlementFixture{
		bookingID:    bookingID,
		cleanerID:    cleanerID,
		cleanerToken: token,
	}
}

func (s *SettlementSuite) confirmCashReceived(f settlementFixture) *response.SettlementResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/bookings/"+f.bookingID.String()+"/cash-received", nil, f.cleanerToken)

	var body response.SettlementResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	return &body
}

func (s *SettlementSuite) fetchWallet(token string) *response.WalletResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/cleaners/me/wallet", nil, token)

	var body response.WalletResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	return &body
}

func (s *SettlementSuite) TestConfirmCashReceived() {
	s.Run("credits the cleaner wallet with the full booking amount", func() {
		f := s.createConfirmedCashBooking()

		body := s.confirmCashReceived(f)

		s.Equal(f.bookingID, body.BookingID)
		s.Equal("cash", body.PaymentMethod)
		s.True(body.IsCashReceived)
		s.Equal("125.50", body.CashReceivedAmount)
		s.Equal("HUF", body.Currency)
		s.NotEqual(uuid.Nil, body.WalletTransactionID)

		wallet := s.fetchWallet(f.cleanerToken)
		s.Equal(f.cleanerID, wallet.WalletID)
		s.Equal("125.50", wallet.Balance)
		require.Len(s.T(), wallet.Transactions, 1)
		s.Equal("deposit", wallet.Transactions[0].Type)
		s.Equal("125.50", wallet.Transactions[0].Amount)
		s.Equal(body.WalletTransactionID, wallet.Transactions[0].ID)
		s.Equal("cash_on_delivery", wallet.Transactions[0].Meta["source"])
		s.Equal(f.bookingID.String(), wallet.Transactions[0].Meta["booking_id"])
	})

	s.Run("second confirmation conflicts and leaves the balance unchanged", func() {
		f := s.createConfirmedCashBooking()

		s.confirmCashReceived(f)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/bookings/"+f.bookingID.String()+"/cash-received", nil, f.cleanerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already confirmed")

		wallet := s.fetchWallet(f.cleanerToken)
		s.Equal("125.50", wallet.Balance)
		s.Len(wallet.Transactions, 1)
	})

	s.Run("rejects a cleaner who is not assigned to the booking", func() {
		f := s.createConfirmedCashBooking()
		otherID := dbtest.CreateTestUser(s.T(), s.DB, "other-cleaner@example.com", "cleaner")
		otherToken := authtest.TokenFor(s.T(), authtest.NewTokenService(), otherID, user.RoleCleaner)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/bookings/"+f.bookingID.String()+"/cash-received", nil, otherToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})

	s.Run("rejects a booking that is not confirmed", func() {
		f := s.createConfirmedCashBooking()
		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE bookings SET status = 'pending' WHERE id = $1", f.bookingID)
		require.NoError(s.T(), err)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/bookings/"+f.bookingID.String()+"/cash-received", nil, f.cleanerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("returns 404 for an unknown booking", func() {
		f := s.createConfirmedCashBooking()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/bookings/"+uuid.NewString()+"/cash-received", nil, f.cleanerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("requires authentication", func() {
		f := s.createConfirmedCashBooking()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/bookings/"+f.bookingID.String()+"/cash-received", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects client role", func() {
		f := s.createConfirmedCashBooking()
		clientID := dbtest.CreateTestUser(s.T(), s.DB, "another-client@example.com", "client")
		clientToken := authtest.TokenFor(s.T(), authtest.NewTokenService(), clientID, user.RoleClient)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/bookings/"+f.bookingID.String()+"/cash-received", nil, clientToken)
		s.Equal(http.StatusForbidden, w.Code)
	})
}
