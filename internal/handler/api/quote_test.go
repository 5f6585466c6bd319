//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"cleanmarket/internal/domain/pricing"
	"cleanmarket/internal/handler/api"
	reqdto "cleanmarket/internal/handler/dto/request"
	resdto "cleanmarket/internal/handler/dto/response"
	"cleanmarket/internal/pkg/errs"
	"cleanmarket/internal/usecase/queries"
	"cleanmarket/tests/common/httptest"
	queriesmock "cleanmarket/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockQuoteQueries
	handler     *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockQueries)

	s.router.POST("/quotes", s.handler.CreateQuote)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) TestCreateQuote() {
	serviceID := uuid.New()
	area := int64(50)
	reqBody := reqdto.QuoteRequest{ServiceID: serviceID, Area: &area}

	s.Run("success: returns 200 with 2-dp amounts", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(&queries.QuoteView{
				ServiceID:      serviceID,
				SelectedAmount: "5000.00",
				ExtrasAmount:   "0.00",
				DiscountAmount: "0.00",
				TotalAmount:    "5000.00",
				Currency:       "HUF",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", reqBody, "")

		var resp resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("5000.00", resp.SelectedAmount)
		s.Equal("5000.00", resp.TotalAmount)
		s.Equal("HUF", resp.Currency)
	})

	s.Run("unknown service: returns 404", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})

	s.Run("calculation error: returns 422", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, pricing.ErrMissingArea).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Area is required")
	})

	s.Run("missing service id: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", map[string]any{"area": 50}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
