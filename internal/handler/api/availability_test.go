//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"escape-booking/internal/domain/availability"
	"escape-booking/internal/domain/booking"
	"escape-booking/internal/domain/property"
	"escape-booking/internal/handler/api"
	resdto "escape-booking/internal/handler/dto/response"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/errs"
	"escape-booking/internal/usecase/shared"
	"escape-booking/tests/common/httptest"
	queriesmock "escape-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/properties/:id/availability", s.handler.Check)
	s.router.GET("/properties/:id/blocked-dates", s.handler.BlockedDates)
	s.router.GET("/properties/:id/next-available", s.handler.NextAvailable)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestCheck() {
	s.Run("available", func() {
		s.mockQueries.EXPECT().
			Check(gomock.Any(), property.ID(3), calendar.MustParse("2026-03-08"), calendar.MustParse("2026-03-10")).
			Return(availability.Result{Available: true, ConflictingBookings: []booking.ID{}}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/3/availability?checkIn=2026-03-08&checkOut=2026-03-10", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"available": true, "conflictingBookings": []}`, w.Body.String())
	})

	s.Run("conflict", func() {
		s.mockQueries.EXPECT().Check(gomock.Any(), property.ID(3), gomock.Any(), gomock.Any()).
			Return(availability.Result{Reason: availability.ReasonDatesUnavailable, ConflictingBookings: []booking.ID{12}}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/3/availability?checkIn=2026-03-07&checkOut=2026-03-10", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"available": false, "reason": "dates unavailable", "conflictingBookings": [12]}`, w.Body.String())
	})

	s.Run("malformed dates are unavailable, not an error", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/3/availability?checkIn=soon&checkOut=2026-03-10", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"available": false, "reason": "invalid date range", "conflictingBookings": []}`, w.Body.String())
	})

	s.Run("non-numeric property id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/abc/availability?checkIn=2026-03-08&checkOut=2026-03-10", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"available": false, "reason": "property not found", "conflictingBookings": []}`, w.Body.String())
	})
}

func (s *AvailabilityHandlerTestSuite) TestBlockedDates() {
	s.Run("ranges", func() {
		s.mockQueries.EXPECT().BlockedDates(gomock.Any(), property.ID(3)).Return([]availability.BlockedRange{
			{BookingID: 5, Range: calendar.Range{CheckIn: calendar.MustParse("2026-04-01"), CheckOut: calendar.MustParse("2026-04-03")}},
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/3/blocked-dates", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`[{"bookingId": 5, "checkIn": "2026-04-01", "checkOut": "2026-04-03"}]`, w.Body.String())
	})

	s.Run("empty list", func() {
		s.mockQueries.EXPECT().BlockedDates(gomock.Any(), property.ID(3)).Return([]availability.BlockedRange{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/3/blocked-dates", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`[]`, w.Body.String())
	})

	s.Run("unknown property", func() {
		s.mockQueries.EXPECT().BlockedDates(gomock.Any(), property.ID(99)).Return(nil, shared.ErrPropertyNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/99/blocked-dates", nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, string(errs.CodePropertyNotFound))
	})

	s.Run("bad id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/0/blocked-dates", nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, string(errs.CodeInvalidRequest))
	})
}

func (s *AvailabilityHandlerTestSuite) TestNextAvailable() {
	s.Run("default start", func() {
		s.mockQueries.EXPECT().NextAvailableDate(gomock.Any(), property.ID(3), (*calendar.Date)(nil)).
			Return(calendar.MustParse("2026-01-07"), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/3/next-available", nil, "")

		var resp resdto.NextAvailableResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(calendar.MustParse("2026-01-07"), resp.Date)
	})

	s.Run("explicit start", func() {
		from := calendar.MustParse("2026-08-01")
		s.mockQueries.EXPECT().NextAvailableDate(gomock.Any(), property.ID(3), &from).Return(from, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/3/next-available?from=2026-08-01", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"date": "2026-08-01"}`, w.Body.String())
	})

	s.Run("bad start", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/3/next-available?from=tomorrow", nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, string(errs.CodeInvalidRequest))
	})
}
