//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"escape-booking/internal/domain/booking"
	"escape-booking/internal/domain/pricing"
	"escape-booking/internal/domain/property"
	"escape-booking/internal/infra"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/clock"
	"escape-booking/internal/pkg/money"
	"escape-booking/internal/usecase/queries"
	"escape-booking/internal/usecase/shared"
	"escape-booking/tests/common/builder"
	sharedmock "escape-booking/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var today = time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)

func d(s string) calendar.Date {
	return calendar.MustParse(s)
}

func notFound() error {
	return infra.WrapRepoErr("select property", errors.New("no rows"), infra.KindNotFound)
}

type QuoteQueriesTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockCtrl   *gomock.Controller
	properties *sharedmock.MockPropertyReadStore
	bookings   *sharedmock.MockBookingReadStore
	queries    queries.QuoteQueries
}

func (s *QuoteQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.properties = sharedmock.NewMockPropertyReadStore(s.mockCtrl)
	s.bookings = sharedmock.NewMockBookingReadStore(s.mockCtrl)
	cal := clock.NewBusinessCalendar(clock.NewMockClock(today), time.UTC)
	s.queries = queries.NewQuoteQueries(s.properties, s.bookings, pricing.NewEngine(pricing.DefaultPolicy()), cal)
}

func (s *QuoteQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteQueriesSuite(t *testing.T) {
	suite.Run(t, new(QuoteQueriesTestSuite))
}

func (s *QuoteQueriesTestSuite) params(checkIn, checkOut string, guests int) queries.QuoteParams {
	return queries.QuoteParams{PropertyID: 1, CheckIn: d(checkIn), CheckOut: d(checkOut), Guests: guests}
}

func (s *QuoteQueriesTestSuite) TestQuote() {
	p := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) { b.SecurityDeposit = money.Money{} }).MustBuild()
	s.properties.EXPECT().FindByID(gomock.Any(), property.ID(1)).Return(p, nil)
	s.bookings.EXPECT().ListByProperty(gomock.Any(), property.ID(1)).Return([]*booking.Booking{
		builder.NewBookingBuilder().Stay("2026-03-04", "2026-03-06").BuildDomain(),
	}, nil)

	view, err := s.queries.Quote(s.ctx, s.params("2026-03-06", "2026-03-08", 6))
	s.Require().NoError(err)

	s.Equal(property.ID(1), view.PropertyID)
	s.Equal(6, view.Guests)
	s.Equal(money.FromMajor(350), view.Quote.TotalPrice)
	s.Equal(money.FromMinor(8750), view.Quote.DepositAmount)
	s.Equal(money.FromMinor(26250), view.Quote.BalanceAmount)
	s.Equal(d("2026-01-05"), view.PaymentSchedule.DepositDueDate)
	s.Equal(d("2026-01-23"), view.PaymentSchedule.BalanceDueDate)
}

func (s *QuoteQueriesTestSuite) TestPropertyNotFound() {
	s.properties.EXPECT().FindByID(gomock.Any(), property.ID(1)).Return(nil, notFound())

	_, err := s.queries.Quote(s.ctx, s.params("2026-03-06", "2026-03-08", 6))
	s.ErrorIs(err, shared.ErrPropertyNotFound)
}

func (s *QuoteQueriesTestSuite) TestStoreFailure() {
	s.properties.EXPECT().FindByID(gomock.Any(), property.ID(1)).Return(nil, infra.WrapRepoErr("select property", errors.New("conn reset")))

	_, err := s.queries.Quote(s.ctx, s.params("2026-03-06", "2026-03-08", 6))
	s.ErrorIs(err, shared.ErrDatabaseOperationFailed)
	s.NotErrorIs(err, shared.ErrPropertyNotFound)
}

func (s *QuoteQueriesTestSuite) TestInvalidDateRange() {
	s.properties.EXPECT().FindByID(gomock.Any(), property.ID(1)).Return(builder.NewPropertyBuilder().MustBuild(), nil)

	_, err := s.queries.Quote(s.ctx, s.params("2026-03-08", "2026-03-08", 6))
	s.ErrorIs(err, shared.ErrInvalidDateRange)
}

func (s *QuoteQueriesTestSuite) TestDatesUnavailable() {
	s.properties.EXPECT().FindByID(gomock.Any(), property.ID(1)).Return(builder.NewPropertyBuilder().MustBuild(), nil)
	s.bookings.EXPECT().ListByProperty(gomock.Any(), property.ID(1)).Return([]*booking.Booking{
		builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 31 }).Stay("2026-03-07", "2026-03-10").BuildDomain(),
	}, nil)

	_, err := s.queries.Quote(s.ctx, s.params("2026-03-06", "2026-03-08", 6))
	s.ErrorIs(err, shared.ErrDatesUnavailable)

	var unavailable *shared.DatesUnavailableError
	s.Require().ErrorAs(err, &unavailable)
	s.Equal([]booking.ID{31}, unavailable.Conflicts)
}

func (s *QuoteQueriesTestSuite) TestGuestCountOutOfRange() {
	s.properties.EXPECT().FindByID(gomock.Any(), property.ID(1)).Return(builder.NewPropertyBuilder().MustBuild(), nil)
	s.bookings.EXPECT().ListByProperty(gomock.Any(), property.ID(1)).Return(nil, nil)

	view, err := s.queries.Quote(s.ctx, s.params("2026-03-06", "2026-03-08", 12))
	s.ErrorIs(err, shared.ErrGuestCountOutOfRange)
	s.Nil(view)
}
