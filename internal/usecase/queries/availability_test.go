//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"escape-booking/internal/domain/availability"
	"escape-booking/internal/domain/booking"
	"escape-booking/internal/domain/property"
	"escape-booking/internal/infra"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/clock"
	"escape-booking/internal/usecase/queries"
	"escape-booking/internal/usecase/shared"
	"escape-booking/tests/common/builder"
	sharedmock "escape-booking/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockCtrl   *gomock.Controller
	properties *sharedmock.MockPropertyReadStore
	bookings   *sharedmock.MockBookingReadStore
	queries    queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.properties = sharedmock.NewMockPropertyReadStore(s.mockCtrl)
	s.bookings = sharedmock.NewMockBookingReadStore(s.mockCtrl)
	cal := clock.NewBusinessCalendar(clock.NewMockClock(today), time.UTC)
	s.queries = queries.NewAvailabilityQueries(s.properties, s.bookings, cal)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) expectProperty() {
	s.properties.EXPECT().FindByID(gomock.Any(), property.ID(1)).Return(builder.NewPropertyBuilder().MustBuild(), nil)
}

func (s *AvailabilityQueriesTestSuite) TestCheck() {
	s.Run("available", func() {
		s.expectProperty()
		s.bookings.EXPECT().ListByProperty(gomock.Any(), property.ID(1)).Return([]*booking.Booking{
			builder.NewBookingBuilder().Stay("2026-03-06", "2026-03-08").BuildDomain(),
		}, nil)

		res, err := s.queries.Check(s.ctx, 1, d("2026-03-08"), d("2026-03-10"))
		s.Require().NoError(err)
		s.True(res.Available)
		s.Empty(res.ConflictingBookings)
	})

	s.Run("conflict", func() {
		s.expectProperty()
		s.bookings.EXPECT().ListByProperty(gomock.Any(), property.ID(1)).Return([]*booking.Booking{
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 5 }).Stay("2026-03-06", "2026-03-08").BuildDomain(),
		}, nil)

		res, err := s.queries.Check(s.ctx, 1, d("2026-03-07"), d("2026-03-10"))
		s.Require().NoError(err)
		s.False(res.Available)
		s.Equal(availability.ReasonDatesUnavailable, res.Reason)
		s.Equal([]booking.ID{5}, res.ConflictingBookings)
	})

	s.Run("unknown property is a result, not an error", func() {
		s.properties.EXPECT().FindByID(gomock.Any(), property.ID(9)).Return(nil, notFound())

		res, err := s.queries.Check(s.ctx, 9, d("2026-03-07"), d("2026-03-10"))
		s.Require().NoError(err)
		s.False(res.Available)
		s.Equal(availability.ReasonPropertyNotFound, res.Reason)
	})

	s.Run("invalid range skips the booking lookup", func() {
		s.expectProperty()

		res, err := s.queries.Check(s.ctx, 1, d("2026-03-10"), d("2026-03-07"))
		s.Require().NoError(err)
		s.False(res.Available)
		s.Equal(availability.ReasonInvalidDateRange, res.Reason)
	})

	s.Run("store failure", func() {
		s.expectProperty()
		s.bookings.EXPECT().ListByProperty(gomock.Any(), property.ID(1)).Return(nil, infra.WrapRepoErr("list", errors.New("timeout")))

		_, err := s.queries.Check(s.ctx, 1, d("2026-03-07"), d("2026-03-10"))
		s.ErrorIs(err, shared.ErrDatabaseOperationFailed)
	})
}

func (s *AvailabilityQueriesTestSuite) TestBlockedDates() {
	s.Run("ordered ranges", func() {
		s.expectProperty()
		s.bookings.EXPECT().ListByProperty(gomock.Any(), property.ID(1)).Return([]*booking.Booking{
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 2 }).Stay("2026-04-10", "2026-04-12").BuildDomain(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 1 }).Stay("2026-04-01", "2026-04-03").BuildDomain(),
		}, nil)

		ranges, err := s.queries.BlockedDates(s.ctx, 1)
		s.Require().NoError(err)
		s.Require().Len(ranges, 2)
		s.Equal(booking.ID(1), ranges[0].BookingID)
		s.Equal(booking.ID(2), ranges[1].BookingID)
	})

	s.Run("empty is not nil", func() {
		s.expectProperty()
		s.bookings.EXPECT().ListByProperty(gomock.Any(), property.ID(1)).Return(nil, nil)

		ranges, err := s.queries.BlockedDates(s.ctx, 1)
		s.Require().NoError(err)
		s.NotNil(ranges)
		s.Empty(ranges)
	})

	s.Run("unknown property", func() {
		s.properties.EXPECT().FindByID(gomock.Any(), property.ID(9)).Return(nil, notFound())

		_, err := s.queries.BlockedDates(s.ctx, 9)
		s.ErrorIs(err, shared.ErrPropertyNotFound)
	})
}

func (s *AvailabilityQueriesTestSuite) TestNextAvailableDate() {
	s.Run("defaults to today", func() {
		s.expectProperty()
		s.bookings.EXPECT().ListByProperty(gomock.Any(), property.ID(1)).Return([]*booking.Booking{
			builder.NewBookingBuilder().Stay("2026-01-04", "2026-01-07").BuildDomain(),
		}, nil)

		next, err := s.queries.NextAvailableDate(s.ctx, 1, nil)
		s.Require().NoError(err)
		s.Equal(d("2026-01-07"), next)
	})

	s.Run("explicit start", func() {
		s.expectProperty()
		s.bookings.EXPECT().ListByProperty(gomock.Any(), property.ID(1)).Return(nil, nil)

		from := calendar.MustParse("2026-08-01")
		next, err := s.queries.NextAvailableDate(s.ctx, 1, &from)
		s.Require().NoError(err)
		s.Equal(from, next)
	})

	s.Run("unknown property", func() {
		s.properties.EXPECT().FindByID(gomock.Any(), property.ID(9)).Return(nil, notFound())

		_, err := s.queries.NextAvailableDate(s.ctx, 9, nil)
		s.ErrorIs(err, shared.ErrPropertyNotFound)
	})
}
