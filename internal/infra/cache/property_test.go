//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"escape-booking/internal/domain/property"
	"escape-booking/internal/infra/cache"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"
	"escape-booking/tests/common/builder"
	sharedmock "escape-booking/tests/mock/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PropertyCacheTestSuite struct {
	suite.Suite
	ctx      context.Context
	server   *miniredis.Miniredis
	client   *redis.Client
	mockCtrl *gomock.Controller
	next     *sharedmock.MockPropertyReadStore
	cache    *cache.PropertyCache
}

func (s *PropertyCacheTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.server = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	s.mockCtrl = gomock.NewController(s.T())
	s.next = sharedmock.NewMockPropertyReadStore(s.mockCtrl)
	s.cache = cache.NewPropertyCache(s.client, s.next, time.Minute)
}

func (s *PropertyCacheTestSuite) TearDownTest() {
	s.client.Close()
	s.mockCtrl.Finish()
}

func TestPropertyCacheSuite(t *testing.T) {
	suite.Run(t, new(PropertyCacheTestSuite))
}

func (s *PropertyCacheTestSuite) TestMissLoadsAndStores() {
	weekend := calendar.NewWeekdaySet(time.Saturday, time.Sunday)
	p := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
		b.ID = 42
		b.ServiceFeeRate = 500
		b.TaxRate = 2000
		b.WeekendNights = &weekend
		b.Overrides = map[calendar.Date]money.Money{calendar.MustParse("2026-12-24"): money.FromMinor(40050)}
	}).MustBuild()

	s.next.EXPECT().FindByID(gomock.Any(), property.ID(42)).Return(p, nil).Times(1)

	first, err := s.cache.FindByID(s.ctx, 42)
	s.Require().NoError(err)
	s.Same(p, first)
	s.True(s.server.Exists("property:42"))
	s.Equal(time.Minute, s.server.TTL("property:42"))

	// Served from Redis without touching the store.
	second, err := s.cache.FindByID(s.ctx, 42)
	s.Require().NoError(err)
	s.Equal(p.Name(), second.Name())
	s.Equal(p.Rates(), second.Rates())
	s.Equal(p.Occupancy(), second.Occupancy())
	s.Equal(p.Fees(), second.Fees())
	s.Equal(p.Overrides(), second.Overrides())
	gotWeekend, ok := second.WeekendNights()
	s.True(ok)
	s.Equal(weekend, gotWeekend)
	s.True(p.CreatedAt().Equal(second.CreatedAt()))
}

func (s *PropertyCacheTestSuite) TestStoreErrorIsNotCached() {
	boom := errors.New("store down")
	s.next.EXPECT().FindByID(gomock.Any(), property.ID(7)).Return(nil, boom).Times(2)

	_, err := s.cache.FindByID(s.ctx, 7)
	s.ErrorIs(err, boom)
	s.False(s.server.Exists("property:7"))

	_, err = s.cache.FindByID(s.ctx, 7)
	s.ErrorIs(err, boom)
}

func (s *PropertyCacheTestSuite) TestCorruptEntryFallsThrough() {
	p := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) { b.ID = 3 }).MustBuild()
	s.Require().NoError(s.server.Set("property:3", "{not json"))

	s.next.EXPECT().FindByID(gomock.Any(), property.ID(3)).Return(p, nil)

	got, err := s.cache.FindByID(s.ctx, 3)
	s.Require().NoError(err)
	s.Same(p, got)

	// The bad entry was overwritten.
	raw, err := s.server.Get("property:3")
	s.Require().NoError(err)
	s.Contains(raw, `"name":"Hillside Barn"`)
}

func (s *PropertyCacheTestSuite) TestInvalidate() {
	p := builder.NewPropertyBuilder().MustBuild()
	s.next.EXPECT().FindByID(gomock.Any(), property.ID(1)).Return(p, nil).Times(2)

	_, err := s.cache.FindByID(s.ctx, 1)
	s.Require().NoError(err)

	s.Require().NoError(s.cache.Invalidate(s.ctx, 1))
	s.False(s.server.Exists("property:1"))

	_, err = s.cache.FindByID(s.ctx, 1)
	s.Require().NoError(err)
}

func TestPropertyCacheRedisDown(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	defer client.Close()
	server.Close()

	ctrl := gomock.NewController(t)
	next := sharedmock.NewMockPropertyReadStore(ctrl)
	p := builder.NewPropertyBuilder().MustBuild()
	next.EXPECT().FindByID(gomock.Any(), property.ID(1)).Return(p, nil)

	got, err := cache.NewPropertyCache(client, next, time.Minute).FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Same(t, p, got)
}
