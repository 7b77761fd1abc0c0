package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"escape-booking/internal/domain/property"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"
	"escape-booking/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
)

const propertyKeyPrefix = "property:"

func propertyKey(id property.ID) string {
	return fmt.Sprintf("%s%d", propertyKeyPrefix, id)
}

// propertySnapshot is the cached JSON form of a property.
type propertySnapshot struct {
	ID              int64                         `json:"id"`
	Name            string                        `json:"name"`
	MidweekRate     money.Money                   `json:"midweekRate"`
	WeekendRate     money.Money                   `json:"weekendRate"`
	SleepsMin       int                           `json:"sleepsMin"`
	SleepsMax       int                           `json:"sleepsMax"`
	CleaningFee     money.Money                   `json:"cleaningFee"`
	SecurityDeposit money.Money                   `json:"securityDeposit"`
	ServiceFeeRate  money.BasisPoints             `json:"serviceFeeBps"`
	TaxRate         money.BasisPoints             `json:"taxBps"`
	Overrides       map[calendar.Date]money.Money `json:"overrides,omitempty"`
	WeekendNights   *calendar.WeekdaySet          `json:"weekendNights,omitempty"`
	CreatedAt       time.Time                     `json:"createdAt"`
	UpdatedAt       time.Time                     `json:"updatedAt"`
}

func toSnapshot(p *property.Property) propertySnapshot {
	rates := p.Rates()
	occ := p.Occupancy()
	fees := p.Fees()

	s := propertySnapshot{
		ID:              int64(p.ID()),
		Name:            p.Name(),
		MidweekRate:     rates.Midweek,
		WeekendRate:     rates.Weekend,
		SleepsMin:       occ.SleepsMin,
		SleepsMax:       occ.SleepsMax,
		CleaningFee:     fees.CleaningFee,
		SecurityDeposit: fees.SecurityDeposit,
		ServiceFeeRate:  fees.ServiceFeeRate,
		TaxRate:         fees.TaxRate,
		Overrides:       p.Overrides(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
	if w, ok := p.WeekendNights(); ok {
		s.WeekendNights = &w
	}
	return s
}

func (s propertySnapshot) toProperty() (*property.Property, error) {
	return property.New(property.Params{
		ID:   property.ID(s.ID),
		Name: s.Name,
		Rates: property.Rates{
			Midweek: s.MidweekRate,
			Weekend: s.WeekendRate,
		},
		Occupancy: property.Occupancy{
			SleepsMin: s.SleepsMin,
			SleepsMax: s.SleepsMax,
		},
		Fees: property.FeeSchedule{
			CleaningFee:     s.CleaningFee,
			SecurityDeposit: s.SecurityDeposit,
			ServiceFeeRate:  s.ServiceFeeRate,
			TaxRate:         s.TaxRate,
		},
		Overrides:     s.Overrides,
		WeekendNights: s.WeekendNights,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	})
}

// PropertyCache serves property lookups from Redis and falls back to next on a miss.
// Redis failures are logged and never surface to the caller.
type PropertyCache struct {
	client *redis.Client
	next   shared.PropertyReadStore
	ttl    time.Duration
}

func NewPropertyCache(client *redis.Client, next shared.PropertyReadStore, ttl time.Duration) *PropertyCache {
	return &PropertyCache{
		client: client,
		next:   next,
		ttl:    ttl,
	}
}

func (c *PropertyCache) FindByID(ctx context.Context, id property.ID) (*property.Property, error) {
	if p, ok := c.get(ctx, id); ok {
		return p, nil
	}

	p, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.set(ctx, p)
	return p, nil
}

// Invalidate drops the cached copy so the next lookup reloads it.
func (c *PropertyCache) Invalidate(ctx context.Context, id property.ID) error {
	return c.client.Del(ctx, propertyKey(id)).Err()
}

func (c *PropertyCache) get(ctx context.Context, id property.ID) (*property.Property, bool) {
	val, err := c.client.Get(ctx, propertyKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("property cache read failed", "property_id", id, "error", err.Error())
		}
		return nil, false
	}

	var s propertySnapshot
	if err := json.Unmarshal(val, &s); err != nil {
		slog.Warn("discarding corrupt property cache entry", "property_id", id, "error", err.Error())
		return nil, false
	}
	p, err := s.toProperty()
	if err != nil {
		slog.Warn("discarding invalid property cache entry", "property_id", id, "error", err.Error())
		return nil, false
	}
	return p, true
}

func (c *PropertyCache) set(ctx context.Context, p *property.Property) {
	data, err := json.Marshal(toSnapshot(p))
	if err != nil {
		slog.Warn("failed to encode property for cache", "property_id", p.ID(), "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, propertyKey(p.ID()), data, c.ttl).Err(); err != nil {
		slog.Warn("property cache write failed", "property_id", p.ID(), "error", err.Error())
	}
}
