//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"escape-booking/internal/domain/property"
	"escape-booking/internal/pkg/calendar"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Seeded properties. Both use the pricing policy's weekend nights.
const (
	HillsideBarnID   property.ID = 1
	RiversideLodgeID property.ID = 2
)

// CreateTestProperty inserts a property priced in minor units and returns its id.
func CreateTestProperty(t *testing.T, db DBLike, name string, midweekMinor, weekendMinor int64, sleepsMin, sleepsMax int) property.ID {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO properties (name, midweek_rate_minor, weekend_rate_minor, sleeps_min, sleeps_max)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		name, midweekMinor, weekendMinor, sleepsMin, sleepsMax).Scan(&id)
	require.NoError(t, err)
	return property.ID(id)
}

// SetRateOverride pins the price of a single night.
func SetRateOverride(t *testing.T, db DBLike, id property.ID, night calendar.Date, priceMinor int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO property_rate_overrides (property_id, night, price_minor) VALUES ($1, $2, $3)
		ON CONFLICT (property_id, night) DO UPDATE SET price_minor = EXCLUDED.price_minor`,
		int64(id), night.Time(), priceMinor)
	require.NoError(t, err)
}

// CreateTestBooking inserts a booking directly, bypassing pricing.
func CreateTestBooking(t *testing.T, db DBLike, id property.ID, guestID uuid.UUID, checkIn, checkOut calendar.Date, status string) int64 {
	t.Helper()

	var bookingID int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO bookings (property_id, guest_id, check_in, check_out, guests, status,
		                      deposit_amount_minor, balance_amount_minor, deposit_due_date, balance_due_date, idempotency_key)
		VALUES ($1, $2, $3, $4, 4, $5, 0, 0, $3, $3, $6)
		RETURNING id`,
		int64(id), guestID, checkIn.Time(), checkOut.Time(), status, uuid.New()).Scan(&bookingID)
	require.NoError(t, err)
	return bookingID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO properties (id, name, midweek_rate_minor, weekend_rate_minor, sleeps_min, sleeps_max,
		                        cleaning_fee_minor, security_deposit_minor)
		VALUES
		    (1, 'Hillside Barn', 10000, 15000, 2, 10, 5000, 25000),
		    (2, 'Riverside Lodge', 20000, 30000, 4, 16, 0, 0)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	// keep BIGSERIAL ahead of the explicit ids above
	_, err = pool.Exec(ctx, `SELECT setval(pg_get_serial_sequence('properties', 'id'), (SELECT max(id) FROM properties))`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
