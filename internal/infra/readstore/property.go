package readstore

import (
	"context"

	"escape-booking/internal/domain/property"
	"escape-booking/internal/infra"
	"escape-booking/internal/infra/db"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"
	"escape-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const getPropertyByID = `
SELECT id, name, midweek_rate_minor, weekend_rate_minor, sleeps_min, sleeps_max,
       cleaning_fee_minor, security_deposit_minor, service_fee_bps, tax_bps,
       weekend_nights, created_at, updated_at
FROM properties
WHERE id = $1`

const listRateOverrides = `
SELECT night, price_minor
FROM property_rate_overrides
WHERE property_id = $1
ORDER BY night`

type propertyRow struct {
	ID                   int64
	Name                 string
	MidweekRateMinor     pgtype.Int8
	WeekendRateMinor     pgtype.Int8
	SleepsMin            int32
	SleepsMax            int32
	CleaningFeeMinor     pgtype.Int8
	SecurityDepositMinor pgtype.Int8
	ServiceFeeBps        int32
	TaxBps               int32
	WeekendNights        pgtype.Int2
	CreatedAt            pgtype.Timestamptz
	UpdatedAt            pgtype.Timestamptz
}

type PropertyReadStore struct {
	db db.DBTX
}

func NewPropertyReadStore(db db.DBTX) *PropertyReadStore {
	return &PropertyReadStore{db: db}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id property.ID) (*property.Property, error) {
	var row propertyRow
	err := r.db.QueryRow(ctx, getPropertyByID, int64(id)).Scan(
		&row.ID,
		&row.Name,
		&row.MidweekRateMinor,
		&row.WeekendRateMinor,
		&row.SleepsMin,
		&row.SleepsMax,
		&row.CleaningFeeMinor,
		&row.SecurityDepositMinor,
		&row.ServiceFeeBps,
		&row.TaxBps,
		&row.WeekendNights,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}

	overrides, err := r.rateOverrides(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := toProperty(row, overrides)
	if err != nil {
		return nil, infra.WrapRepoErr("stored property is invalid", err, infra.KindDBFailure)
	}
	return p, nil
}

func (r *PropertyReadStore) rateOverrides(ctx context.Context, id property.ID) (map[calendar.Date]money.Money, error) {
	rows, err := r.db.Query(ctx, listRateOverrides, int64(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rate overrides", err)
	}
	defer rows.Close()

	overrides := make(map[calendar.Date]money.Money)
	for rows.Next() {
		var (
			night pgtype.Date
			price pgtype.Int8
		)
		if err := rows.Scan(&night, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rate override", err)
		}
		d, err := pgconv.DateFromPgtype(night)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid rate override date", err, infra.KindDBFailure)
		}
		overrides[d] = pgconv.MoneyFromPgtype(price)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rate overrides", err)
	}
	return overrides, nil
}

func toProperty(row propertyRow, overrides map[calendar.Date]money.Money) (*property.Property, error) {
	var weekend *calendar.WeekdaySet
	if row.WeekendNights.Valid {
		w := calendar.WeekdaySet(row.WeekendNights.Int16)
		weekend = &w
	}

	return property.New(property.Params{
		ID:   property.ID(row.ID),
		Name: row.Name,
		Rates: property.Rates{
			Midweek: pgconv.MoneyFromPgtype(row.MidweekRateMinor),
			Weekend: pgconv.MoneyFromPgtype(row.WeekendRateMinor),
		},
		Occupancy: property.Occupancy{
			SleepsMin: int(row.SleepsMin),
			SleepsMax: int(row.SleepsMax),
		},
		Fees: property.FeeSchedule{
			CleaningFee:     pgconv.MoneyFromPgtype(row.CleaningFeeMinor),
			SecurityDeposit: pgconv.MoneyFromPgtype(row.SecurityDepositMinor),
			ServiceFeeRate:  money.BasisPoints(row.ServiceFeeBps),
			TaxRate:         money.BasisPoints(row.TaxBps),
		},
		Overrides:     overrides,
		WeekendNights: weekend,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
