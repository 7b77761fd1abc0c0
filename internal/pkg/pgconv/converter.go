package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidDateValue = errors.New("invalid date value in pgtype.Date")

func DateToPgtype(d calendar.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) (calendar.Date, error) {
	if !pd.Valid || pd.InfinityModifier != pgtype.Finite {
		return calendar.Date{}, ErrInvalidDateValue
	}
	return calendar.FromTime(pd.Time), nil
}

// OptionalDateFromPgtype maps NULL to the zero Date.
func OptionalDateFromPgtype(pd pgtype.Date) calendar.Date {
	if !pd.Valid {
		return calendar.Date{}
	}
	return calendar.FromTime(pd.Time)
}

func MoneyFromPgtype(pi pgtype.Int8) money.Money {
	if !pi.Valid {
		return money.Money{}
	}
	return money.FromMinor(pi.Int64)
}

func MoneyToPgtype(m money.Money) pgtype.Int8 {
	return pgtype.Int8{Int64: m.Minor(), Valid: true}
}

func Int16PtrFromPgtype(pi pgtype.Int2) *int16 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int16
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	if !pu.Valid {
		return uuid.Nil
	}
	return uuid.UUID(pu.Bytes)
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
