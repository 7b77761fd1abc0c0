package readstore

import (
	"context"

	"escape-booking/internal/domain/booking"
	"escape-booking/internal/domain/property"
	"escape-booking/internal/infra"
	"escape-booking/internal/infra/db"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `
SELECT id, property_id, guest_id, check_in, check_out, guests, status,
       deposit_amount_minor, balance_amount_minor, deposit_paid, balance_paid,
       deposit_due_date, balance_due_date, idempotency_key, created_at, updated_at
FROM bookings`

const (
	listBookingsByProperty     = bookingColumns + ` WHERE property_id = $1 ORDER BY check_in, id`
	getBookingByID             = bookingColumns + ` WHERE id = $1`
	getBookingByIdempotencyKey = bookingColumns + ` WHERE idempotency_key = $1`
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

// ListByProperty returns every booking of the property regardless of status.
func (r *BookingReadStore) ListByProperty(ctx context.Context, propertyID property.ID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, listBookingsByProperty, int64(propertyID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by property", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id booking.ID) (*booking.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, getBookingByID, int64(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

func (r *BookingReadStore) FindByIdempotencyKey(ctx context.Context, key uuid.UUID) (*booking.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, getBookingByIdempotencyKey, pgconv.UUIDToPgtype(key)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found for idempotency key", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by idempotency key", err)
	}
	return b, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, propertyID                 int64
		guestID, idempotencyKey        pgtype.UUID
		checkIn, checkOut              pgtype.Date
		guests                         int32
		status                         string
		depositAmount, balanceAmount   pgtype.Int8
		depositPaid, balancePaid       bool
		depositDueDate, balanceDueDate pgtype.Date
		createdAt, updatedAt           pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &propertyID, &guestID, &checkIn, &checkOut, &guests, &status,
		&depositAmount, &balanceAmount, &depositPaid, &balancePaid,
		&depositDueDate, &balanceDueDate, &idempotencyKey, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	in, err := pgconv.DateFromPgtype(checkIn)
	if err != nil {
		return nil, err
	}
	out, err := pgconv.DateFromPgtype(checkOut)
	if err != nil {
		return nil, err
	}
	stay, err := calendar.NewRange(in, out)
	if err != nil {
		return nil, err
	}
	st, err := booking.NewStatus(status)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		booking.ID(id),
		property.ID(propertyID),
		pgconv.UUIDFromPgtype(guestID),
		stay,
		int(guests),
		st,
		booking.Payment{
			DepositAmount:  pgconv.MoneyFromPgtype(depositAmount),
			BalanceAmount:  pgconv.MoneyFromPgtype(balanceAmount),
			DepositPaid:    depositPaid,
			BalancePaid:    balancePaid,
			DepositDueDate: pgconv.OptionalDateFromPgtype(depositDueDate),
			BalanceDueDate: pgconv.OptionalDateFromPgtype(balanceDueDate),
		},
		pgconv.UUIDFromPgtype(idempotencyKey),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
