package repository

import (
	"context"

	"escape-booking/internal/domain/booking"
	"escape-booking/internal/domain/property"
	"escape-booking/internal/infra"
	"escape-booking/internal/infra/db"
	"escape-booking/internal/pkg/pgconv"
)

const lockProperty = `SELECT id FROM properties WHERE id = $1 FOR UPDATE`

const createBooking = `
INSERT INTO bookings (
    property_id, guest_id, check_in, check_out, guests, status,
    deposit_amount_minor, balance_amount_minor, deposit_paid, balance_paid,
    deposit_due_date, balance_due_date, idempotency_key, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id`

const updateBookingStatus = `
UPDATE bookings
SET status = $2, deposit_paid = $3, balance_paid = $4, updated_at = $5
WHERE id = $1`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// LockProperty holds the property row until the surrounding transaction ends.
func (r *BookingRepository) LockProperty(ctx context.Context, id property.ID) error {
	var locked int64
	if err := r.db.QueryRow(ctx, lockProperty, int64(id)).Scan(&locked); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock property", err)
	}
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (booking.ID, error) {
	stay := b.Stay()
	payment := b.Payment()

	var id int64
	err := r.db.QueryRow(ctx, createBooking,
		int64(b.PropertyID()),
		pgconv.UUIDToPgtype(b.GuestID()),
		pgconv.DateToPgtype(stay.CheckIn),
		pgconv.DateToPgtype(stay.CheckOut),
		int32(b.Guests()),
		b.Status().String(),
		pgconv.MoneyToPgtype(payment.DepositAmount),
		pgconv.MoneyToPgtype(payment.BalanceAmount),
		payment.DepositPaid,
		payment.BalancePaid,
		pgconv.DateToPgtype(payment.DepositDueDate),
		pgconv.DateToPgtype(payment.BalanceDueDate),
		pgconv.UUIDToPgtype(b.IdempotencyKey()),
		b.CreatedAt(),
		b.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return booking.ID(id), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	payment := b.Payment()
	tag, err := r.db.Exec(ctx, updateBookingStatus,
		int64(b.ID()),
		b.Status().String(),
		payment.DepositPaid,
		payment.BalancePaid,
		b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
