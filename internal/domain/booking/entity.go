package booking

import (
	"errors"
	"time"

	"escape-booking/internal/domain/property"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrInvalidGuestCount = errors.New("guest count must be positive")
	ErrInvalidSplit      = errors.New("deposit and balance must be non-negative")
)

type ID int64

// Payment holds the deposit/balance split fixed when the booking was priced.
type Payment struct {
	DepositAmount  money.Money
	BalanceAmount  money.Money
	DepositPaid    bool
	BalancePaid    bool
	DepositDueDate calendar.Date
	BalanceDueDate calendar.Date
}

func (p Payment) Total() money.Money {
	return p.DepositAmount.Add(p.BalanceAmount)
}

type Booking struct {
	id             ID
	propertyID     property.ID
	guestID        uuid.UUID
	stay           calendar.Range
	guests         int
	status         Status
	payment        Payment
	idempotencyKey uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking starts a booking in pending status. The id is assigned by the store.
func NewBooking(
	propertyID property.ID,
	guestID uuid.UUID,
	stay calendar.Range,
	guests int,
	payment Payment,
	idempotencyKey uuid.UUID,
	now time.Time,
) (*Booking, error) {
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}
	if payment.DepositAmount.IsNegative() || payment.BalanceAmount.IsNegative() {
		return nil, ErrInvalidSplit
	}
	payment.DepositPaid = false
	payment.BalancePaid = false

	return &Booking{
		propertyID:     propertyID,
		guestID:        guestID,
		stay:           stay,
		guests:         guests,
		status:         StatusPending,
		payment:        payment,
		idempotencyKey: idempotencyKey,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func Reconstruct(
	id ID,
	propertyID property.ID,
	guestID uuid.UUID,
	stay calendar.Range,
	guests int,
	status Status,
	payment Payment,
	idempotencyKey uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		propertyID:     propertyID,
		guestID:        guestID,
		stay:           stay,
		guests:         guests,
		status:         status,
		payment:        payment,
		idempotencyKey: idempotencyKey,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Confirm marks the deposit as received.
func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	b.payment.DepositPaid = true
	b.updatedAt = now
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	if !b.status.IsBlocking() {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

func (b *Booking) IsBlocking() bool {
	return b.status.IsBlocking()
}

func (b *Booking) ID() ID                    { return b.id }
func (b *Booking) PropertyID() property.ID   { return b.propertyID }
func (b *Booking) GuestID() uuid.UUID        { return b.guestID }
func (b *Booking) Stay() calendar.Range      { return b.stay }
func (b *Booking) Guests() int               { return b.guests }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) Payment() Payment          { return b.payment }
func (b *Booking) IdempotencyKey() uuid.UUID { return b.idempotencyKey }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
