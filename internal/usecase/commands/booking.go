package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"escape-booking/internal/domain/account"
	"escape-booking/internal/domain/availability"
	"escape-booking/internal/domain/booking"
	"escape-booking/internal/domain/pricing"
	"escape-booking/internal/domain/property"
	"escape-booking/internal/infra"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/errs"
	"escape-booking/internal/usecase/queries"
	"escape-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// errIdempotencyRace is returned from inside the transaction when a concurrent request
// inserted a booking under the same key first.
var errIdempotencyRace = errs.New("booking with this idempotency key was created concurrently")

type CreateBookingParams struct {
	PropertyID property.ID
	CheckIn    calendar.Date
	CheckOut   calendar.Date
	Guests     int
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	Create(ctx context.Context, actor account.Principal, params CreateBookingParams, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	Confirm(ctx context.Context, actor account.Principal, id booking.ID) (*queries.BookingView, error)
	Cancel(ctx context.Context, actor account.Principal, id booking.ID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	engine   *pricing.Engine
	calendar shared.BusinessCalendar
}

func NewBookingUseCase(uow shared.UnitOfWork, engine *pricing.Engine, cal shared.BusinessCalendar) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		engine:   engine,
		calendar: cal,
	}
}

// Create books a stay as pending. Availability is re-checked under a lock on the property row
// inside a serializable transaction; the exclusion constraint on bookings backs this up.
func (uc *bookingUseCaseImpl) Create(
	ctx context.Context,
	actor account.Principal,
	params CreateBookingParams,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	if idempotencyKey == uuid.Nil {
		return nil, shared.ErrIdempotencyKeyRequired
	}
	if !params.CheckIn.Before(params.CheckOut) {
		return nil, shared.ErrInvalidDateRange
	}

	var result *CreateBookingResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, replayed, err := uc.findReplay(ctx, tx, actor, params, idempotencyKey)
		if err != nil {
			return err
		}
		if replayed {
			result = &CreateBookingResult{Booking: queries.NewBookingView(existing), IsReplayed: true}
			return nil
		}

		created, err := uc.createInTx(ctx, tx, actor, params, idempotencyKey)
		if err != nil {
			return err
		}
		result = &CreateBookingResult{Booking: queries.NewBookingView(created)}
		return nil
	})
	if errs.Is(err, errIdempotencyRace) {
		return uc.replayAfterRace(ctx, actor, params, idempotencyKey)
	}
	if err != nil {
		return nil, err
	}

	if !result.IsReplayed {
		slog.Info("booking created",
			"booking_id", result.Booking.ID,
			"property_id", result.Booking.PropertyID,
			"guest_id", result.Booking.GuestID,
			"check_in", result.Booking.CheckIn.String(),
			"check_out", result.Booking.CheckOut.String())
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) createInTx(
	ctx context.Context,
	tx shared.Tx,
	actor account.Principal,
	params CreateBookingParams,
	idempotencyKey uuid.UUID,
) (*booking.Booking, error) {
	if err := tx.Bookings().LockProperty(ctx, params.PropertyID); err != nil {
		return nil, queries.MapStoreErr(err, shared.ErrPropertyNotFound)
	}

	prop, err := tx.Properties().FindByID(ctx, params.PropertyID)
	if err != nil {
		return nil, queries.MapStoreErr(err, shared.ErrPropertyNotFound)
	}

	existing, err := tx.BookingReads().ListByProperty(ctx, params.PropertyID)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}
	if res := availability.Check(existing, params.CheckIn, params.CheckOut); !res.Available {
		return nil, queries.UnavailableErr(res)
	}

	quote, err := uc.engine.Calculate(prop, params.CheckIn, params.CheckOut, params.Guests)
	if err != nil {
		return nil, queries.MapPricingErr(err)
	}
	schedule := uc.engine.PaymentDueDates(params.CheckIn, uc.calendar.Today())

	stay, err := calendar.NewRange(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrInvalidDateRange)
	}

	b, err := booking.NewBooking(
		params.PropertyID,
		actor.UserID,
		stay,
		params.Guests,
		booking.Payment{
			DepositAmount:  quote.DepositAmount,
			BalanceAmount:  quote.BalanceAmount,
			DepositDueDate: schedule.DepositDueDate,
			BalanceDueDate: schedule.BalanceDueDate,
		},
		idempotencyKey,
		uc.calendar.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrGuestCountOutOfRange)
	}

	id, err := tx.Bookings().Create(ctx, b)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.Mark(err, shared.ErrDatesUnavailable)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, errIdempotencyRace)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, shared.ErrPropertyNotFound)
		default:
			return nil, errs.Mark(err, shared.ErrDatabaseOperationFailed)
		}
	}

	return booking.Reconstruct(
		id,
		b.PropertyID(),
		b.GuestID(),
		b.Stay(),
		b.Guests(),
		b.Status(),
		b.Payment(),
		b.IdempotencyKey(),
		b.CreatedAt(),
		b.UpdatedAt(),
	), nil
}

// findReplay looks up a booking already stored under the key. A key reused for a different
// request is rejected.
func (uc *bookingUseCaseImpl) findReplay(
	ctx context.Context,
	tx shared.Tx,
	actor account.Principal,
	params CreateBookingParams,
	idempotencyKey uuid.UUID,
) (*booking.Booking, bool, error) {
	existing, err := tx.BookingReads().FindByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, false, nil
		}
		return nil, false, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}
	if !sameRequest(existing, actor, params) {
		return nil, false, shared.ErrIdempotencyKeyReused
	}
	return existing, true, nil
}

func (uc *bookingUseCaseImpl) replayAfterRace(
	ctx context.Context,
	actor account.Principal,
	params CreateBookingParams,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	var result *CreateBookingResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, replayed, err := uc.findReplay(ctx, tx, actor, params, idempotencyKey)
		if err != nil {
			return err
		}
		if !replayed {
			return errs.Mark(errIdempotencyRace, shared.ErrDatabaseOperationFailed)
		}
		result = &CreateBookingResult{Booking: queries.NewBookingView(existing), IsReplayed: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func sameRequest(b *booking.Booking, actor account.Principal, params CreateBookingParams) bool {
	stay := b.Stay()
	return b.GuestID() == actor.UserID &&
		b.PropertyID() == params.PropertyID &&
		stay.CheckIn.Equal(params.CheckIn) &&
		stay.CheckOut.Equal(params.CheckOut) &&
		b.Guests() == params.Guests
}

// Confirm records the deposit as received. Owners and admins only.
func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, actor account.Principal, id booking.ID) (*queries.BookingView, error) {
	if !actor.IsStaff() {
		return nil, shared.ErrForbidden
	}
	return uc.transition(ctx, actor, id, func(b *booking.Booking) error {
		return b.Confirm(uc.calendar.Now())
	})
}

// Cancel releases the dates. Guests may cancel only their own bookings.
func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, actor account.Principal, id booking.ID) (*queries.BookingView, error) {
	return uc.transition(ctx, actor, id, func(b *booking.Booking) error {
		return b.Cancel(uc.calendar.Now())
	})
}

func (uc *bookingUseCaseImpl) transition(
	ctx context.Context,
	actor account.Principal,
	id booking.ID,
	apply func(*booking.Booking) error,
) (*queries.BookingView, error) {
	var view *queries.BookingView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.BookingReads().FindByID(ctx, id)
		if err != nil {
			return queries.MapStoreErr(err, shared.ErrBookingNotFound)
		}
		if !actor.CanAccess(b.GuestID()) {
			return shared.ErrBookingNotFound
		}

		if err := apply(b); err != nil {
			return errs.Mark(err, shared.ErrInvalidStatusTransition)
		}
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return queries.MapStoreErr(err, shared.ErrBookingNotFound)
		}
		view = queries.NewBookingView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking status changed",
		"booking_id", view.ID,
		"status", view.Status,
		"actor_id", actor.UserID,
		"actor_role", actor.Role.String())
	return view, nil
}
