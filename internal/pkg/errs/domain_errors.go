package errs

// Kind groups error codes by how callers recover from them.
type Kind string

const (
	KindValidation  Kind = "VALIDATION"
	KindNotFound    Kind = "NOT_FOUND"
	KindConflict    Kind = "CONFLICT"
	KindForbidden   Kind = "FORBIDDEN"
	KindRateLimited Kind = "RATE_LIMITED"
	KindInternal    Kind = "INTERNAL"
)

// Code is the machine-readable error code returned to API clients.
type Code string

const (
	CodeInvalidRequest          Code = "INVALID_REQUEST"
	CodeInvalidDateRange        Code = "INVALID_DATE_RANGE"
	CodeGuestCountOutOfRange    Code = "GUEST_COUNT_OUT_OF_RANGE"
	CodeIdempotencyKeyRequired  Code = "IDEMPOTENCY_KEY_REQUIRED"
	CodeIdempotencyKeyReused    Code = "IDEMPOTENCY_KEY_REUSED"
	CodePropertyNotFound        Code = "PROPERTY_NOT_FOUND"
	CodeBookingNotFound         Code = "BOOKING_NOT_FOUND"
	CodeDatesUnavailable        Code = "DATES_UNAVAILABLE"
	CodeInvalidStatusTransition Code = "INVALID_STATUS_TRANSITION"
	CodeForbidden               Code = "FORBIDDEN"
	CodeRateLimited             Code = "RATE_LIMITED"
	CodeInternal                Code = "INTERNAL"
)

var codeKinds = map[Code]Kind{
	CodeInvalidRequest:          KindValidation,
	CodeInvalidDateRange:        KindValidation,
	CodeGuestCountOutOfRange:    KindValidation,
	CodeIdempotencyKeyRequired:  KindValidation,
	CodeIdempotencyKeyReused:    KindConflict,
	CodePropertyNotFound:        KindNotFound,
	CodeBookingNotFound:         KindNotFound,
	CodeDatesUnavailable:        KindConflict,
	CodeInvalidStatusTransition: KindConflict,
	CodeForbidden:               KindForbidden,
	CodeRateLimited:             KindRateLimited,
	CodeInternal:                KindInternal,
}

func (c Code) Kind() Kind {
	if k, ok := codeKinds[c]; ok {
		return k
	}
	return KindInternal
}
