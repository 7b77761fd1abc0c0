//go:build unit

package shared

import (
	"errors"
	"testing"

	"escape-booking/internal/domain/booking"
	"escape-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Code
	}{
		{"nil", nil, ""},
		{"invalid dates", ErrInvalidDateRange, errs.CodeInvalidDateRange},
		{"marked guest count", errs.Mark(errors.New("too many"), ErrGuestCountOutOfRange), errs.CodeGuestCountOutOfRange},
		{"wrapped not found", errs.Wrap(ErrPropertyNotFound, "quote"), errs.CodePropertyNotFound},
		{"conflict detail", &DatesUnavailableError{Conflicts: []booking.ID{3}}, errs.CodeDatesUnavailable},
		{"wrapped conflict detail", errs.Wrap(&DatesUnavailableError{}, "create"), errs.CodeDatesUnavailable},
		{"key reused", ErrIdempotencyKeyReused, errs.CodeIdempotencyKeyReused},
		{"key missing", ErrIdempotencyKeyRequired, errs.CodeIdempotencyKeyRequired},
		{"forbidden", ErrForbidden, errs.CodeForbidden},
		{"transition", ErrInvalidStatusTransition, errs.CodeInvalidStatusTransition},
		{"booking not found", ErrBookingNotFound, errs.CodeBookingNotFound},
		{"database", ErrDatabaseOperationFailed, errs.CodeInternal},
		{"unknown", errors.New("boom"), errs.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}
