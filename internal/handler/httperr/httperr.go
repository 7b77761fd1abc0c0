package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"escape-booking/internal/pkg/errs"
	"escape-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string    `json:"message"`
		Code    errs.Code `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code errs.Code, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code errs.Code) int {
	switch code.Kind() {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

var messages = map[errs.Code]string{
	errs.CodeInvalidDateRange:        "Check-out must be at least one night after check-in",
	errs.CodeGuestCountOutOfRange:    "Number of guests is outside the property's occupancy",
	errs.CodeIdempotencyKeyRequired:  "Idempotency-Key header must be a UUID",
	errs.CodeIdempotencyKeyReused:    "Idempotency-Key was already used for a different booking",
	errs.CodePropertyNotFound:        "Property not found",
	errs.CodeBookingNotFound:         "Booking not found",
	errs.CodeDatesUnavailable:        "Dates unavailable",
	errs.CodeInvalidStatusTransition: "Booking status does not allow this action",
	errs.CodeForbidden:               "Insufficient permissions",
	errs.CodeInternal:                "Internal server error",
}

// AbortWithUseCaseError classifies a use case error and writes the matching response.
// Internal errors are logged with their stack; the client only sees a generic message.
func AbortWithUseCaseError(c *gin.Context, err error) {
	code := shared.Code(err)
	status := StatusFor(code)

	var detail any
	var unavailable *shared.DatesUnavailableError
	if errors.As(err, &unavailable) {
		detail = gin.H{"conflictingBookings": unavailable.Conflicts}
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
	}

	AbortWithError(c, status, err, code, messages[code], detail)
}
