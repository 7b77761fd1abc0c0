package api

import (
	"net/http"
	"strconv"

	"escape-booking/internal/domain/account"
	"escape-booking/internal/domain/booking"
	reqdto "escape-booking/internal/handler/dto/request"
	resdto "escape-booking/internal/handler/dto/response"
	"escape-booking/internal/handler/httperr"
	"escape-booking/internal/handler/middleware"
	"escape-booking/internal/pkg/errs"
	"escape-booking/internal/usecase/commands"
	"escape-booking/internal/usecase/queries"
	"escape-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Books a stay as pending. Replaying the same Idempotency-Key returns the stored booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key (UUID)"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "", "Unauthorized", nil)
		return
	}

	key, err := uuid.Parse(c.GetHeader(idempotencyKeyHeader))
	if err != nil {
		httperr.AbortWithUseCaseError(c, errs.Mark(err, shared.ErrIdempotencyKeyRequired))
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, errs.CodeInvalidRequest, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), principal, params, key)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	resp, err := resdto.FromBookingView(result.Booking)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/bookings/"+strconv.FormatInt(int64(resp.ID), 10))
	c.JSON(status, resp)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	h.withBooking(c, func(principal account.Principal, id booking.ID) (*queries.BookingView, error) {
		return h.q.GetByID(c.Request.Context(), principal, id)
	})
}

// @Summary Confirm booking
// @Description Marks the deposit as received. Owners and admins only.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.withBooking(c, func(principal account.Principal, id booking.ID) (*queries.BookingView, error) {
		return h.cmds.Confirm(c.Request.Context(), principal, id)
	})
}

// @Summary Cancel booking
// @Description Releases the dates. Guests may cancel their own bookings only.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.withBooking(c, func(principal account.Principal, id booking.ID) (*queries.BookingView, error) {
		return h.cmds.Cancel(c.Request.Context(), principal, id)
	})
}

func (h *BookingHandler) withBooking(c *gin.Context, fn func(account.Principal, booking.ID) (*queries.BookingView, error)) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "", "Unauthorized", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, errs.CodeInvalidRequest, "Invalid booking id", nil)
		return
	}

	view, err := fn(principal, booking.ID(id))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
