package api

import (
	"net/http"
	"strconv"

	"escape-booking/internal/domain/availability"
	"escape-booking/internal/domain/property"
	reqdto "escape-booking/internal/handler/dto/request"
	resdto "escape-booking/internal/handler/dto/response"
	"escape-booking/internal/handler/httperr"
	"escape-booking/internal/pkg/errs"
	"escape-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Check availability
// @Description Unknown properties and malformed dates are reported as unavailable with a reason
// @Tags availability
// @Produce json
// @Param id path int true "Property ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Router /properties/{id}/availability [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		c.JSON(http.StatusOK, resdto.FromAvailabilityResult(availability.Unavailable(availability.ReasonPropertyNotFound)))
		return
	}

	var query reqdto.AvailabilityQuery
	_ = c.ShouldBindQuery(&query)
	checkIn, checkOut, ok := query.Dates()
	if !ok {
		c.JSON(http.StatusOK, resdto.FromAvailabilityResult(availability.Unavailable(availability.ReasonInvalidDateRange)))
		return
	}

	result, err := h.q.Check(c.Request.Context(), propertyID, checkIn, checkOut)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityResult(result))
}

// @Summary Blocked dates
// @Description Stays held by pending and confirmed bookings, ordered by check-in
// @Tags availability
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {array} resdto.BlockedRangeResponse
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/blocked-dates [get]
func (h *AvailabilityHandler) BlockedDates(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, errs.CodeInvalidRequest, "Invalid property id", nil)
		return
	}

	ranges, err := h.q.BlockedDates(c.Request.Context(), propertyID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBlockedRanges(ranges))
}

// @Summary Next available date
// @Description First date on or after `from` (default today) not covered by a blocking booking
// @Tags availability
// @Produce json
// @Param id path int true "Property ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Success 200 {object} resdto.NextAvailableResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/next-available [get]
func (h *AvailabilityHandler) NextAvailable(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, errs.CodeInvalidRequest, "Invalid property id", nil)
		return
	}

	var query reqdto.NextAvailableQuery
	_ = c.ShouldBindQuery(&query)
	from, err := query.FromDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, errs.CodeInvalidRequest, "Invalid from date", nil)
		return
	}

	date, err := h.q.NextAvailableDate(c.Request.Context(), propertyID, from)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NextAvailableResponse{Date: date})
}

func parsePropertyID(c *gin.Context) (property.ID, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return property.ID(id), true
}
