package api

import (
	"net/http"

	reqdto "escape-booking/internal/handler/dto/request"
	resdto "escape-booking/internal/handler/dto/response"
	"escape-booking/internal/handler/httperr"
	"escape-booking/internal/pkg/errs"
	"escape-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	q queries.QuoteQueries
}

func NewQuoteHandler(q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{q: q}
}

// @Summary Price a stay
// @Description Checks availability and returns the nightly breakdown, fees, deposit/balance split and payment schedule
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, errs.CodeInvalidRequest, "Invalid request", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
