package handlers

import (
	"errors"
	"net/http"

	request "meditrack_pro/internal/adapter/http/dto/request"
	response "meditrack_pro/internal/adapter/http/dto/response"
	"meditrack_pro/internal/usecase"
	"meditrack_pro/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCalendarQuery = pkg.NewDomainErrorSimple("INVALID_CALENDAR_QUERY", "Invalid calendar query", http.StatusBadRequest)

type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc}
}

// Month defaults to the current month when year and month are omitted.
func (h *CalendarHandler) Month(c *gin.Context) {
	var q request.CalendarQueryRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidCalendarQuery.HTTPStatus, errInvalidCalendarQuery.ToHTTPError())
		return
	}
	query, err := q.ToQuery()
	if err != nil {
		c.JSON(errInvalidCalendarQuery.HTTPStatus, errInvalidCalendarQuery.ToHTTPError())
		return
	}

	month, err := h.usecase.Month(c.Request.Context(), query)
	if err != nil {
		appErr := internalError(err)
		if errors.Is(err, usecase.ErrInvalidCalendarMonth) {
			appErr = errInvalidCalendarQuery
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarMonth(month))
}
