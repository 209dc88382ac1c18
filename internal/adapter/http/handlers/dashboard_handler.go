package handlers

import (
	"net/http"

	response "meditrack_pro/internal/adapter/http/dto/response"
	"meditrack_pro/internal/usecase"
	"meditrack_pro/pkg"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.GetStats(c.Request.Context())
	if err != nil {
		appErr := internalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}

// GetAISummary always answers 200; generator failures come back as fallback text.
func (h *DashboardHandler) GetAISummary(c *gin.Context) {
	summary, err := h.usecase.GetAISummary(c.Request.Context())
	if err != nil {
		appErr := internalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAISummary(summary))
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
