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

var errInvalidCapturePayload = pkg.NewDomainErrorSimple("INVALID_CAPTURE_INPUT", "Image must be a base64 PNG or JPEG data URI", http.StatusBadRequest)

type CaptureHandler struct {
	usecase usecase.ICaptureUseCase
}

func NewCaptureHandler(uc usecase.ICaptureUseCase) *CaptureHandler {
	return &CaptureHandler{usecase: uc}
}

func (h *CaptureHandler) Create(c *gin.Context) {
	var payload request.CaptureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCapturePayload.HTTPStatus, errInvalidCapturePayload.ToHTTPError())
		return
	}

	capture, err := h.usecase.Save(c.Request.Context(), payload.Image)
	if err != nil {
		appErr := internalError(err)
		if errors.Is(err, usecase.ErrInvalidCapture) {
			appErr = errInvalidCapturePayload
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCapture(capture, true))
}

func (h *CaptureHandler) List(c *gin.Context) {
	captures, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := internalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCaptures(captures))
}
