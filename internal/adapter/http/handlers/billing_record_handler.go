package handlers

import (
	"errors"
	"io"
	"net/http"

	request "meditrack_pro/internal/adapter/http/dto/request"
	response "meditrack_pro/internal/adapter/http/dto/response"
	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase"
	"meditrack_pro/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRecordQuery        = pkg.NewDomainErrorSimple("INVALID_RECORD_QUERY", "Invalid record query", http.StatusBadRequest)
	errInvalidCertificatePayload = pkg.NewDomainErrorSimple("INVALID_CERTIFICATE_INPUT", "Invalid certificate payload", http.StatusBadRequest)
)

// BillingRecordHandler serves the clinical billing records, their financial
// pivot, exports and attendance certificates.

type BillingRecordHandler struct {
	usecase usecase.IBillingRecordUseCase
}

func NewBillingRecordHandler(uc usecase.IBillingRecordUseCase) *BillingRecordHandler {
	return &BillingRecordHandler{usecase: uc}
}

func (h *BillingRecordHandler) List(c *gin.Context) {
	var q request.RecordListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidRecordQuery.HTTPStatus, errInvalidRecordQuery.ToHTTPError())
		return
	}
	status, err := q.ResolveStatus()
	if err != nil {
		c.JSON(errInvalidRecordQuery.HTTPStatus, errInvalidRecordQuery.ToHTTPError())
		return
	}

	records, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		appErr := mapBillingRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecordsWithOverdue(records))
}

func (h *BillingRecordHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapBillingRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingSummary(summary))
}

func (h *BillingRecordHandler) Export(c *gin.Context) {
	format, ok := entities.ParseExportFormat(c.Query("format"))
	if !ok {
		appErr := mapBillingRecordError(usecase.ErrUnsupportedExportFormat)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := h.usecase.Export(c.Request.Context(), format)
	if err != nil {
		appErr := mapBillingRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	sendFile(c, file)
}

// Certificate renders the attendance certificate PDF. The body is optional.
func (h *BillingRecordHandler) Certificate(c *gin.Context) {
	var payload request.CertificateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidCertificatePayload.HTTPStatus, errInvalidCertificatePayload.ToHTTPError())
		return
	}

	file, err := h.usecase.Certificate(c.Request.Context(), c.Param("id"), payload.ToUseCase())
	if err != nil {
		appErr := mapBillingRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	sendFile(c, file)
}

func sendFile(c *gin.Context, file entities.File) {
	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func mapBillingRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSchedulingID), errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedExportFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_EXPORT_FORMAT", "Export format must be csv or xlsx", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPhoto):
		return pkg.NewDomainErrorSimple("INVALID_PHOTO", "Photo must be a base64 PNG or JPEG data URI", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillingRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Billing record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCaptureNotFound):
		return pkg.NewDomainErrorSimple("CAPTURE_NOT_FOUND", "Capture not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCertificateUnavailable):
		return pkg.NewDomainErrorSimple("CERTIFICATE_UNAVAILABLE", "Certificate renderer not configured", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
