package handlers

import (
	"errors"
	"net/http"

	request "meditrack_pro/internal/adapter/http/dto/request"
	response "meditrack_pro/internal/adapter/http/dto/response"
	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase"
	"meditrack_pro/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPatientQuery = pkg.NewDomainErrorSimple("INVALID_PATIENT_QUERY", "Invalid patient query", http.StatusBadRequest)
)

// PatientHandler serves the patient base and the per-patient AI features.

type PatientHandler struct {
	usecase usecase.IPatientUseCase
}

func NewPatientHandler(uc usecase.IPatientUseCase) *PatientHandler {
	return &PatientHandler{usecase: uc}
}

func (h *PatientHandler) List(c *gin.Context) {
	var q request.PatientListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPatientQuery.HTTPStatus, errInvalidPatientQuery.ToHTTPError())
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		c.JSON(errInvalidPatientQuery.HTTPStatus, errInvalidPatientQuery.ToHTTPError())
		return
	}

	patients, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPatients(patients))
}

// Export downloads the filtered patient list; format is csv (default) or xlsx.
func (h *PatientHandler) Export(c *gin.Context) {
	var q request.PatientListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPatientQuery.HTTPStatus, errInvalidPatientQuery.ToHTTPError())
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		c.JSON(errInvalidPatientQuery.HTTPStatus, errInvalidPatientQuery.ToHTTPError())
		return
	}
	format, ok := entities.ParseExportFormat(c.Query("format"))
	if !ok {
		appErr := mapPatientError(usecase.ErrUnsupportedExportFormat)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := h.usecase.Export(c.Request.Context(), filter, format)
	if err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	sendFile(c, file)
}

func (h *PatientHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) Analyze(c *gin.Context) {
	analysis, err := h.usecase.Analyze(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPatientAnalysis(analysis))
}

func (h *PatientHandler) SuggestFollowUp(c *gin.Context) {
	id := c.Param("id")
	actions, err := h.usecase.SuggestFollowUp(c.Request.Context(), id)
	if err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFollowUp(id, actions))
}

// ShareText answers JSON by default and the bare text with ?format=text.
func (h *PatientHandler) ShareText(c *gin.Context) {
	id := c.Param("id")
	text, err := h.usecase.ShareText(c.Request.Context(), id)
	if err != nil {
		appErr := mapPatientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if c.Query("format") == "text" {
		c.String(http.StatusOK, text)
		return
	}
	c.JSON(http.StatusOK, response.ShareTextResponse{PatientID: id, Text: text})
}

func mapPatientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPatientID), errors.Is(err, usecase.ErrInvalidPatientStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedExportFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_EXPORT_FORMAT", "Export format must be csv or xlsx", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPatientNotFound):
		return pkg.NewDomainErrorSimple("PATIENT_NOT_FOUND", "Patient not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssistantUnavailable):
		return pkg.NewDomainError("ASSISTANT_UNAVAILABLE", "AI assistant unavailable", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
