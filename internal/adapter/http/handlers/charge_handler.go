package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "meditrack_pro/internal/adapter/http/dto/request"
	response "meditrack_pro/internal/adapter/http/dto/response"
	"meditrack_pro/internal/usecase"
	"meditrack_pro/pkg"
	"meditrack_pro/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChargeHandler handles HTTP requests for charges of outstanding balances.

type ChargeHandler struct {
	usecase  usecase.IChargeUseCase
	mockMode bool
	log      *zap.Logger
}

func NewChargeHandler(uc usecase.IChargeUseCase, mockMode bool, log *zap.Logger) *ChargeHandler {
	return &ChargeHandler{usecase: uc, mockMode: mockMode, log: logger.Component(log, "charge.handler")}
}

// ChargeOutstanding charges the outstanding balance of the record in path.
func (h *ChargeHandler) ChargeOutstanding(c *gin.Context) {
	schedulingID := c.Param("id")
	log := h.log.With(zap.String("id_agendamento", schedulingID))
	log.Debug("create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Info("payload invalid in mock mode; fallback to empty payload", zap.Error(err))
			mpPayload = json.RawMessage("{}")
		} else {
			log.Info("invalid payload", zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.ChargeOutstanding(c.Request.Context(), schedulingID, mpPayload)
	if err != nil {
		log.Info("create failed", zap.Error(err))
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("create success", zap.String("charge_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusCreated, response.FromCharge(created))
}

// ListByRecord returns the charges of a record, newest first.
func (h *ChargeHandler) ListByRecord(c *gin.Context) {
	charges, err := h.usecase.ListByRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCharges(charges))
}

func (h *ChargeHandler) GetByID(c *gin.Context) {
	charge, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCharge(charge))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.ChargeCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.MPPayload != nil {
		if strings.TrimSpace(string(envelope.MPPayload)) == "null" {
			return nil, errors.New("mp_payload cannot be empty")
		}
		return envelope.MPPayload, nil
	}

	return json.RawMessage(raw), nil
}

func mapChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSchedulingID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBillingRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Billing record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecordAlreadyPaid):
		return pkg.NewDomainErrorSimple("RECORD_ALREADY_PAID", "Billing record already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Billing record has no outstanding balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
