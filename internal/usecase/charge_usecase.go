package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"
	"meditrack_pro/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrChargeNotFound                 = errors.New("charge not found")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrRecordAlreadyPaid              = errors.New("billing record already paid")
	ErrNothingToCharge                = errors.New("billing record has no outstanding balance")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentSettings configures the Mercado Pago charge flow.
//
// In Mock mode the gateway is not called and every charge is approved. The
// TestPayer fields only apply to sandbox (TEST-) access tokens.
type PaymentSettings struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (s PaymentSettings) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(s.AccessToken), "TEST-")
}

// IChargeUseCase collects the outstanding balance of billing records.
type IChargeUseCase interface {
	ChargeOutstanding(ctx context.Context, schedulingID string, mpPayload json.RawMessage) (entities.Charge, error)
	GetByID(ctx context.Context, id string) (entities.Charge, error)
	ListByRecord(ctx context.Context, schedulingID string) ([]entities.Charge, error)
}

type ChargeUseCase struct {
	repo     interfaces.IChargeRepository
	records  interfaces.IBillingRecordRepository
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings
	now      func() time.Time
	log      *zap.Logger
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(
	repo interfaces.IChargeRepository,
	records interfaces.IBillingRecordRepository,
	gateway interfaces.IPaymentGateway,
	settings PaymentSettings,
	log *zap.Logger,
) *ChargeUseCase {
	return &ChargeUseCase{
		repo:     repo,
		records:  records,
		gateway:  gateway,
		settings: settings,
		now:      time.Now,
		log:      logger.Component(log, "charge.usecase"),
	}
}

func (u *ChargeUseCase) ChargeOutstanding(ctx context.Context, schedulingID string, mpPayload json.RawMessage) (entities.Charge, error) {
	mockMode := u.settings.Mock
	schedulingID = strings.TrimSpace(schedulingID)
	log := u.log.With(zap.String("id_agendamento", schedulingID), zap.Bool("mock", mockMode))
	log.Info("charge start", zap.Int("payload_len", len(mpPayload)))

	if schedulingID == "" {
		return entities.Charge{}, ErrInvalidSchedulingID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Info("invalid payload")
			return entities.Charge{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		log.Warn("gateway not configured")
		return entities.Charge{}, ErrPaymentGatewayNotConfigured
	}

	record, err := u.records.GetBySchedulingID(ctx, schedulingID)
	if err != nil {
		log.Error("failed loading record", zap.Error(err))
		return entities.Charge{}, err
	}
	if record.SchedulingID == "" {
		return entities.Charge{}, ErrBillingRecordNotFound
	}
	if record.PaymentStatus == entities.PaymentStatusPago {
		return entities.Charge{}, ErrRecordAlreadyPaid
	}
	amount, err := u.remainingBalance(ctx, record)
	if err != nil {
		log.Error("failed loading previous charges", zap.Error(err))
		return entities.Charge{}, err
	}
	if amount <= 0 {
		return entities.Charge{}, ErrNothingToCharge
	}
	log.Info("record loaded", zap.String("status", string(record.PaymentStatus)), zap.Float64("amount", amount))

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.Charge{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if stringField(reqMap, "payment_method_id") == "" {
			log.Info("missing payment_method_id")
			return entities.Charge{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap, record)
		if _, identified := payerIdentity(reqMap); !identified {
			log.Info("missing/invalid payer")
			return entities.Charge{}, ErrInvalidMPPayload
		}
	}
	chargeDefaults(reqMap, record, amount)

	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Charge{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if mockMode {
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(reqMap)
		if err != nil {
			return entities.Charge{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Warn("payment gateway failed", zap.Error(err))
			return entities.Charge{}, mapGatewayError(err)
		}
	}
	log.Info("payment gateway success", zap.String("provider_payment_id", providerPaymentID), zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	charge := entities.Charge{
		ID:           providerPaymentID,
		RecordID:     record.SchedulingID,
		Amount:       amount,
		Date:         u.now().UTC(),
		Status:       entities.ChargeStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, charge)
	if err != nil {
		log.Error("charge repository create failed", zap.String("charge_id", charge.ID), zap.Error(err))
		return entities.Charge{}, err
	}
	log.Info("charge stored", zap.String("charge_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *ChargeUseCase) mockPayment(reqMap map[string]any) (string, string, json.RawMessage, error) {
	now := u.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(reqMap)+5)
	for k, v := range reqMap {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

// remainingBalance is the open balance of the record minus what earlier
// charges already collected or still hold. Denied charges do not count.
func (u *ChargeUseCase) remainingBalance(ctx context.Context, record entities.BillingRecord) (float64, error) {
	open := record.OutstandingBalance()
	if open <= 0 {
		return 0, nil
	}
	previous, err := u.repo.ListByRecordID(ctx, record.SchedulingID)
	if err != nil {
		return 0, err
	}
	for _, c := range previous {
		if c.Status == entities.ChargeStatusNegado {
			continue
		}
		open -= c.Amount
	}
	return math.Round(open*100) / 100, nil
}

// chargeDefaults ties the payment to the record. The amount always comes from
// the record, never from the caller.
func chargeDefaults(m map[string]any, record entities.BillingRecord, amount float64) {
	// external_reference lets Mercado Pago events be reconciled with the record.
	m["external_reference"] = record.SchedulingID
	if stringField(m, "description") == "" {
		m["description"] = fmt.Sprintf("Consulta %s - %s", record.SchedulingID, record.Procedure)
	}
	if _, ok := m["additional_info"]; !ok {
		m["additional_info"] = map[string]any{
			"items": []map[string]any{{
				"id":          record.SchedulingID,
				"title":       record.Procedure,
				"category_id": "services",
				"quantity":    1,
				"unit_price":  amount,
			}},
		}
	}
	m["transaction_amount"] = amount
}

// gatewayFailures classifies Mercado Pago error bodies, most specific first.
var gatewayFailures = []struct {
	err     error
	needles []string
}{
	{ErrPaymentGatewayCustomerNotFound, []string{"customer not found", `"code":2002`}},
	{ErrPaymentGatewayInvalidUsers, []string{"invalid users involved", `"code":2034`}},
	{ErrPaymentGatewayUnauthorized, []string{`"error":"unauthorized"`, `"status":401`}},
	{ErrPaymentGatewayBadRequest, []string{`"error":"bad_request"`, `"status":400`}},
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	for _, f := range gatewayFailures {
		for _, needle := range f.needles {
			if strings.Contains(msg, needle) {
				return f.err
			}
		}
	}
	return err
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func payerID(payer map[string]any) string {
	switch v := payer["id"].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// payerIdentity reports whether the payer is identified by id or email.
func payerIdentity(m map[string]any) (map[string]any, bool) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return nil, false
	}
	return payer, payerID(payer) != "" || stringField(payer, "email") != ""
}

// ensurePayerDefaults names the payer after the patient and, when nobody is
// identified, falls back to the configured (or sandbox) test payer email.
func (u *ChargeUseCase) ensurePayerDefaults(m map[string]any, record entities.BillingRecord) {
	if m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, identified := payerIdentity(m)
	if payer == nil {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if stringField(payer, "first_name") == "" && strings.TrimSpace(record.PatientName) != "" {
		payer["first_name"] = strings.TrimSpace(record.PatientName)
	}
	if identified {
		return
	}
	if email := strings.TrimSpace(u.settings.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.settings.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayerFromUserID swaps the configured sandbox test user id for
// its email, which is what the payments API expects for test users.
func (u *ChargeUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	if !u.settings.sandbox() {
		return
	}
	payer, _ := payerIdentity(m)
	if payer == nil || stringField(payer, "email") != "" {
		return
	}
	userID := strings.TrimSpace(u.settings.TestPayerUserID)
	email := strings.TrimSpace(u.settings.TestPayerEmail)
	if userID == "" || email == "" || payerID(payer) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.log.Debug("mapped sandbox payer user_id to payer.email")
}

func (u *ChargeUseCase) GetByID(ctx context.Context, id string) (entities.Charge, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Charge{}, ErrChargeNotFound
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Charge{}, err
	}
	if c.ID == "" {
		return entities.Charge{}, ErrChargeNotFound
	}
	return c, nil
}

// ListByRecord returns the charges of a record, newest first.
func (u *ChargeUseCase) ListByRecord(ctx context.Context, schedulingID string) ([]entities.Charge, error) {
	schedulingID = strings.TrimSpace(schedulingID)
	if schedulingID == "" {
		return nil, ErrInvalidSchedulingID
	}
	charges, err := u.repo.ListByRecordID(ctx, schedulingID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(charges, func(i, j int) bool {
		return charges[i].Date.After(charges[j].Date)
	})
	return charges, nil
}
