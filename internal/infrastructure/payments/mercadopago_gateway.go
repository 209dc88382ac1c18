package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"meditrack_pro/internal/usecase/interfaces"
	"meditrack_pro/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges outstanding balances through the Mercado Pago
// payments API. Mock charges never reach it.
type MercadoPagoGateway struct {
	client payment.Client
	log    *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, log *zap.Logger) (*MercadoPagoGateway, error) {
	log = logger.Component(log, "payment.gateway")
	if accessToken == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Debug("create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Warn("payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Warn("sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error("response marshal failed", zap.Error(err))
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.log.Info("create success",
		zap.String("provider_payment_id", id),
		zap.String("provider_status", resp.Status),
	)

	return id, resp.Status, b, nil
}
