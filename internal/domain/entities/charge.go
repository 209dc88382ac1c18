package entities

import (
	"encoding/json"
	"time"
)

// ChargeStatus represents the payment provider outcome for a charge.
type ChargeStatus string

const (
	ChargeStatusPendente ChargeStatus = "pendente"
	ChargeStatusAprovado ChargeStatus = "aprovado"
	ChargeStatusNegado   ChargeStatus = "negado"
)

// ChargeStatusFromProvider maps Mercado Pago payment statuses to ChargeStatus.
func ChargeStatusFromProvider(providerStatus string) ChargeStatus {
	switch providerStatus {
	case "approved", "authorized":
		return ChargeStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return ChargeStatusNegado
	default:
		return ChargeStatusPendente
	}
}

// Charge is a collection attempt of the outstanding balance of a billing record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (record_id-index): record_id
//
// MPPayloadRaw keeps the provider response body as received; MPPayload is the
// parsed form used for querying/debugging.
type Charge struct {
	ID       string       `json:"id"`
	RecordID string       `json:"record_id"`
	Amount   float64      `json:"amount"`
	Date     time.Time    `json:"date"`
	Status   ChargeStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
