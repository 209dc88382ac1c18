package request

import "encoding/json"

// ChargeCreateRequest is the payload for the "cobrar saldo em aberto" route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.
// The bare Mercado Pago payload is accepted as well.

type ChargeCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
