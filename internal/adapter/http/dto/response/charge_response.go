package response

import (
	"time"

	"meditrack_pro/internal/domain/entities"
)

type ChargeResponse struct {
	ID       string    `json:"id"`
	RecordID string    `json:"id_agendamento"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromCharge(c entities.Charge) ChargeResponse {
	return ChargeResponse{
		ID:           c.ID,
		RecordID:     c.RecordID,
		Amount:       c.Amount,
		Date:         c.Date,
		Status:       string(c.Status),
		MPPayloadRaw: string(c.MPPayloadRaw),
		MPPayload:    c.MPPayload,
	}
}

func FromCharges(cs []entities.Charge) []ChargeResponse {
	out := make([]ChargeResponse, len(cs))
	for i, c := range cs {
		out[i] = FromCharge(c)
	}
	return out
}
