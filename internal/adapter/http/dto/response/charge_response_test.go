package response

import (
	"encoding/json"
	"testing"
	"time"

	"meditrack_pro/internal/domain/entities"
)

func TestFromCharge(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	c := entities.Charge{
		ID:           "ch-1",
		RecordID:     "AG-8001",
		Amount:       1200,
		Date:         now,
		Status:       entities.ChargeStatusAprovado,
		MPPayloadRaw: raw,
		MPPayload:    payload,
	}

	res := FromCharge(c)
	if res.ID != "ch-1" || res.RecordID != "AG-8001" || res.Amount != 1200 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Status != "aprovado" || !res.Date.Equal(now) {
		t.Fatalf("unexpected status/date: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
	if got := FromCharges(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
