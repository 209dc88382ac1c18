package response

import (
	"encoding/json"
	"strings"
	"testing"

	"meditrack_pro/internal/analytics"
	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase"
)

func TestFromRecordsWithOverdue(t *testing.T) {
	in := []usecase.RecordWithOverdue{{
		BillingRecord: entities.BillingRecord{SchedulingID: "AG-8001", TotalValue: 1200, PaidValue: 200, PaymentStatus: entities.PaymentStatusParcial},
		Overdue:       analytics.OverdueResult{IsOverdue: true, DaysElapsed: 8},
	}}

	res := FromRecordsWithOverdue(in)
	if len(res) != 1 || res[0].OutstandingBalance != 1000 {
		t.Fatalf("unexpected response: %+v", res)
	}

	b, err := json.Marshal(res[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)
	for _, want := range []string{`"id_agendamento":"AG-8001"`, `"saldo_em_aberto":1000`, `"is_overdue":true`, `"days_elapsed":8`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in %s", want, body)
		}
	}
}

func TestFromBillingSummary_OmitsRatioWithoutBilling(t *testing.T) {
	s := usecase.BillingSummary{
		ByContract: []usecase.ContractPivot{
			{ContractName: "Convênio Prata", PivotEntry: analytics.PivotEntry{Count: 2, TotalBilled: 1450, TotalPaid: 250}, PaidRatio: 250.0 / 1450.0, HasRatio: true},
			{ContractName: "Cortesia", PivotEntry: analytics.PivotEntry{Count: 1}},
		},
		RecordCount: 3,
		TotalBilled: 1450,
		TotalPaid:   250,
	}

	res := FromBillingSummary(s)
	if res.ByContract[0].PaidRatio == nil || *res.ByContract[0].PaidRatio != 250.0/1450.0 {
		t.Fatalf("expected ratio on first row: %+v", res.ByContract[0])
	}
	if res.ByContract[1].PaidRatio != nil {
		t.Fatalf("expected no ratio on zero-billed row")
	}

	b, _ := json.Marshal(res.ByContract[1])
	if strings.Contains(string(b), "paid_ratio") {
		t.Fatalf("paid_ratio must be omitted: %s", b)
	}
}
