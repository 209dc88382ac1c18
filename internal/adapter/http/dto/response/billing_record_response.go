package response

import (
	"meditrack_pro/internal/analytics"
	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase"
)

type BillingRecordResponse struct {
	entities.BillingRecord
	OutstandingBalance float64                 `json:"saldo_em_aberto"`
	Overdue            analytics.OverdueResult `json:"overdue"`
}

func FromRecordsWithOverdue(rs []usecase.RecordWithOverdue) []BillingRecordResponse {
	out := make([]BillingRecordResponse, len(rs))
	for i, r := range rs {
		out[i] = BillingRecordResponse{
			BillingRecord:      r.BillingRecord,
			OutstandingBalance: r.OutstandingBalance(),
			Overdue:            r.Overdue,
		}
	}
	return out
}

// ContractPivotResponse omits paid_ratio when nothing was billed.
type ContractPivotResponse struct {
	ContractName string   `json:"nome_convenio"`
	Count        int      `json:"count"`
	TotalBilled  float64  `json:"total_billed"`
	TotalPaid    float64  `json:"total_paid"`
	PaidRatio    *float64 `json:"paid_ratio,omitempty"`
}

type BillingSummaryResponse struct {
	ByContract  []ContractPivotResponse `json:"by_contract"`
	RecordCount int                     `json:"record_count"`
	TotalBilled float64                 `json:"total_billed"`
	TotalPaid   float64                 `json:"total_paid"`
}

func FromBillingSummary(s usecase.BillingSummary) BillingSummaryResponse {
	rows := make([]ContractPivotResponse, len(s.ByContract))
	for i, p := range s.ByContract {
		rows[i] = ContractPivotResponse{
			ContractName: p.ContractName,
			Count:        p.Count,
			TotalBilled:  p.TotalBilled,
			TotalPaid:    p.TotalPaid,
		}
		if p.HasRatio {
			ratio := p.PaidRatio
			rows[i].PaidRatio = &ratio
		}
	}
	return BillingSummaryResponse{
		ByContract:  rows,
		RecordCount: s.RecordCount,
		TotalBilled: s.TotalBilled,
		TotalPaid:   s.TotalPaid,
	}
}
