package analytics

import "meditrack_pro/internal/domain/entities"

// PivotEntry aggregates the records of one contract display name.
type PivotEntry struct {
	Count       int     `json:"count"`
	TotalBilled float64 `json:"total_billed"`
	TotalPaid   float64 `json:"total_paid"`
}

// PaidRatio is TotalPaid/TotalBilled. ok is false, with a zero ratio, when
// nothing was billed.
func (e PivotEntry) PaidRatio() (ratio float64, ok bool) {
	if e.TotalBilled == 0 {
		return 0, false
	}
	return e.TotalPaid / e.TotalBilled, true
}

// PivotByContract groups records by their denormalized contract name
// (nome_convenio). Distinct contracts sharing a display name are merged.
func PivotByContract(records []entities.BillingRecord) map[string]PivotEntry {
	pivot := make(map[string]PivotEntry)
	for _, r := range records {
		e := pivot[r.ContractName]
		e.Count++
		e.TotalBilled += r.TotalValue
		e.TotalPaid += r.PaidValue
		pivot[r.ContractName] = e
	}
	return pivot
}

// TotalBilled sums valor_total over all records.
func TotalBilled(records []entities.BillingRecord) float64 {
	total := 0.0
	for _, r := range records {
		total += r.TotalValue
	}
	return total
}

// TotalPaid sums valor_pago over all records.
func TotalPaid(records []entities.BillingRecord) float64 {
	total := 0.0
	for _, r := range records {
		total += r.PaidValue
	}
	return total
}
