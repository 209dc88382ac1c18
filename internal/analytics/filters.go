package analytics

import (
	"strings"

	"meditrack_pro/internal/domain/entities"
)

// FilterPatients keeps patients whose name contains searchTerm (case-insensitive)
// or whose CPF contains it verbatim, and whose status equals status. An empty
// term or a zero status matches everything.
func FilterPatients(patients []entities.Patient, searchTerm string, status entities.PatientStatus) []entities.Patient {
	term := strings.ToLower(searchTerm)
	out := make([]entities.Patient, 0, len(patients))
	for _, p := range patients {
		matchesSearch := strings.Contains(strings.ToLower(p.Name), term) || strings.Contains(p.CPF, searchTerm)
		matchesStatus := status == "" || p.Status == status
		if matchesSearch && matchesStatus {
			out = append(out, p)
		}
	}
	return out
}

// FilterRecordsByStatus keeps records with the given payment status; a zero
// status keeps all of them.
func FilterRecordsByStatus(records []entities.BillingRecord, status entities.PaymentStatus) []entities.BillingRecord {
	out := make([]entities.BillingRecord, 0, len(records))
	for _, r := range records {
		if status == "" || r.PaymentStatus == status {
			out = append(out, r)
		}
	}
	return out
}
