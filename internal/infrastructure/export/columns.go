package export

import (
	"strconv"

	"meditrack_pro/internal/domain/entities"
)

var recordHeaders = []string{"ID Agendamento", "Paciente", "Convênio", "Data", "Procedimento", "Valor Total", "Valor Pago", "Status"}

// recordRow renders a record in recordHeaders order. Amounts use the shortest
// decimal form (1200, 12.5).
func recordRow(r entities.BillingRecord) []string {
	return []string{
		r.SchedulingID,
		r.PatientName,
		r.ContractName,
		r.ConsultationDate,
		r.Procedure,
		formatAmount(r.TotalValue),
		formatAmount(r.PaidValue),
		string(r.PaymentStatus),
	}
}

var patientHeaders = []string{"ID", "Nome", "CPF", "Telefone", "Convenio", "Plano", "Status", "Ultima Visita"}

// patientRow renders a patient in patientHeaders order. Missing convênio
// names and visit dates are written as N/A.
func patientRow(r entities.PatientSheetRow) []string {
	return []string{
		r.Patient.ID,
		r.Patient.Name,
		r.Patient.CPF,
		r.Patient.Phone,
		orNotAvailable(r.ContractName),
		r.Patient.Plan,
		string(r.Patient.Status),
		orNotAvailable(r.Patient.LastVisit),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
