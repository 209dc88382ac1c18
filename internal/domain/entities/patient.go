package entities

import "strings"

// PatientStatus is the registration status of a patient.
type PatientStatus string

const (
	PatientStatusAtivo    PatientStatus = "Ativo"
	PatientStatusInativo  PatientStatus = "Inativo"
	PatientStatusPendente PatientStatus = "Pendente"
)

func (s PatientStatus) Valid() bool {
	switch s {
	case PatientStatusAtivo, PatientStatusInativo, PatientStatusPendente:
		return true
	}
	return false
}

// ParsePatientStatus accepts the exact label, ignoring surrounding spaces and case.
func ParsePatientStatus(raw string) (PatientStatus, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range []PatientStatus{PatientStatusAtivo, PatientStatusInativo, PatientStatusPendente} {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// VisitEntry is one line of a patient's visit history.
type VisitEntry struct {
	Date      string `json:"date" dynamodbav:"date"`
	Procedure string `json:"procedure" dynamodbav:"procedure"`
	Notes     string `json:"notes" dynamodbav:"notes"`
}

// Patient is a clinic patient.
//
// ContractID always references a Contract; SelfPayContractID marks a patient
// paying out-of-pocket ("Particular"). Dates are calendar dates (YYYY-MM-DD).
type Patient struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CPF          string        `json:"cpf"`
	Phone        string        `json:"phone"`
	ContractID   string        `json:"contract_id"`
	Plan         string        `json:"plan"`
	LastVisit    string        `json:"last_visit,omitempty"`
	Status       PatientStatus `json:"status"`
	Observations string        `json:"observations,omitempty"`
	VisitHistory []VisitEntry  `json:"visit_history,omitempty"`
}
