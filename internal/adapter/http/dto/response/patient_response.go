package response

import (
	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase"
)

type PatientListResponse struct {
	Patients []entities.Patient `json:"patients"`
	Total    int                `json:"total"`
}

func FromPatients(ps []entities.Patient) PatientListResponse {
	if ps == nil {
		ps = []entities.Patient{}
	}
	return PatientListResponse{Patients: ps, Total: len(ps)}
}

type PatientAnalysisResponse struct {
	PatientID string `json:"patient_id"`
	Analysis  string `json:"analysis"`
	Fallback  bool   `json:"fallback"`
	Cached    bool   `json:"cached"`
}

func FromPatientAnalysis(a usecase.PatientAnalysis) PatientAnalysisResponse {
	return PatientAnalysisResponse{PatientID: a.PatientID, Analysis: a.Text, Fallback: a.Fallback, Cached: a.Cached}
}

type FollowUpResponse struct {
	PatientID string                    `json:"patient_id"`
	Actions   []entities.FollowUpAction `json:"actions"`
}

func FromFollowUp(patientID string, actions []entities.FollowUpAction) FollowUpResponse {
	if actions == nil {
		actions = []entities.FollowUpAction{}
	}
	return FollowUpResponse{PatientID: patientID, Actions: actions}
}

type ShareTextResponse struct {
	PatientID string `json:"patient_id"`
	Text      string `json:"text"`
}
