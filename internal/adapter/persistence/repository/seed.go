package repository

import "meditrack_pro/internal/domain/entities"

// Seed data served by the memory repositories. Every call returns fresh
// slices so callers can mutate them safely.

func SeedContracts() []entities.Contract {
	return []entities.Contract{
		{ID: "C-00", Name: "Particular", Coverage: "Total", RepassePercent: 100, PrazoDias: 0, Status: entities.ContractStatusAtivo},
		{ID: "C-10", Name: "Convênio Prata", Coverage: "Nacional", RepassePercent: 75, PrazoDias: 30, Status: entities.ContractStatusAtivo},
		{ID: "C-02", Name: "Amil Dental", Coverage: "Nacional", RepassePercent: 70, PrazoDias: 30, Status: entities.ContractStatusAtivo},
		{ID: "C-03", Name: "SulAmérica", Coverage: "Completa", RepassePercent: 80, PrazoDias: 30, Status: entities.ContractStatusAtivo},
	}
}

func SeedPatients() []entities.Patient {
	return []entities.Patient{
		{
			ID:           "P-001",
			Name:         "João Silva",
			CPF:          "123.456.789-00",
			Phone:        "(11) 98765-4321",
			ContractID:   "C-10",
			Plan:         "Prata",
			LastVisit:    "2024-05-20",
			Status:       entities.PatientStatusAtivo,
			Observations: "Paciente em tratamento de canal.",
			VisitHistory: []entities.VisitEntry{
				{Date: "2024-05-20", Procedure: "Tratamento Canal", Notes: "Início da polpação."},
				{Date: "2024-04-12", Procedure: "Avaliação Inicial", Notes: "Dor no dente 32."},
				{Date: "2024-01-15", Procedure: "Limpeza Preventiva", Notes: "Retorno semestral."},
			},
		},
		{
			ID:         "P-002",
			Name:       "Maria Souza",
			CPF:        "987.654.321-99",
			Phone:      "(11) 87654-3210",
			ContractID: "C-00",
			Plan:       "N/A - Particular",
			LastVisit:  "2024-05-22",
			Status:     entities.PatientStatusAtivo,
			VisitHistory: []entities.VisitEntry{
				{Date: "2024-05-22", Procedure: "Avaliação Geral", Notes: "Check-up completo."},
				{Date: "2023-11-05", Procedure: "Restauração", Notes: "Dente 14 com infiltração."},
			},
		},
	}
}

func SeedBillingRecords() []entities.BillingRecord {
	return []entities.BillingRecord{
		{PatientID: "P-001", PatientName: "João Silva", ContractID: "C-10", ContractName: "Convênio Prata", SchedulingID: "AG-8001", ConsultationDate: "2024-05-20", Procedure: "Tratamento Canal", TotalValue: 1200, PaidValue: 0, PaymentStatus: entities.PaymentStatusPendente, CertificateIssued: true},
		{PatientID: "P-002", PatientName: "Maria Souza", ContractID: "C-00", ContractName: "Particular", SchedulingID: "AG-8002", ConsultationDate: "2024-05-22", Procedure: "Avaliação Geral", TotalValue: 350, PaidValue: 350, PaymentStatus: entities.PaymentStatusPago},
		{PatientID: "P-001", PatientName: "João Silva", ContractID: "C-10", ContractName: "Convênio Prata", SchedulingID: "AG-8003", ConsultationDate: "2024-05-25", Procedure: "Restauração Resina", TotalValue: 250, PaidValue: 250, PaymentStatus: entities.PaymentStatusPago},
	}
}

func SeedAttendanceTrend() []entities.MonthlyVisits {
	return []entities.MonthlyVisits{
		{Month: "Jan", Visits: 45},
		{Month: "Fev", Visits: 52},
		{Month: "Mar", Visits: 48},
		{Month: "Abr", Visits: 61},
		{Month: "Mai", Visits: 55},
		{Month: "Jun", Visits: 67},
		{Month: "Jul", Visits: 72},
	}
}
