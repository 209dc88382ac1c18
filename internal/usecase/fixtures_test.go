package usecase

import "meditrack_pro/internal/domain/entities"

func fixtureContracts() []entities.Contract {
	return []entities.Contract{
		{ID: "C-00", Name: "Particular", Coverage: "Total", RepassePercent: 100, PrazoDias: 0, Status: entities.ContractStatusAtivo},
		{ID: "C-10", Name: "Convênio Prata", Coverage: "Nacional", RepassePercent: 75, PrazoDias: 30, Status: entities.ContractStatusAtivo},
		{ID: "C-02", Name: "Amil Dental", Coverage: "Nacional", RepassePercent: 70, PrazoDias: 45, Status: entities.ContractStatusAtivo},
		{ID: "C-03", Name: "SulAmérica", Coverage: "Completa", RepassePercent: 80, PrazoDias: 30, Status: entities.ContractStatusAtivo},
	}
}

func fixturePatients() []entities.Patient {
	return []entities.Patient{
		{
			ID: "P-001", Name: "João Silva", CPF: "123.456.789-00", Phone: "(11) 98765-4321",
			ContractID: "C-10", Plan: "Prata", LastVisit: "2024-05-20", Status: entities.PatientStatusAtivo,
			Observations: "Paciente em tratamento de canal.",
			VisitHistory: []entities.VisitEntry{
				{Date: "2024-05-20", Procedure: "Tratamento Canal", Notes: "Início da polpação."},
				{Date: "2024-04-12", Procedure: "Avaliação Inicial", Notes: "Dor no dente 32."},
			},
		},
		{
			ID: "P-002", Name: "Maria Souza", CPF: "987.654.321-99", Phone: "(11) 87654-3210",
			ContractID: "C-00", Plan: "N/A - Particular", LastVisit: "2024-05-22", Status: entities.PatientStatusAtivo,
		},
	}
}

func fixtureRecords() []entities.BillingRecord {
	return []entities.BillingRecord{
		{SchedulingID: "AG-8001", PatientID: "P-001", PatientName: "João Silva", ContractID: "C-10", ContractName: "Convênio Prata", ConsultationDate: "2024-05-20", Procedure: "Tratamento Canal", TotalValue: 1200, PaidValue: 0, PaymentStatus: entities.PaymentStatusPendente, CertificateIssued: true},
		{SchedulingID: "AG-8002", PatientID: "P-002", PatientName: "Maria Souza", ContractID: "C-00", ContractName: "Particular", ConsultationDate: "2024-05-22", Procedure: "Avaliação Geral", TotalValue: 350, PaidValue: 350, PaymentStatus: entities.PaymentStatusPago},
		{SchedulingID: "AG-8003", PatientID: "P-001", PatientName: "João Silva", ContractID: "C-10", ContractName: "Convênio Prata", ConsultationDate: "2024-05-25", Procedure: "Restauração Resina", TotalValue: 250, PaidValue: 250, PaymentStatus: entities.PaymentStatusPago},
	}
}
