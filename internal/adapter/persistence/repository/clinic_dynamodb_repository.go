package repository

import (
	"context"

	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultPatientsTableName  = "patients"
	defaultContractsTableName = "contracts"
	defaultRecordsTableName   = "billing_records"
)

type patientItem struct {
	ID           string                `dynamodbav:"id"`
	Name         string                `dynamodbav:"name"`
	CPF          string                `dynamodbav:"cpf"`
	Phone        string                `dynamodbav:"phone"`
	ContractID   string                `dynamodbav:"convenio_id"`
	Plan         string                `dynamodbav:"plan"`
	LastVisit    string                `dynamodbav:"last_visit,omitempty"`
	Status       string                `dynamodbav:"status"`
	Observations string                `dynamodbav:"observations,omitempty"`
	VisitHistory []entities.VisitEntry `dynamodbav:"visit_history,omitempty"`
}

type contractItem struct {
	ID             string  `dynamodbav:"id"`
	Name           string  `dynamodbav:"name"`
	Coverage       string  `dynamodbav:"coverage"`
	RepassePercent float64 `dynamodbav:"repasse_percent"`
	PrazoDias      int     `dynamodbav:"prazo_dias"`
	Status         string  `dynamodbav:"status"`
}

type billingRecordItem struct {
	SchedulingID      string  `dynamodbav:"id_agendamento"`
	PatientID         string  `dynamodbav:"id_paciente"`
	PatientName       string  `dynamodbav:"nome_paciente"`
	ContractID        string  `dynamodbav:"id_convenio"`
	ContractName      string  `dynamodbav:"nome_convenio"`
	ConsultationDate  string  `dynamodbav:"data_consulta"`
	Procedure         string  `dynamodbav:"procedimento"`
	TotalValue        float64 `dynamodbav:"valor_total"`
	PaidValue         float64 `dynamodbav:"valor_pago"`
	PaymentStatus     string  `dynamodbav:"status_pagamento"`
	CertificateIssued bool    `dynamodbav:"emitiu_atestado"`
}

// PatientDynamoRepository reads patients. Table PK: id (string).
type PatientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPatientRepository = (*PatientDynamoRepository)(nil)

func NewPatientDynamoRepository(ddb *dynamodb.Client, tableName string) *PatientDynamoRepository {
	return &PatientDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultPatientsTableName)}
}

func (r *PatientDynamoRepository) List(ctx context.Context) ([]entities.Patient, error) {
	items, err := scanAll[patientItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Patient, len(items))
	for i, it := range items {
		out[i] = fromPatientItem(it)
	}
	return out, nil
}

func (r *PatientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	it, found, err := getItem[patientItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Patient{}, err
	}
	return fromPatientItem(it), nil
}

// ContractDynamoRepository reads convênios. Table PK: id (string).
type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client, tableName string) *ContractDynamoRepository {
	return &ContractDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultContractsTableName)}
}

func (r *ContractDynamoRepository) List(ctx context.Context) ([]entities.Contract, error) {
	items, err := scanAll[contractItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Contract, len(items))
	for i, it := range items {
		out[i] = fromContractItem(it)
	}
	return out, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	it, found, err := getItem[contractItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

// BillingRecordDynamoRepository reads billing records. Table PK: id_agendamento (string).
type BillingRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingRecordRepository = (*BillingRecordDynamoRepository)(nil)

func NewBillingRecordDynamoRepository(ddb *dynamodb.Client, tableName string) *BillingRecordDynamoRepository {
	return &BillingRecordDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultRecordsTableName)}
}

func (r *BillingRecordDynamoRepository) List(ctx context.Context) ([]entities.BillingRecord, error) {
	items, err := scanAll[billingRecordItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.BillingRecord, len(items))
	for i, it := range items {
		out[i] = fromBillingRecordItem(it)
	}
	return out, nil
}

func (r *BillingRecordDynamoRepository) GetBySchedulingID(ctx context.Context, schedulingID string) (entities.BillingRecord, error) {
	it, found, err := getItem[billingRecordItem](ctx, r.ddb, r.tableName, "id_agendamento", schedulingID)
	if err != nil || !found {
		return entities.BillingRecord{}, err
	}
	return fromBillingRecordItem(it), nil
}

func fromPatientItem(it patientItem) entities.Patient {
	return entities.Patient{
		ID:           it.ID,
		Name:         it.Name,
		CPF:          it.CPF,
		Phone:        it.Phone,
		ContractID:   it.ContractID,
		Plan:         it.Plan,
		LastVisit:    it.LastVisit,
		Status:       patientStatusOf(it.Status),
		Observations: it.Observations,
		VisitHistory: it.VisitHistory,
	}
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:             it.ID,
		Name:           it.Name,
		Coverage:       it.Coverage,
		RepassePercent: it.RepassePercent,
		PrazoDias:      it.PrazoDias,
		Status:         contractStatusOf(it.Status),
	}
}

func fromBillingRecordItem(it billingRecordItem) entities.BillingRecord {
	return entities.BillingRecord{
		SchedulingID:      it.SchedulingID,
		PatientID:         it.PatientID,
		PatientName:       it.PatientName,
		ContractID:        it.ContractID,
		ContractName:      it.ContractName,
		ConsultationDate:  it.ConsultationDate,
		Procedure:         it.Procedure,
		TotalValue:        it.TotalValue,
		PaidValue:         it.PaidValue,
		PaymentStatus:     paymentStatusOf(it.PaymentStatus),
		CertificateIssued: it.CertificateIssued,
	}
}

// Stored statuses are matched case-insensitively; unknown values are kept as-is
// so the analytics layer can still report them.
func patientStatusOf(raw string) entities.PatientStatus {
	if s, ok := entities.ParsePatientStatus(raw); ok {
		return s
	}
	return entities.PatientStatus(raw)
}

func contractStatusOf(raw string) entities.ContractStatus {
	if s, ok := entities.ParseContractStatus(raw); ok {
		return s
	}
	return entities.ContractStatus(raw)
}

func paymentStatusOf(raw string) entities.PaymentStatus {
	if s, ok := entities.ParsePaymentStatus(raw); ok {
		return s
	}
	return entities.PaymentStatus(raw)
}
