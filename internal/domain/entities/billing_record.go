package entities

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used by every date field of the domain.
const DateLayout = "2006-01-02"

// PaymentStatus is the payment situation of a billing record.
type PaymentStatus string

const (
	PaymentStatusPago     PaymentStatus = "Pago"
	PaymentStatusParcial  PaymentStatus = "Parcial"
	PaymentStatusPendente PaymentStatus = "Pendente"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPago, PaymentStatusParcial, PaymentStatusPendente:
		return true
	}
	return false
}

func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range []PaymentStatus{PaymentStatusPago, PaymentStatusParcial, PaymentStatusPendente} {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// BillingRecord is one consultation and its billing situation (registro clínico).
//
// PatientName and ContractName are denormalized copies taken when the record was
// created; they are not kept in sync with Patient/Contract. PaidValue may be above
// or below TotalValue.
type BillingRecord struct {
	SchedulingID      string        `json:"id_agendamento"`
	PatientID         string        `json:"id_paciente"`
	PatientName       string        `json:"nome_paciente"`
	ContractID        string        `json:"id_convenio"`
	ContractName      string        `json:"nome_convenio"`
	ConsultationDate  string        `json:"data_consulta"`
	Procedure         string        `json:"procedimento"`
	TotalValue        float64       `json:"valor_total"`
	PaidValue         float64       `json:"valor_pago"`
	PaymentStatus     PaymentStatus `json:"status_pagamento"`
	CertificateIssued bool          `json:"emitiu_atestado"`
}

// Date parses ConsultationDate as a calendar date in UTC.
func (r BillingRecord) Date() (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(r.ConsultationDate))
}

// OutstandingBalance is what is still owed on the record, never negative.
func (r BillingRecord) OutstandingBalance() float64 {
	if r.PaidValue >= r.TotalValue {
		return 0
	}
	return r.TotalValue - r.PaidValue
}
