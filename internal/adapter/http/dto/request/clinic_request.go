package request

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase"
)

var (
	ErrInvalidPatientStatusFilter = errors.New("invalid patient status filter")
	ErrInvalidRecordStatusFilter  = errors.New("invalid record status filter")
	ErrInvalidCalendarQuery       = errors.New("invalid calendar query")
)

// PatientListQuery binds GET /patients?search=&status=. "all" or an empty
// status disables the status filter.
type PatientListQuery struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

func (q PatientListQuery) ToFilter() (usecase.PatientFilter, error) {
	f := usecase.PatientFilter{Search: strings.TrimSpace(q.Search)}
	raw := strings.TrimSpace(q.Status)
	if raw == "" || strings.EqualFold(raw, "all") {
		return f, nil
	}
	status, ok := entities.ParsePatientStatus(raw)
	if !ok {
		return usecase.PatientFilter{}, ErrInvalidPatientStatusFilter
	}
	f.Status = status
	return f, nil
}

// RecordListQuery binds GET /records?status=.
type RecordListQuery struct {
	Status string `form:"status"`
}

func (q RecordListQuery) ResolveStatus() (entities.PaymentStatus, error) {
	raw := strings.TrimSpace(q.Status)
	if raw == "" || strings.EqualFold(raw, "all") {
		return "", nil
	}
	status, ok := entities.ParsePaymentStatus(raw)
	if !ok {
		return "", ErrInvalidRecordStatusFilter
	}
	return status, nil
}

// CalendarQueryRequest binds GET /calendar. Year and month are both optional;
// when one is given the other must be too.
type CalendarQueryRequest struct {
	Year       string `form:"year"`
	Month      string `form:"month"`
	PatientID  string `form:"patient_id"`
	ContractID string `form:"contract_id"`
}

func (q CalendarQueryRequest) ToQuery() (usecase.CalendarQuery, error) {
	out := usecase.CalendarQuery{
		PatientID:  strings.TrimSpace(q.PatientID),
		ContractID: strings.TrimSpace(q.ContractID),
	}
	year, month := strings.TrimSpace(q.Year), strings.TrimSpace(q.Month)
	if year == "" && month == "" {
		return out, nil
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return usecase.CalendarQuery{}, ErrInvalidCalendarQuery
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return usecase.CalendarQuery{}, ErrInvalidCalendarQuery
	}
	out.Year, out.Month = y, time.Month(m)
	return out, nil
}

// CertificateRequest optionally attaches a photo to the certificate, inline
// (`photo`, a base64 data URI) or from a stored capture.
type CertificateRequest struct {
	Photo     string `json:"photo"`
	CaptureID string `json:"capture_id"`
}

func (r CertificateRequest) ToUseCase() usecase.CertificateRequest {
	return usecase.CertificateRequest{
		PhotoDataURI: strings.TrimSpace(r.Photo),
		CaptureID:    strings.TrimSpace(r.CaptureID),
	}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// CaptureRequest carries a camera still as a data URI (data:image/jpeg;base64,...).
type CaptureRequest struct {
	Image string `json:"image" binding:"required"`
}
