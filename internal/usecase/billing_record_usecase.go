package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"meditrack_pro/internal/analytics"
	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"
	"meditrack_pro/pkg/datauri"
	"meditrack_pro/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrInvalidSchedulingID     = errors.New("invalid scheduling id")
	ErrBillingRecordNotFound   = errors.New("billing record not found")
	ErrInvalidPaymentStatus    = errors.New("invalid payment status")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrInvalidPhoto            = errors.New("invalid certificate photo")
	ErrCertificateUnavailable  = errors.New("certificate renderer not configured")
)

// RecordWithOverdue is a billing record annotated with its overdue check.
type RecordWithOverdue struct {
	entities.BillingRecord
	Overdue analytics.OverdueResult
}

// ContractPivot is one row of the financial pivot. HasRatio is false when
// nothing was billed and PaidRatio must not be displayed.
type ContractPivot struct {
	ContractName string
	analytics.PivotEntry
	PaidRatio float64
	HasRatio  bool
}

type BillingSummary struct {
	ByContract  []ContractPivot
	RecordCount int
	TotalBilled float64
	TotalPaid   float64
}

// CertificateRequest optionally attaches a photo, either inline or by capture id.
// PhotoDataURI wins when both are set.
type CertificateRequest struct {
	PhotoDataURI string
	CaptureID    string
}

type IBillingRecordUseCase interface {
	List(ctx context.Context, status entities.PaymentStatus) ([]RecordWithOverdue, error)
	Summary(ctx context.Context) (BillingSummary, error)
	Export(ctx context.Context, format entities.ExportFormat) (entities.File, error)
	Certificate(ctx context.Context, schedulingID string, req CertificateRequest) (entities.File, error)
}

type BillingRecordUseCase struct {
	records   interfaces.IBillingRecordRepository
	captures  interfaces.ICaptureRepository
	exporters map[entities.ExportFormat]interfaces.IRecordExporter
	renderer  interfaces.ICertificateRenderer
	settings  ClinicSettings
	now       func() time.Time
	log       *zap.Logger
}

var _ IBillingRecordUseCase = (*BillingRecordUseCase)(nil)

func NewBillingRecordUseCase(
	records interfaces.IBillingRecordRepository,
	captures interfaces.ICaptureRepository,
	exporters []interfaces.IRecordExporter,
	renderer interfaces.ICertificateRenderer,
	settings ClinicSettings,
	log *zap.Logger,
) *BillingRecordUseCase {
	byFormat := make(map[entities.ExportFormat]interfaces.IRecordExporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &BillingRecordUseCase{
		records:   records,
		captures:  captures,
		exporters: byFormat,
		renderer:  renderer,
		settings:  settings.withDefaults(),
		now:       time.Now,
		log:       logger.Component(log, "record.usecase"),
	}
}

func (u *BillingRecordUseCase) List(ctx context.Context, status entities.PaymentStatus) ([]RecordWithOverdue, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidPaymentStatus
	}
	records, err := u.records.List(ctx)
	if err != nil {
		u.log.Error("list records failed", zap.Error(err))
		return nil, err
	}

	today := u.now()
	filtered := analytics.FilterRecordsByStatus(records, status)
	out := make([]RecordWithOverdue, 0, len(filtered))
	for _, r := range filtered {
		check := analytics.CheckOverdue(r.ConsultationDate, r.PaymentStatus, today, u.settings.OverdueThresholdDays)
		if check.InvalidDate {
			u.log.Warn("record with invalid consultation date",
				zap.String("id_agendamento", r.SchedulingID),
				zap.String("data_consulta", r.ConsultationDate),
			)
		}
		out = append(out, RecordWithOverdue{BillingRecord: r, Overdue: check})
	}
	return out, nil
}

// Summary rows are sorted by contract name.
func (u *BillingRecordUseCase) Summary(ctx context.Context) (BillingSummary, error) {
	records, err := u.records.List(ctx)
	if err != nil {
		u.log.Error("list records failed", zap.Error(err))
		return BillingSummary{}, err
	}

	pivot := analytics.PivotByContract(records)
	rows := make([]ContractPivot, 0, len(pivot))
	for name, entry := range pivot {
		ratio, ok := entry.PaidRatio()
		rows = append(rows, ContractPivot{ContractName: name, PivotEntry: entry, PaidRatio: ratio, HasRatio: ok})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ContractName < rows[j].ContractName })

	return BillingSummary{
		ByContract:  rows,
		RecordCount: len(records),
		TotalBilled: analytics.TotalBilled(records),
		TotalPaid:   analytics.TotalPaid(records),
	}, nil
}

func (u *BillingRecordUseCase) Export(ctx context.Context, format entities.ExportFormat) (entities.File, error) {
	exporter, ok := u.exporters[format]
	if !ok {
		return entities.File{}, ErrUnsupportedExportFormat
	}
	records, err := u.records.List(ctx)
	if err != nil {
		u.log.Error("list records failed", zap.Error(err))
		return entities.File{}, err
	}
	content, err := exporter.Write(records)
	if err != nil {
		u.log.Error("export failed", zap.String("format", string(format)), zap.Error(err))
		return entities.File{}, err
	}
	u.log.Info("records exported", zap.String("format", string(format)), zap.Int("records", len(records)))

	return entities.File{
		Name:        entities.ExportFileName(format, u.now()),
		ContentType: exporter.ContentType(),
		Content:     content,
	}, nil
}

func (u *BillingRecordUseCase) getRecord(ctx context.Context, schedulingID string) (entities.BillingRecord, error) {
	schedulingID = strings.TrimSpace(schedulingID)
	if schedulingID == "" {
		return entities.BillingRecord{}, ErrInvalidSchedulingID
	}
	r, err := u.records.GetBySchedulingID(ctx, schedulingID)
	if err != nil {
		u.log.Error("get record failed", zap.String("id_agendamento", schedulingID), zap.Error(err))
		return entities.BillingRecord{}, err
	}
	if r.SchedulingID == "" {
		return entities.BillingRecord{}, ErrBillingRecordNotFound
	}
	return r, nil
}

func (u *BillingRecordUseCase) Certificate(ctx context.Context, schedulingID string, req CertificateRequest) (entities.File, error) {
	record, err := u.getRecord(ctx, schedulingID)
	if err != nil {
		return entities.File{}, err
	}
	if u.renderer == nil {
		return entities.File{}, ErrCertificateUnavailable
	}

	photo, err := u.resolvePhoto(ctx, req)
	if err != nil {
		return entities.File{}, err
	}

	issuedAt := u.now()
	cert := entities.AttendanceCertificate{
		Record:       record,
		IssuedAt:     issuedAt,
		Verification: fmt.Sprintf("MTP-%s-%s", record.SchedulingID, issuedAt.UTC().Format("20060102150405")),
	}
	if photo != nil {
		cert.PhotoMime = photo.MimeType
		cert.Photo = photo.Data
	}

	content, err := u.renderer.Render(cert)
	if err != nil {
		u.log.Error("certificate render failed", zap.String("id_agendamento", record.SchedulingID), zap.Error(err))
		return entities.File{}, err
	}
	u.log.Info("certificate issued",
		zap.String("id_agendamento", record.SchedulingID),
		zap.Bool("with_photo", photo != nil),
	)
	return entities.File{
		Name:        "atestado_" + record.SchedulingID + ".pdf",
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

func (u *BillingRecordUseCase) resolvePhoto(ctx context.Context, req CertificateRequest) (*datauri.Image, error) {
	raw := strings.TrimSpace(req.PhotoDataURI)
	if raw == "" && strings.TrimSpace(req.CaptureID) != "" {
		if u.captures == nil {
			return nil, ErrCaptureNotFound
		}
		capture, err := u.captures.GetByID(ctx, strings.TrimSpace(req.CaptureID))
		if err != nil {
			return nil, err
		}
		if capture.ID == "" {
			return nil, ErrCaptureNotFound
		}
		raw = capture.DataURI
	}
	if raw == "" {
		return nil, nil
	}

	img, err := datauri.DecodeImage(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhoto, err)
	}
	return &img, nil
}
