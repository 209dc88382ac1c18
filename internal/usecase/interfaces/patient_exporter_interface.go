package interfaces

import "meditrack_pro/internal/domain/entities"

// IPatientExporter renders the patient base as a downloadable file.
type IPatientExporter interface {
	Format() entities.ExportFormat
	ContentType() string
	Write(rows []entities.PatientSheetRow) ([]byte, error)
}
