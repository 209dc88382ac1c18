package interfaces

import "meditrack_pro/internal/domain/entities"

// IRecordExporter renders billing records as a downloadable file.
type IRecordExporter interface {
	Format() entities.ExportFormat
	ContentType() string
	Write(records []entities.BillingRecord) ([]byte, error)
}
