package entities

import (
	"strings"
	"time"
)

// ExportFormat is the file format of a billing export.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

func ParseExportFormat(raw string) (ExportFormat, bool) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ExportFormatCSV:
		return ExportFormatCSV, true
	case ExportFormatXLSX:
		return ExportFormatXLSX, true
	}
	return "", false
}

// ExportFileName is faturamento_meditrack_<YYYY-MM-DD>.<ext>.
func ExportFileName(format ExportFormat, day time.Time) string {
	return exportFileName("faturamento", format, day)
}

// PatientExportFileName is pacientes_meditrack_<YYYY-MM-DD>.<ext>.
func PatientExportFileName(format ExportFormat, day time.Time) string {
	return exportFileName("pacientes", format, day)
}

func exportFileName(prefix string, format ExportFormat, day time.Time) string {
	return prefix + "_meditrack_" + day.Format(DateLayout) + "." + string(format)
}

// PatientSheetRow is a patient with its convênio name resolved for export.
// An empty ContractName means the contract could not be found.
type PatientSheetRow struct {
	Patient      Patient
	ContractName string
}

// File is a generated document ready to be served as an attachment.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}
