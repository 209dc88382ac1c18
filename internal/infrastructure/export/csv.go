package export

import (
	"strings"

	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"
)

const csvContentType = "text/csv; charset=utf-8"

// CSVExporter writes the billing spreadsheet as comma separated text.
type CSVExporter struct{}

var _ interfaces.IRecordExporter = CSVExporter{}

func NewCSVExporter() CSVExporter { return CSVExporter{} }

func (CSVExporter) Format() entities.ExportFormat { return entities.ExportFormatCSV }

func (CSVExporter) ContentType() string { return csvContentType }

func (CSVExporter) Write(records []entities.BillingRecord) ([]byte, error) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, recordRow(r))
	}
	return quotedCSV(recordHeaders, rows), nil
}

// PatientCSVExporter writes the patient base as comma separated text.
type PatientCSVExporter struct{}

var _ interfaces.IPatientExporter = PatientCSVExporter{}

func NewPatientCSVExporter() PatientCSVExporter { return PatientCSVExporter{} }

func (PatientCSVExporter) Format() entities.ExportFormat { return entities.ExportFormatCSV }

func (PatientCSVExporter) ContentType() string { return csvContentType }

func (PatientCSVExporter) Write(rows []entities.PatientSheetRow) ([]byte, error) {
	lines := make([][]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, patientRow(r))
	}
	return quotedCSV(patientHeaders, lines), nil
}

// quotedCSV keeps the header line plain and double-quotes every data field,
// doubling embedded quotes. Lines are joined by "\n" without a trailing newline.
func quotedCSV(headers []string, rows [][]string) []byte {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, fields := range rows {
		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(quoted, ","))
	}
	return []byte(strings.Join(lines, "\n"))
}
