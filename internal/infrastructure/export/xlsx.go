package export

import (
	"bytes"
	"fmt"

	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName        = "Faturamento"
	patientSheetName = "Pacientes"
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// sheetLayout describes the single sheet of an exported workbook. moneyCols
// are 1-based columns formatted as amounts.
type sheetLayout struct {
	name      string
	headers   []string
	widths    []float64
	moneyCols []int
}

var (
	recordLayout = sheetLayout{
		name:      sheetName,
		headers:   recordHeaders,
		widths:    []float64{16, 24, 20, 12, 24, 14, 14, 12},
		moneyCols: []int{6, 7},
	}
	patientLayout = sheetLayout{
		name:    patientSheetName,
		headers: patientHeaders,
		widths:  []float64{10, 26, 16, 18, 20, 14, 12, 14},
	}
)

// XLSXExporter writes the billing spreadsheet as an Excel workbook with a
// frozen, styled header row. Amounts are stored as numbers.
type XLSXExporter struct{}

var _ interfaces.IRecordExporter = XLSXExporter{}

func NewXLSXExporter() XLSXExporter { return XLSXExporter{} }

func (XLSXExporter) Format() entities.ExportFormat { return entities.ExportFormatXLSX }

func (XLSXExporter) ContentType() string { return xlsxContentType }

func (XLSXExporter) Write(records []entities.BillingRecord) ([]byte, error) {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			r.SchedulingID,
			r.PatientName,
			r.ContractName,
			r.ConsultationDate,
			r.Procedure,
			r.TotalValue,
			r.PaidValue,
			string(r.PaymentStatus),
		})
	}
	return writeWorkbook(recordLayout, rows)
}

// PatientXLSXExporter writes the patient base with the same columns as the CSV.
type PatientXLSXExporter struct{}

var _ interfaces.IPatientExporter = PatientXLSXExporter{}

func NewPatientXLSXExporter() PatientXLSXExporter { return PatientXLSXExporter{} }

func (PatientXLSXExporter) Format() entities.ExportFormat { return entities.ExportFormatXLSX }

func (PatientXLSXExporter) ContentType() string { return xlsxContentType }

func (PatientXLSXExporter) Write(patients []entities.PatientSheetRow) ([]byte, error) {
	rows := make([][]any, 0, len(patients))
	for _, p := range patients {
		fields := patientRow(p)
		row := make([]any, len(fields))
		for i, f := range fields {
			row[i] = f
		}
		rows = append(rows, row)
	}
	return writeWorkbook(patientLayout, rows)
}

func writeWorkbook(layout sheetLayout, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", layout.name); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range layout.headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(layout.name, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(layout.name, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(layout.name, name, name, layout.widths[col]); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(layout.name, cell, &rows[i]); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if len(rows) > 0 && len(layout.moneyCols) > 0 {
		moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
		if err != nil {
			return nil, fmt.Errorf("failed to create amount style: %w", err)
		}
		for _, col := range layout.moneyCols {
			top, err := excelize.CoordinatesToCellName(col, 2)
			if err != nil {
				return nil, err
			}
			bottom, err := excelize.CoordinatesToCellName(col, len(rows)+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(layout.name, top, bottom, moneyStyle); err != nil {
				return nil, fmt.Errorf("failed to set amount style: %w", err)
			}
		}
	}

	if err := f.SetPanes(layout.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
