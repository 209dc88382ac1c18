package certificate

import (
	"bytes"
	"fmt"

	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"
	"meditrack_pro/pkg/datauri"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"
)

const (
	displayDate     = "02/01/2006"
	displayDateTime = "02/01/2006 15:04:05"
)

// Signatory is the professional printed at the bottom of the certificate.
type Signatory struct {
	Name   string
	Clinic string
	CRM    string
}

var DefaultSignatory = Signatory{Name: "Dr. Ricardo G.", Clinic: "MediTrack Pro", CRM: "123456"}

// PDFRenderer renders the "Atestado de Comparecimento" as an A4 PDF with a
// verification QR code and an optional identity photo.
type PDFRenderer struct {
	signatory Signatory
}

var _ interfaces.ICertificateRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer(signatory Signatory) *PDFRenderer {
	if signatory.Name == "" {
		signatory = DefaultSignatory
	}
	return &PDFRenderer{signatory: signatory}
}

func (r *PDFRenderer) Render(cert entities.AttendanceCertificate) ([]byte, error) {
	rec := cert.Record

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle("Atestado "+rec.SchedulingID, true)
	pdf.AddPage()

	pdf.SetFont("Times", "B", 22)
	pdf.CellFormat(0, 14, tr("ATESTADO MÉDICO"), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	consultation := rec.ConsultationDate
	if d, err := rec.Date(); err == nil {
		consultation = d.Format(displayDate)
	}
	body := fmt.Sprintf(
		"Atesto para os devidos fins que o(a) Sr(a). %s, portador(a) do registro #%s, esteve em atendimento nesta unidade de saúde no dia %s para a realização do procedimento de %s.",
		rec.PatientName, rec.PatientID, consultation, rec.Procedure,
	)
	pdf.SetFont("Times", "", 13)
	pdf.MultiCell(0, 8, tr(body), "", "J", false)
	pdf.Ln(8)

	if len(cert.Photo) > 0 {
		imageType := datauri.Image{MimeType: cert.PhotoMime}.FpdfImageType()
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(0, 6, tr("COMPROVANTE DE IDENTIDADE / PROCEDIMENTO"), "", 1, "L", false, 0, "")
		pdf.RegisterImageOptionsReader("photo", fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(cert.Photo))
		pdf.ImageOptions("photo", 20, pdf.GetY(), 60, 0, true, fpdf.ImageOptions{ImageType: imageType}, 0, "")
		pdf.Ln(6)
	}

	pdf.Ln(16)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr(r.signatory.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s - CRM %s", r.signatory.Clinic, r.signatory.CRM)), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	if cert.Verification != "" {
		qrPNG, err := qrcode.Encode(cert.Verification, qrcode.Medium, 128)
		if err != nil {
			return nil, fmt.Errorf("failed to encode verification qr: %w", err)
		}
		pdf.RegisterImageOptionsReader("qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
		pdf.ImageOptions("qr", 90, pdf.GetY(), 30, 30, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.SetY(pdf.GetY() + 32)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 5, tr("Código de verificação: "+cert.Verification), "", 1, "C", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(0, 5, tr("Documento gerado eletronicamente em "+cert.IssuedAt.Format(displayDateTime)), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
