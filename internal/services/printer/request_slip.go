package printer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/barangayan/brgyems/internal/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	officeName   = "Barangay Records Office"
	pendingDate  = "To be announced"
	qrImageName  = "request_qr"
	qrPixels     = 256
	slipMarginMM = 12.0
)

// RequestSlipPDF renders the claim slip handed to a resident after filing a
// document request. The QR code carries the request identifier so the desk
// can pull the record up at pickup.
func RequestSlipPDF(rec *models.DocumentRequest) ([]byte, error) {
	pdf, err := buildRequestSlip(rec)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildRequestSlip(rec *models.DocumentRequest) (*gofpdf.Fpdf, error) {
	if rec == nil || rec.RequestID == "" {
		return nil, fmt.Errorf("request slip: missing request identifier")
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	// Core fonts are cp1252; names like Peña arrive as UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(slipMarginMM, slipMarginMM, slipMarginMM)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*slipMarginMM

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(contentWidth, 8, officeName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(contentWidth, 6, "Document Request Slip", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	qrPng, err := qrcode.Encode(rec.RequestID, qrcode.Medium, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("request slip: %w", err)
	}
	imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader(qrImageName, imgOptions, bytes.NewReader(qrPng))

	qrSize := 40.0
	pdf.ImageOptions(qrImageName, (pageWidth-qrSize)/2, pdf.GetY(), qrSize, qrSize, false, imgOptions, 0, "")
	pdf.SetY(pdf.GetY() + qrSize + 2)

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(contentWidth, 9, tr(rec.RequestID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pickup := pendingDate
	if rec.PickupDate != nil && !rec.PickupDate.IsZero() {
		pickup = rec.PickupDate.String()
	}

	rows := [][2]string{
		{"Document", rec.Type},
		{"Requester", rec.RequesterName},
		{"Date Filed", rec.DateFiled.String()},
		{"Status", rec.Status},
		{"Copies", strconv.Itoa(rec.Copies)},
		{"Purpose", rec.Purpose},
		{"Contact", rec.ContactNumber},
		{"Pickup Date", pickup},
	}
	labelWidth := 32.0
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(labelWidth, 7, row[0], "B", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(contentWidth-labelWidth, 7, tr(row[1]), "B", 1, "L", false, 0, "")
	}

	if rec.AdditionalRequirements != "" {
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(contentWidth, 6, "Bring the following:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		// Free text has no length limit, so it may continue on a second page.
		pdf.SetAutoPageBreak(true, slipMarginMM)
		pdf.MultiCell(contentWidth, 5, tr(rec.AdditionalRequirements), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	return pdf, nil
}
