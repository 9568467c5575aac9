package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"healthcare-appointment-ai/models"
)

// GenerateConfirmationPDF writes a confirmation document for the appointment
// and returns its path.
func GenerateConfirmationPDF(apt *models.Appointment) (string, error) {
	dir := "appointment_pdfs"
	if cfg != nil && cfg.PDFDir != "" {
		dir = cfg.PDFDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create pdf directory: %w", err)
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, fmt.Sprintf("Appointment Confirmation for %s", apt.PatientName), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Reference ID", apt.ReferenceID},
		{"Patient Name", apt.PatientName},
		{"Contact Number", apt.ContactNumber},
		{"Appointment Date", apt.AppointmentDate.Format("2006-01-02")},
		{"Status", apt.Status},
	}
	for _, row := range rows {
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, row[1], "1", 1, "L", false, 0, "")
	}

	path := filepath.Join(dir, apt.ReferenceID+".pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write pdf: %w", err)
	}
	return path, nil
}
