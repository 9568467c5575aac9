package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"healthcare-appointment-ai/config"
	"healthcare-appointment-ai/database"
	"healthcare-appointment-ai/models"
)

var cfg *config.Config

// Init stores the configuration used by the services
func Init(c *config.Config) {
	cfg = c
}

// CreateAppointment stores a new appointment and generates its confirmation
// PDF. Reference ids follow the serial row id so they stay sequential.
func CreateAppointment(req models.AppointmentRequest) (*models.Appointment, error) {
	db := database.GetDB()

	// Appointments are scheduled for the next day
	appointmentDate := time.Now().AddDate(0, 0, 1)

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	apt := &models.Appointment{
		PatientName:     req.PatientName,
		ContactNumber:   req.ContactNumber,
		Status:          "confirmed",
		AppointmentDate: appointmentDate,
	}

	err = tx.QueryRow(`
		INSERT INTO appointments (reference_id, patient_name, contact_number, status, appointment_date)
		VALUES ('', $1, $2, $3, $4)
		RETURNING id, created_at
	`, apt.PatientName, apt.ContactNumber, apt.Status, apt.AppointmentDate).Scan(&apt.ID, &apt.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	apt.ReferenceID = FormatReferenceID(apt.ID)
	_, err = tx.Exec(`UPDATE appointments SET reference_id = $1 WHERE id = $2`, apt.ReferenceID, apt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to assign reference id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit appointment: %w", err)
	}

	// PDF generation failure is not fatal; the booking already exists
	pdfPath, err := GenerateConfirmationPDF(apt)
	if err != nil {
		log.Printf("Failed to generate PDF for %s: %v", apt.ReferenceID, err)
		return apt, nil
	}
	apt.PDFPath = pdfPath

	if _, err := db.Exec(`UPDATE appointments SET pdf_path = $1 WHERE id = $2`, pdfPath, apt.ID); err != nil {
		log.Printf("Failed to record PDF path for %s: %v", apt.ReferenceID, err)
	}

	return apt, nil
}

// GetAppointment retrieves an appointment by reference id
func GetAppointment(referenceID string) (*models.Appointment, error) {
	db := database.GetDB()

	var apt models.Appointment
	var pdfPath sql.NullString

	err := db.QueryRow(`
		SELECT id, reference_id, patient_name, contact_number, status, appointment_date, pdf_path, created_at
		FROM appointments
		WHERE reference_id = $1
	`, referenceID).Scan(&apt.ID, &apt.ReferenceID, &apt.PatientName, &apt.ContactNumber,
		&apt.Status, &apt.AppointmentDate, &pdfPath, &apt.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("appointment %s not found", referenceID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}

	if pdfPath.Valid {
		apt.PDFPath = pdfPath.String
	}
	return &apt, nil
}

// FormatReferenceID renders a sequential counter as an APT-XXXX reference
func FormatReferenceID(n int) string {
	return fmt.Sprintf("APT-%04d", n)
}
