package models

import "time"

// Appointment represents a stored appointment record
type Appointment struct {
	ID              int       `json:"id"`
	ReferenceID     string    `json:"reference_id"`
	PatientName     string    `json:"patient_name"`
	ContactNumber   string    `json:"contact_number"`
	Status          string    `json:"status"`
	AppointmentDate time.Time `json:"appointment_date"`
	PDFPath         string    `json:"pdf_path,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// AppointmentRequest represents an appointment creation request
type AppointmentRequest struct {
	PatientName   string `json:"patient_name" binding:"required"`
	ContactNumber string `json:"contact_number" binding:"required"`
}

// AppointmentResponse represents an appointment creation response
type AppointmentResponse struct {
	ReferenceID string `json:"reference_id"`
	Status      string `json:"status"`
	Message     string `json:"message"`
	PDFPath     string `json:"pdf_path"`
}
