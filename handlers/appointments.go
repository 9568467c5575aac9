package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"healthcare-appointment-ai/models"
	"healthcare-appointment-ai/services"
)

// CreateAppointment creates a new appointment
func CreateAppointment(c *gin.Context) {
	var req models.AppointmentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if !strings.HasPrefix(req.ContactNumber, "+91") {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Phone number must start with +91"})
		return
	}

	log.Printf("Appointment request: %+v", req)

	apt, err := services.CreateAppointment(req)
	if err != nil {
		log.Printf("Error creating appointment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create appointment"})
		return
	}

	c.JSON(http.StatusOK, models.AppointmentResponse{
		ReferenceID: apt.ReferenceID,
		Status:      apt.Status,
		Message:     "Appointment booked",
		PDFPath:     apt.PDFPath,
	})
}

// GetAppointment retrieves an appointment by reference id
func GetAppointment(c *gin.Context) {
	referenceID := c.Param("reference_id")

	apt, err := services.GetAppointment(referenceID)
	if err != nil {
		log.Printf("Error getting appointment: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"detail": "Appointment not found"})
		return
	}

	c.JSON(http.StatusOK, apt)
}
