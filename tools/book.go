package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"healthcare-appointment-ai/agent"
	"healthcare-appointment-ai/validate"
)

// BookAppointment creates an appointment through the storage API. Each
// validated call creates a distinct record; there is no idempotency key, so
// restating the same request books twice.
type BookAppointment struct {
	client *Client
}

// NewBookAppointment returns the booking adapter.
func NewBookAppointment(client *Client) *BookAppointment {
	return &BookAppointment{client: client}
}

func (t *BookAppointment) Definition() agent.ToolDefinition {
	return agent.ToolDefinition{
		Name:        agent.ToolBookAppointment,
		Description: "Book a medical appointment for a patient",
		Parameters: []agent.Parameter{
			{Name: "patient_name", Description: "Patient full name, letters and spaces only", Required: true},
			{Name: "contact_number", Description: "Contact number in +91 XXXXXXXXXX format", Required: true},
		},
	}
}

func (t *BookAppointment) Execute(ctx context.Context, args map[string]string) agent.ToolResult {
	name := args["patient_name"]
	phone := args["contact_number"]

	// Validation gates run before any network I/O.
	if !validate.PatientName(name) {
		return agent.ErrorResult("invalid patient name")
	}
	if !validate.PhoneNumber(phone) {
		return agent.ErrorResult("invalid phone number format")
	}

	body, err := json.Marshal(map[string]string{
		"patient_name":   name,
		"contact_number": phone,
	})
	if err != nil {
		return agent.ErrorResult(fmt.Sprintf("error booking appointment: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.client.baseURL+"/appointments/", bytes.NewReader(body))
	if err != nil {
		return agent.ErrorResult(fmt.Sprintf("error booking appointment: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.http.Do(req)
	if err != nil {
		return agent.ErrorResult(fmt.Sprintf("error booking appointment: %v", err))
	}
	defer resp.Body.Close()

	payload, detail := decode(resp)
	if !is2xx(resp) {
		if detail == "" {
			detail = "error occurred"
		}
		return agent.ErrorResult(detail)
	}
	return agent.OKResult(payload)
}
