package tools

import (
	"context"
	"fmt"
	"net/http"

	"healthcare-appointment-ai/agent"
	"healthcare-appointment-ai/validate"
)

// CheckAppointment looks up an appointment by reference id. Read-only.
type CheckAppointment struct {
	client *Client
}

// NewCheckAppointment returns the lookup adapter.
func NewCheckAppointment(client *Client) *CheckAppointment {
	return &CheckAppointment{client: client}
}

func (t *CheckAppointment) Definition() agent.ToolDefinition {
	return agent.ToolDefinition{
		Name:        agent.ToolCheckAppointment,
		Description: "Check the status of an appointment using its reference ID",
		Parameters: []agent.Parameter{
			{Name: "reference_id", Description: "Appointment reference in APT-XXXX format", Required: true},
		},
	}
}

func (t *CheckAppointment) Execute(ctx context.Context, args map[string]string) agent.ToolResult {
	ref := args["reference_id"]

	if !validate.ReferenceID(ref) {
		return agent.ErrorResult("invalid reference id format")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.client.baseURL+"/appointments/"+ref, nil)
	if err != nil {
		return agent.ErrorResult(fmt.Sprintf("error checking appointment: %v", err))
	}

	resp, err := t.client.http.Do(req)
	if err != nil {
		return agent.ErrorResult(fmt.Sprintf("error checking appointment: %v", err))
	}
	defer resp.Body.Close()

	payload, _ := decode(resp)
	if !is2xx(resp) {
		return agent.ErrorResult("appointment not found")
	}
	return agent.OKResult(payload)
}
