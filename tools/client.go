// Package tools implements the two tool adapters behind the agent's tool
// names. Each adapter validates its arguments locally before touching the
// appointment storage API, so malformed data never reaches the service.
package tools

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// Client calls the appointment storage API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the appointment API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// decode reads the response body as a JSON object. detail carries the
// service's error explanation when present.
func decode(resp *http.Response) (payload map[string]any, detail string) {
	payload = map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return map[string]any{}, ""
	}
	if d, ok := payload["detail"].(string); ok {
		detail = d
	}
	return payload, detail
}

func is2xx(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
