package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"healthcare-appointment-ai/agent"
)

// Ollama talks to an Ollama server's /api/chat endpoint with native tool
// support.
type Ollama struct {
	baseURL string
	model   string
	http    *http.Client
}

// NewOllama creates an Ollama-backed model. baseURL is the server address,
// e.g. "http://localhost:11434".
func NewOllama(baseURL, model string) *Ollama {
	return &Ollama{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: 120 * time.Second},
	}
}

type ollamaMessage struct {
	Role      string           `json:"role"`
	Content   string           `json:"content"`
	ToolCalls []ollamaToolCall `json:"tool_calls,omitempty"`
}

type ollamaToolCall struct {
	Function ollamaFunction `json:"function"`
}

type ollamaFunction struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Complete sends the full turn history and returns the model's reply.
func (o *Ollama) Complete(ctx context.Context, turns []agent.Turn, tools []agent.ToolDefinition) (agent.Reply, error) {
	reqBody := map[string]any{
		"model":    o.model,
		"messages": toOllamaMessages(turns),
		"tools":    toolSchemas(tools),
		"stream":   false,
		"options":  map[string]any{"temperature": 0.1},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama API error: %s", string(b))
	}

	var result struct {
		Message ollamaMessage `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if len(result.Message.ToolCalls) == 0 {
		return agent.TextReply{Text: result.Message.Content}, nil
	}

	calls := make([]agent.ToolCallRequest, 0, len(result.Message.ToolCalls))
	for _, tc := range result.Message.ToolCalls {
		calls = append(calls, agent.ToolCallRequest{
			// Ollama does not assign call ids; synthesize them so tool
			// result turns stay correlated to their requests.
			ID:        uuid.NewString(),
			Name:      tc.Function.Name,
			Arguments: stringArguments(tc.Function.Arguments),
		})
	}
	return agent.ToolCallReply{Text: result.Message.Content, Calls: calls}, nil
}

func toOllamaMessages(turns []agent.Turn) []ollamaMessage {
	msgs := make([]ollamaMessage, 0, len(turns))
	for _, t := range turns {
		msg := ollamaMessage{Role: string(t.Role), Content: t.Content}
		for _, c := range t.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, ollamaToolCall{
				Function: ollamaFunction{Name: c.Name, Arguments: anyArguments(c.Arguments)},
			})
		}
		if t.Role == agent.RoleTool {
			msg.Content = resultContent(t.Result)
		}
		msgs = append(msgs, msg)
	}
	return msgs
}
