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

// OpenAI talks to an OpenAI-compatible /v1/chat/completions endpoint with
// function calling. Works against OpenAI itself and compatible gateways.
type OpenAI struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewOpenAI creates an OpenAI-backed model.
func NewOpenAI(baseURL, apiKey, model string) *OpenAI {
	return &OpenAI{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type openaiMessage struct {
	Role       string           `json:"role"`
	Content    string           `json:"content"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
	ToolCalls  []openaiToolCall `json:"tool_calls,omitempty"`
}

type openaiToolCall struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Function openaiFunction `json:"function"`
}

type openaiFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON-encoded object
}

// Complete sends the full turn history and returns the model's reply.
func (o *OpenAI) Complete(ctx context.Context, turns []agent.Turn, tools []agent.ToolDefinition) (agent.Reply, error) {
	reqBody := map[string]any{
		"model":       o.model,
		"messages":    toOpenAIMessages(turns),
		"tools":       toolSchemas(tools),
		"tool_choice": "auto",
		"temperature": 0.1,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openAI API error: %s", string(b))
	}

	var result struct {
		Choices []struct {
			Message openaiMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}

	msg := result.Choices[0].Message
	if len(msg.ToolCalls) == 0 {
		return agent.TextReply{Text: msg.Content}, nil
	}

	calls := make([]agent.ToolCallRequest, 0, len(msg.ToolCalls))
	for _, tc := range msg.ToolCalls {
		var args map[string]any
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			args = map[string]any{}
		}
		id := tc.ID
		if id == "" {
			id = uuid.NewString()
		}
		calls = append(calls, agent.ToolCallRequest{
			ID:        id,
			Name:      tc.Function.Name,
			Arguments: stringArguments(args),
		})
	}
	return agent.ToolCallReply{Text: msg.Content, Calls: calls}, nil
}

func toOpenAIMessages(turns []agent.Turn) []openaiMessage {
	msgs := make([]openaiMessage, 0, len(turns))
	for _, t := range turns {
		msg := openaiMessage{Role: string(t.Role), Content: t.Content}
		for _, c := range t.ToolCalls {
			argsJSON, err := json.Marshal(anyArguments(c.Arguments))
			if err != nil {
				argsJSON = []byte("{}")
			}
			msg.ToolCalls = append(msg.ToolCalls, openaiToolCall{
				ID:       c.ID,
				Type:     "function",
				Function: openaiFunction{Name: c.Name, Arguments: string(argsJSON)},
			})
		}
		if t.Role == agent.RoleTool {
			msg.ToolCallID = t.CallID
			msg.Content = resultContent(t.Result)
		}
		msgs = append(msgs, msg)
	}
	return msgs
}
