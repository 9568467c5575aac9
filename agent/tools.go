package agent

import (
	"context"
	"fmt"
)

// ToolResult status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ToolResult is the normalized outcome of one tool dispatch. On StatusOK the
// payload carries the service's echoed fields; on StatusError it carries a
// human-readable "message".
type ToolResult struct {
	Status  string         `json:"status"`
	Payload map[string]any `json:"payload"`
}

// OKResult wraps a successful service payload.
func OKResult(payload map[string]any) ToolResult {
	return ToolResult{Status: StatusOK, Payload: payload}
}

// ErrorResult wraps a failure message. Tool failures are ordinary results,
// never faults that abort the turn.
func ErrorResult(message string) ToolResult {
	return ToolResult{Status: StatusError, Payload: map[string]any{"message": message}}
}

// ToolName enumerates the tools the agent may invoke.
type ToolName string

const (
	ToolBookAppointment  ToolName = "book_appointment"
	ToolCheckAppointment ToolName = "check_appointment"
)

// Parameter describes one string argument of a tool.
type Parameter struct {
	Name        string
	Description string
	Required    bool
}

// ToolDefinition describes one tool to the model.
type ToolDefinition struct {
	Name        ToolName
	Description string
	Parameters  []Parameter
}

// Adapter validates arguments and executes one tool call. Failures of any
// kind are reported through the returned ToolResult, never as an error.
type Adapter interface {
	Definition() ToolDefinition
	Execute(ctx context.Context, args map[string]string) ToolResult
}

// Registry maps the closed set of tool names to their adapters.
type Registry struct {
	adapters map[ToolName]Adapter
	order    []ToolName
}

// NewRegistry builds a registry from the given adapters, keyed by each
// adapter's declared name.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[ToolName]Adapter, len(adapters))}
	for _, a := range adapters {
		name := a.Definition().Name
		r.adapters[name] = a
		r.order = append(r.order, name)
	}
	return r
}

// Definitions returns the tool schemas in registration order.
func (r *Registry) Definitions() []ToolDefinition {
	defs := make([]ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.adapters[name].Definition())
	}
	return defs
}

// Dispatch resolves the request's tool name and executes the matching
// adapter. An unknown name yields an error result without reaching any
// adapter.
func (r *Registry) Dispatch(ctx context.Context, call ToolCallRequest) ToolResult {
	adapter, ok := r.adapters[ToolName(call.Name)]
	if !ok {
		return ErrorResult(fmt.Sprintf("unsupported tool: %s", call.Name))
	}
	return adapter.Execute(ctx, call.Arguments)
}
