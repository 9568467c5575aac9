package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedModel returns its replies in order and records every invocation.
type scriptedModel struct {
	replies     []Reply
	err         error
	invocations [][]Turn
}

func (m *scriptedModel) Complete(_ context.Context, turns []Turn, _ []ToolDefinition) (Reply, error) {
	m.invocations = append(m.invocations, turns)
	if m.err != nil {
		return nil, m.err
	}
	i := len(m.invocations) - 1
	if i >= len(m.replies) {
		i = len(m.replies) - 1
	}
	return m.replies[i], nil
}

// stubAdapter records calls and returns a canned result.
type stubAdapter struct {
	name   ToolName
	result ToolResult
	calls  []map[string]string
}

func (a *stubAdapter) Definition() ToolDefinition {
	return ToolDefinition{Name: a.name}
}

func (a *stubAdapter) Execute(_ context.Context, args map[string]string) ToolResult {
	a.calls = append(a.calls, args)
	return a.result
}

func newTestRegistry() (*Registry, *stubAdapter, *stubAdapter) {
	book := &stubAdapter{
		name:   ToolBookAppointment,
		result: OKResult(map[string]any{"reference_id": "APT-0001", "status": "confirmed"}),
	}
	check := &stubAdapter{
		name:   ToolCheckAppointment,
		result: OKResult(map[string]any{"reference_id": "APT-0001", "patient_name": "John Doe"}),
	}
	return NewRegistry(book, check), book, check
}

func TestHandleTurn_TextReply_SingleInvocation(t *testing.T) {
	t.Parallel()

	registry, book, check := newTestRegistry()
	model := &scriptedModel{replies: []Reply{TextReply{Text: "How can I help?"}}}
	orch := NewOrchestrator(model, registry)
	conv := NewConversation("sys")

	answer, err := orch.HandleTurn(context.Background(), conv, "hello")
	require.NoError(t, err)

	assert.Equal(t, "How can I help?", answer)
	assert.Len(t, model.invocations, 1)
	assert.Empty(t, book.calls)
	assert.Empty(t, check.calls)

	turns := conv.Turns()
	require.Len(t, turns, 3) // system, user, assistant
	assert.Equal(t, RoleUser, turns[1].Role)
	assert.Equal(t, RoleAssistant, turns[2].Role)
	assert.Equal(t, "How can I help?", turns[2].Content)
}

func TestHandleTurn_TwoToolCalls_DispatchedInOrder(t *testing.T) {
	t.Parallel()

	registry, book, check := newTestRegistry()
	model := &scriptedModel{replies: []Reply{
		ToolCallReply{Calls: []ToolCallRequest{
			{ID: "call-1", Name: "book_appointment", Arguments: map[string]string{"patient_name": "John Doe", "contact_number": "+91 9876543210"}},
			{ID: "call-2", Name: "check_appointment", Arguments: map[string]string{"reference_id": "APT-0001"}},
		}},
		TextReply{Text: "Booked and verified."},
	}}
	orch := NewOrchestrator(model, registry)
	conv := NewConversation("sys")

	answer, err := orch.HandleTurn(context.Background(), conv, "book me in and double check")
	require.NoError(t, err)

	assert.Equal(t, "Booked and verified.", answer)
	assert.Len(t, model.invocations, 2)
	assert.Len(t, book.calls, 1)
	assert.Len(t, check.calls, 1)

	// system, user, assistant(calls), tool, tool, assistant
	turns := conv.Turns()
	require.Len(t, turns, 6)
	assert.Equal(t, RoleTool, turns[3].Role)
	assert.Equal(t, "call-1", turns[3].CallID)
	assert.Equal(t, RoleTool, turns[4].Role)
	assert.Equal(t, "call-2", turns[4].CallID)

	// Second model invocation sees both tool results.
	second := model.invocations[1]
	require.Len(t, second, 5)
	require.NotNil(t, second[3].Result)
	assert.Equal(t, StatusOK, second[3].Result.Status)
}

func TestHandleTurn_UnsupportedTool(t *testing.T) {
	t.Parallel()

	registry, book, check := newTestRegistry()
	model := &scriptedModel{replies: []Reply{
		ToolCallReply{Calls: []ToolCallRequest{
			{ID: "call-1", Name: "cancel_appointment", Arguments: map[string]string{}},
		}},
		TextReply{Text: "I can't do that."},
	}}
	orch := NewOrchestrator(model, registry)
	conv := NewConversation("sys")

	answer, err := orch.HandleTurn(context.Background(), conv, "cancel it")
	require.NoError(t, err)
	assert.Equal(t, "I can't do that.", answer)

	assert.Empty(t, book.calls)
	assert.Empty(t, check.calls)

	toolTurn := conv.Turns()[3]
	require.NotNil(t, toolTurn.Result)
	assert.Equal(t, StatusError, toolTurn.Result.Status)
	assert.Equal(t, "unsupported tool: cancel_appointment", toolTurn.Result.Payload["message"])
}

func TestHandleTurn_SecondToolReplyTreatedAsFinal(t *testing.T) {
	t.Parallel()

	registry, book, _ := newTestRegistry()
	model := &scriptedModel{replies: []Reply{
		ToolCallReply{Calls: []ToolCallRequest{
			{ID: "call-1", Name: "book_appointment", Arguments: map[string]string{"patient_name": "John Doe", "contact_number": "+91 9876543210"}},
		}},
		ToolCallReply{
			Text: "Your appointment is APT-0001.",
			Calls: []ToolCallRequest{
				{ID: "call-2", Name: "check_appointment", Arguments: map[string]string{"reference_id": "APT-0001"}},
			},
		},
	}}
	orch := NewOrchestrator(model, registry)
	conv := NewConversation("sys")

	answer, err := orch.HandleTurn(context.Background(), conv, "book me in")
	require.NoError(t, err)

	// Single dispatch round: the second reply's calls are not executed.
	assert.Equal(t, "Your appointment is APT-0001.", answer)
	assert.Len(t, model.invocations, 2)
	assert.Len(t, book.calls, 1)
}

func TestHandleTurn_ToolErrorDoesNotAbortTurn(t *testing.T) {
	t.Parallel()

	book := &stubAdapter{name: ToolBookAppointment, result: ErrorResult("invalid patient name")}
	registry := NewRegistry(book)
	model := &scriptedModel{replies: []Reply{
		ToolCallReply{Calls: []ToolCallRequest{
			{ID: "call-1", Name: "book_appointment", Arguments: map[string]string{"patient_name": "John 123"}},
		}},
		TextReply{Text: "That name looks invalid, could you re-enter it?"},
	}}
	orch := NewOrchestrator(model, registry)
	conv := NewConversation("sys")

	answer, err := orch.HandleTurn(context.Background(), conv, "book John 123")
	require.NoError(t, err)
	assert.Equal(t, "That name looks invalid, could you re-enter it?", answer)

	toolTurn := conv.Turns()[3]
	require.NotNil(t, toolTurn.Result)
	assert.Equal(t, StatusError, toolTurn.Result.Status)
}

func TestHandleTurn_ModelErrorPropagates(t *testing.T) {
	t.Parallel()

	registry, _, _ := newTestRegistry()
	model := &scriptedModel{err: errors.New("connection refused")}
	orch := NewOrchestrator(model, registry)
	conv := NewConversation("sys")

	_, err := orch.HandleTurn(context.Background(), conv, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model invocation failed")
}

func TestRegistry_DefinitionsInRegistrationOrder(t *testing.T) {
	t.Parallel()

	registry, _, _ := newTestRegistry()
	defs := registry.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, ToolBookAppointment, defs[0].Name)
	assert.Equal(t, ToolCheckAppointment, defs[1].Name)
}
