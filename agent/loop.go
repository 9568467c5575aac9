package agent

import (
	"context"
	"fmt"
	"log"
)

// Model is the language model as the orchestrator sees it: a function from
// the full turn history and the declared tools to a Reply.
type Model interface {
	Complete(ctx context.Context, turns []Turn, tools []ToolDefinition) (Reply, error)
}

// Orchestrator drives the model -> tool -> model cycle for one user turn.
type Orchestrator struct {
	model Model
	tools *Registry
}

// NewOrchestrator wires a model to a tool registry.
func NewOrchestrator(model Model, tools *Registry) *Orchestrator {
	return &Orchestrator{model: model, tools: tools}
}

// HandleTurn appends userText to conv, runs at most one round of tool
// dispatch, and returns the final assistant text. Tool calls are dispatched
// strictly sequentially in the order the model emitted them; tool failures
// never abort the turn, they are folded back into the conversation for the
// model to verbalize.
func (o *Orchestrator) HandleTurn(ctx context.Context, conv *Conversation, userText string) (string, error) {
	conv.Append(Turn{Role: RoleUser, Content: userText})

	reply, err := o.model.Complete(ctx, conv.Turns(), o.tools.Definitions())
	if err != nil {
		return "", fmt.Errorf("model invocation failed: %w", err)
	}

	switch r := reply.(type) {
	case TextReply:
		conv.Append(Turn{Role: RoleAssistant, Content: r.Text})
		return r.Text, nil
	case ToolCallReply:
		conv.Append(Turn{Role: RoleAssistant, Content: r.Text, ToolCalls: r.Calls})
		for _, call := range r.Calls {
			result := o.tools.Dispatch(ctx, call)
			if result.Status == StatusError {
				log.Printf("Tool %s failed: %v", call.Name, result.Payload["message"])
			}
			res := result
			conv.Append(Turn{Role: RoleTool, CallID: call.ID, Result: &res})
		}
	default:
		return "", fmt.Errorf("unexpected model reply type %T", reply)
	}

	// Second invocation with the tool results in view. It is treated as
	// final even if the model asks for more tools: a single dispatch round
	// bounds every user turn to exactly two model invocations.
	reply, err = o.model.Complete(ctx, conv.Turns(), o.tools.Definitions())
	if err != nil {
		return "", fmt.Errorf("model invocation failed: %w", err)
	}

	final := finalText(reply)
	conv.Append(Turn{Role: RoleAssistant, Content: final})
	return final, nil
}

func finalText(reply Reply) string {
	switch r := reply.(type) {
	case TextReply:
		return r.Text
	case ToolCallReply:
		return r.Text
	default:
		return ""
	}
}
