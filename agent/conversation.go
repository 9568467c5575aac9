// Package agent implements the tool-invocation orchestration loop: the
// control logic that turns one user message into zero or more validated tool
// calls and a final assistant answer. The language model is an injected
// capability; the agent never invents appointment data itself.
package agent

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Turn is one entry in the conversation log. Turns are treated as immutable
// once appended.
type Turn struct {
	Role      Role
	Content   string
	ToolCalls []ToolCallRequest // assistant turns only
	CallID    string            // tool turns only, correlates to the request
	Result    *ToolResult       // tool turns only
}

// Conversation is an append-only log of turns. The first turn is always the
// system instruction. A Conversation is not safe for concurrent use: each
// chat session owns its own instance, with at most one in-flight turn.
type Conversation struct {
	turns []Turn
}

// NewConversation starts a log seeded with the system instruction.
func NewConversation(systemPrompt string) *Conversation {
	return &Conversation{
		turns: []Turn{{Role: RoleSystem, Content: systemPrompt}},
	}
}

// Append adds a turn to the end of the log.
func (c *Conversation) Append(t Turn) {
	c.turns = append(c.turns, t)
}

// Turns returns a copy of the log so callers cannot mutate appended turns.
func (c *Conversation) Turns() []Turn {
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Len returns the number of turns in the log.
func (c *Conversation) Len() int {
	return len(c.turns)
}
