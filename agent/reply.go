package agent

// Reply is the model's answer to a completion request: either final free
// text or a request to invoke tools. The set is closed; dispatch code
// type-switches over the variants so an unknown variant is an explicit
// error, not a silent fallthrough.
type Reply interface {
	isReply()
}

// TextReply is a final free-text answer.
type TextReply struct {
	Text string
}

// ToolCallReply carries one or more tool-call requests, optionally with
// preliminary text that is not surfaced to the user until the calls resolve.
type ToolCallReply struct {
	Text  string
	Calls []ToolCallRequest
}

func (TextReply) isReply()     {}
func (ToolCallReply) isReply() {}

// ToolCallRequest is a model-issued instruction to invoke a named tool.
type ToolCallRequest struct {
	ID        string
	Name      string
	Arguments map[string]string
}
