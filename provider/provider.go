// Package provider implements agent.Model against concrete LLM backends.
// Both backends speak the OpenAI-style function schema for tool declarations,
// so the schema rendering and argument normalization are shared here.
package provider

import (
	"encoding/json"
	"fmt"

	"healthcare-appointment-ai/agent"
	"healthcare-appointment-ai/config"
)

// New selects a model implementation from configuration.
func New(cfg *config.Config) (agent.Model, error) {
	switch cfg.AIProvider {
	case "ollama":
		return NewOllama(cfg.OllamaURL, cfg.OllamaModel), nil
	case "openai":
		return NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.AIProvider)
	}
}

// toolSchemas renders tool definitions in the function-calling schema both
// Ollama and OpenAI-compatible endpoints accept. All parameters are strings.
func toolSchemas(tools []agent.ToolDefinition) []map[string]any {
	schemas := make([]map[string]any, 0, len(tools))
	for _, t := range tools {
		properties := map[string]any{}
		required := []string{}
		for _, p := range t.Parameters {
			properties[p.Name] = map[string]any{
				"type":        "string",
				"description": p.Description,
			}
			if p.Required {
				required = append(required, p.Name)
			}
		}
		schemas = append(schemas, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        string(t.Name),
				"description": t.Description,
				"parameters": map[string]any{
					"type":       "object",
					"properties": properties,
					"required":   required,
				},
			},
		})
	}
	return schemas
}

// stringArguments flattens model-emitted argument values to strings.
func stringArguments(args map[string]any) map[string]string {
	out := make(map[string]string, len(args))
	for k, v := range args {
		switch val := v.(type) {
		case string:
			out[k] = val
		default:
			out[k] = fmt.Sprintf("%v", val)
		}
	}
	return out
}

// anyArguments widens string arguments for request marshalling.
func anyArguments(args map[string]string) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}
	return out
}

// resultContent serializes a tool result for a role "tool" message.
func resultContent(res *agent.ToolResult) string {
	if res == nil {
		return `{"status":"error","payload":{"message":"missing tool result"}}`
	}
	b, err := json.Marshal(res)
	if err != nil {
		return `{"status":"error","payload":{"message":"unencodable tool result"}}`
	}
	return string(b)
}
