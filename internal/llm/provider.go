package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for completion-endpoint interaction.
// Consumers call Generate with a Request and receive the model's output.
type Provider interface {
	// Generate sends a prompt to the completion endpoint and returns its
	// response. The request's Schema field, when set, instructs the
	// provider to return JSON conforming to that schema; when nil, the
	// response Content is the raw generated text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the completion endpoint.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation history. Grading requests are
	// single-turn: one user message carrying the item listing.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is raw text as json.RawMessage.
	// The grading path leaves this nil and recovers JSON defensively
	// instead, since loosely-formatted output is expected.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "grading-results".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object. When no Schema was
	// provided, this is the raw text response.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
