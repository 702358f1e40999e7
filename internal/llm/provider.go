package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
// Consumers call Generate with a Request and receive the model's reply.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its completion.
	// Base providers return the raw completion text; the validation layer
	// (see WithValidation) turns it into checked JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the optional system prompt. The course endpoints send the
	// whole instruction as a single user message and leave this empty.
	System string

	// Messages is the conversation history. For single-turn generation
	// (every endpoint here), this contains one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When nil, any syntactically valid JSON is accepted.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64

	// StripCodeFence removes a wrapping ``` or ```json fence from the
	// completion before parsing.
	StripCodeFence bool

	// Check runs after schema validation for invariants a schema cannot
	// express (label consistency, contiguous numbering). A non-nil error
	// fails the attempt.
	Check func(json.RawMessage) error
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

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema, kebab-case, e.g. "module-list".
	Name string

	// Description is a human-readable description of what this schema
	// represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the completion. Straight from a base provider it is the
	// raw text; after the validation layer it is the cleaned, validated JSON.
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

// UserPrompt builds the single-message conversation every endpoint sends.
func UserPrompt(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}
