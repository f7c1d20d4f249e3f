package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the generative backends. The content
// source talks to it in terms of structured JSON requests/responses and
// never sees SDK types.
type Provider interface {
	// Generate sends a prompt and returns structured output. When the
	// request carries a Schema, the returned Content is JSON validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Curriculum generation is single
	// turn, so this is normally one user message.
	Messages []Message

	// Schema, when set, selects the provider's native structured output
	// mode and the response is validated against it before return.
	Schema *Schema

	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the response must conform to.
type Schema struct {
	// Name in kebab-case, e.g. "module-candidates". Used as the tool /
	// schema name by providers that require one.
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model output.
type Response struct {
	// Content is validated JSON when the request had a Schema,
	// otherwise raw text wrapped as a JSON string.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
