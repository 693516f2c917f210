package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction over generative-text backends.
type Provider interface {
	// Generate performs one backend call. When req.Schema is set the
	// returned Content has already been validated against it; a reply
	// that does not conform is reported as *ErrInvalidResponse, never
	// passed through.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider targets.
	ModelID() string
}

// Request describes one backend call.
type Request struct {
	// System sets the backend's role and constraints.
	System string

	// Messages is the conversation. Paper generation is single turn,
	// so this is normally one user message.
	Messages []Message

	// Schema, when non-nil, is declared to the backend through its
	// native structured-output mechanism. Backends do not reliably
	// self-constrain, so the provider re-validates the reply against
	// the schema regardless.
	Schema *Schema

	// MaxTokens bounds the reply length.
	MaxTokens int

	// Temperature in [0.0, 1.0]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema declared to the backend.
type Schema struct {
	// Name identifies the schema to the backend (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case.
	Name string

	// Description tells the backend what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the backend's reply.
type Response struct {
	// Content is the generated output. With a Schema in the request
	// this is the schema-validated JSON object; without one it is the
	// raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the call.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage counts tokens for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
