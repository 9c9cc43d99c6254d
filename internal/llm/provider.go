// Package llm abstracts the generative-model providers behind a single
// Provider interface with schema-constrained JSON output. The quiz
// generator talks only to this package; which vendor actually serves
// the request is a configuration detail.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends prompts to a generative model and returns structured
// JSON responses.
type Provider interface {
	// Generate performs one model call. When the request carries a
	// Schema, the provider uses its native structured-output mechanism
	// and the returned Content is JSON validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single model call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Quiz generation is single turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, constrains the response to the given JSON
	// Schema via the provider's structured-output facility.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0.0, 1.0]; zero means provider default.
	Temperature float64
}

// Message is one turn of the conversation.
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
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is the generated JSON (schema-validated when the request
	// carried a Schema).
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token counts for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
