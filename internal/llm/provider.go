// Package llm abstracts the language-model backends behind a single
// Provider interface. Backends exist for Anthropic, OpenAI, Gemini and
// OpenRouter; decorators add retries and event logging. Callers that
// need structured output attach a Schema to the request and get back
// validated JSON.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates model responses. Implementations are safe for
// concurrent use.
type Provider interface {
	// Generate runs one completion. With req.Schema set the provider
	// uses its native structured-output mechanism and the returned
	// Content is JSON matching that schema; without a schema Content
	// is the raw text wrapped as a JSON string.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Role is the sender of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Request is what gets sent to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Everything in this app is
	// single-turn, so it usually holds exactly one user message.
	Messages []Message

	// Schema, when non-nil, is the JSON Schema the output must satisfy.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Schema names and defines the JSON structure expected back. Name is
// kebab-case ("sentence-eval", "mnemonic") and doubles as the tool name
// for Anthropic and the schema name for OpenAI. Description is shown to
// the model to steer generation.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model's output plus accounting.
type Response struct {
	// Content is validated JSON when the request carried a schema,
	// otherwise the raw text as a JSON string.
	Content json.RawMessage

	// Usage is the token count for this call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized across backends to one of
	// "end", "max_tokens" or "error".
	StopReason string
}

// Usage holds per-request token counts.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
