// Package llm defines the provider abstraction the chat service speaks to.
// Concrete providers live in the providers subpackage.
package llm

import "time"

// Role identifies the author of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// CompletionRequest is a request for a model completion.
type CompletionRequest struct {
	// Model overrides the provider's configured default when non-empty.
	Model string `json:"model,omitempty"`

	Messages []Message `json:"messages"`

	// Temperature controls sampling randomness. Zero keeps generation
	// deterministic, which Cypher generation wants.
	Temperature float64 `json:"temperature"`

	// MaxTokens caps the generated output length. Zero uses the provider
	// default.
	MaxTokens int `json:"max_tokens,omitempty"`
}

// CompletionResponse is a completed model response.
type CompletionResponse struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"`
}

// StreamChunk is one increment of a streaming completion. Exactly one of
// Content and Err is meaningful; a non-nil Err terminates the stream.
type StreamChunk struct {
	Content string
	Err     error
}

// ModelInfo describes one model a provider can serve.
type ModelInfo struct {
	Name          string `json:"name"`
	ContextWindow int    `json:"context_window"`
	MaxOutput     int    `json:"max_output"`
}

// Config contains provider configuration.
type Config struct {
	// Provider selects the backend implementation.
	Provider string `mapstructure:"provider" yaml:"provider" validate:"omitempty,oneof=google mock"`

	// Model is the default model identifier.
	Model string `mapstructure:"model" yaml:"model"`

	// APIKey authenticates against the provider. Falls back to the
	// provider's conventional environment variable when empty.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`

	Temperature float64 `mapstructure:"temperature" yaml:"temperature" validate:"min=0,max=2"`

	MaxTokens int `mapstructure:"max_tokens" yaml:"max_tokens" validate:"min=0"`

	// Timeout bounds one completion call.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}
