package llm

import (
	"context"

	"github.com/shubhampawar16/synthea/internal/types"
)

// Provider defines the interface all LLM backends implement.
type Provider interface {
	// Name returns the provider name (e.g. "google").
	Name() string

	// Models returns information about the models this provider serves.
	Models(ctx context.Context) ([]ModelInfo, error)

	// Complete sends a completion request and blocks for the full response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// Stream sends a completion request and emits chunks on the returned
	// channel until completion or error. The channel is closed when the
	// stream ends.
	Stream(ctx context.Context, req CompletionRequest) (<-chan StreamChunk, error)

	// Health checks provider connectivity.
	Health(ctx context.Context) types.HealthStatus
}
