package providers

import (
	"context"
	"fmt"

	"github.com/shubhampawar16/synthea/internal/llm"
	"github.com/shubhampawar16/synthea/internal/types"
)

// NewProvider creates an LLM provider from the configuration.
func NewProvider(ctx context.Context, cfg llm.Config) (llm.Provider, error) {
	switch cfg.Provider {
	case "google", "":
		return NewGoogleProvider(ctx, cfg)
	case "mock":
		return NewMockProvider([]string{"mock response"}), nil
	default:
		return nil, types.NewError(llm.ErrCodeProviderNotFound,
			fmt.Sprintf("unknown provider %q", cfg.Provider))
	}
}
