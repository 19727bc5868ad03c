package llm

import (
	"fmt"
	"strings"

	"github.com/shubhampawar16/synthea/internal/types"
)

const (
	ErrCodeProviderNotFound     types.ErrorCode = "LLM_PROVIDER_NOT_FOUND"
	ErrCodeProviderInitFailed   types.ErrorCode = "LLM_PROVIDER_INIT_FAILED"
	ErrCodeProviderUnauthorized types.ErrorCode = "LLM_PROVIDER_UNAUTHORIZED"
	ErrCodeProviderRateLimited  types.ErrorCode = "LLM_PROVIDER_RATE_LIMITED"
	ErrCodeCompletionFailed     types.ErrorCode = "LLM_COMPLETION_FAILED"
	ErrCodeStreamingFailed      types.ErrorCode = "LLM_STREAMING_FAILED"
)

// NewAuthError creates an authentication error for a provider.
func NewAuthError(provider string, cause error) *types.SyntheaError {
	if cause == nil {
		return types.NewError(ErrCodeProviderUnauthorized,
			fmt.Sprintf("provider %s: missing or invalid API key", provider))
	}
	return types.WrapError(ErrCodeProviderUnauthorized,
		fmt.Sprintf("provider %s: authentication failed", provider), cause)
}

// TranslateError maps a raw provider error onto the structured error codes,
// classifying rate limits as retryable.
func TranslateError(provider string, err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "permission denied"):
		return NewAuthError(provider, err)
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource exhausted"):
		e := types.NewRetryableError(ErrCodeProviderRateLimited,
			fmt.Sprintf("provider %s: rate limited", provider))
		e.Cause = err
		return e
	default:
		return types.WrapError(ErrCodeCompletionFailed,
			fmt.Sprintf("provider %s: completion failed", provider), err)
	}
}
