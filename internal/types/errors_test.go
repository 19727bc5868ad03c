package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheaError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *SyntheaError
		want string
	}{
		{
			name: "without cause",
			err:  NewError(CONFIG_NOT_FOUND, "config file missing"),
			want: "[CONFIG_NOT_FOUND] config file missing",
		},
		{
			name: "with cause",
			err:  WrapError(CONFIG_PARSE_FAILED, "bad yaml", errors.New("line 3")),
			want: "[CONFIG_PARSE_FAILED] bad yaml: line 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestSyntheaError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := WrapError(CONFIG_LOAD_FAILED, "load failed", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestSyntheaError_Is(t *testing.T) {
	err := WrapError(CONFIG_VALIDATION_FAILED, "bad batch size", errors.New("x"))

	assert.True(t, errors.Is(err, NewError(CONFIG_VALIDATION_FAILED, "anything")))
	assert.False(t, errors.Is(err, NewError(CONFIG_NOT_FOUND, "anything")))
}

func TestSyntheaError_As(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewError(CONFIG_NOT_FOUND, "missing"))

	var syntheaErr *SyntheaError
	require.True(t, errors.As(wrapped, &syntheaErr))
	assert.Equal(t, CONFIG_NOT_FOUND, syntheaErr.Code)
}

func TestNewRetryableError(t *testing.T) {
	err := NewRetryableError(CONFIG_LOAD_FAILED, "transient")
	assert.True(t, err.Retryable)

	err = NewError(CONFIG_LOAD_FAILED, "permanent")
	assert.False(t, err.Retryable)
}
