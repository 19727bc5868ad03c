package providers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhampawar16/synthea/internal/llm"
)

func TestMockProvider_Complete(t *testing.T) {
	p := NewMockProvider([]string{"first", "second"})

	resp, err := p.Complete(context.Background(), llm.CompletionRequest{
		Messages: []llm.Message{llm.NewUserMessage("hi")},
	})
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Content)
	assert.NotEmpty(t, resp.ID)

	resp, err = p.Complete(context.Background(), llm.CompletionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Content)

	// Cycles back to the start.
	resp, err = p.Complete(context.Background(), llm.CompletionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Content)

	assert.Len(t, p.Calls(), 3)
}

func TestMockProvider_Stream(t *testing.T) {
	p := NewMockProvider([]string{"hello world"})

	chunks, err := p.Stream(context.Background(), llm.CompletionRequest{})
	require.NoError(t, err)

	var got string
	for chunk := range chunks {
		require.NoError(t, chunk.Err)
		got += chunk.Content
	}
	assert.Equal(t, "hello world", got)
}

func TestMockProvider_Error(t *testing.T) {
	p := NewMockProvider([]string{"ok"})
	p.SetError(fmt.Errorf("provider down"))

	_, err := p.Complete(context.Background(), llm.CompletionRequest{})
	require.Error(t, err)

	health := p.Health(context.Background())
	assert.False(t, health.IsHealthy())
}

func TestNewProvider_Factory(t *testing.T) {
	p, err := NewProvider(context.Background(), llm.Config{Provider: "mock"})
	require.NoError(t, err)
	assert.Equal(t, "mock", p.Name())

	_, err = NewProvider(context.Background(), llm.Config{Provider: "carrier-pigeon"})
	require.Error(t, err)
}
