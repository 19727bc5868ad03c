package providers

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shubhampawar16/synthea/internal/llm"
	"github.com/shubhampawar16/synthea/internal/types"
)

// MockCall represents a recorded call to the mock provider.
type MockCall struct {
	Request llm.CompletionRequest
}

// MockProvider implements llm.Provider for testing. Responses are served in
// order, cycling when exhausted.
type MockProvider struct {
	mu            sync.Mutex
	responses     []string
	responseIndex int
	calls         []MockCall
	err           error
}

// NewMockProvider creates a new mock provider.
func NewMockProvider(responses []string) *MockProvider {
	return &MockProvider{responses: responses}
}

// SetError makes every subsequent call fail with err.
func (p *MockProvider) SetError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// Calls returns a copy of the recorded calls.
func (p *MockProvider) Calls() []MockCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]MockCall, len(p.calls))
	copy(out, p.calls)
	return out
}

// Name returns the provider name.
func (p *MockProvider) Name() string {
	return "mock"
}

// Models returns mock model information.
func (p *MockProvider) Models(ctx context.Context) ([]llm.ModelInfo, error) {
	return []llm.ModelInfo{
		{Name: "mock-model", ContextWindow: 4096, MaxOutput: 2048},
	}, nil
}

// Complete serves the next configured response.
func (p *MockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	response, err := p.next(req)
	if err != nil {
		return nil, err
	}

	return &llm.CompletionResponse{
		ID:           uuid.New().String(),
		Model:        req.Model,
		Content:      response,
		FinishReason: "stop",
	}, nil
}

// Stream serves the next configured response in small chunks.
func (p *MockProvider) Stream(ctx context.Context, req llm.CompletionRequest) (<-chan llm.StreamChunk, error) {
	response, err := p.next(req)
	if err != nil {
		return nil, err
	}

	chunks := make(chan llm.StreamChunk, 10)
	go func() {
		defer close(chunks)
		const chunkSize = 5
		for i := 0; i < len(response); i += chunkSize {
			end := i + chunkSize
			if end > len(response) {
				end = len(response)
			}
			select {
			case <-ctx.Done():
				chunks <- llm.StreamChunk{Err: ctx.Err()}
				return
			case chunks <- llm.StreamChunk{Content: response[i:end]}:
			}
		}
	}()

	return chunks, nil
}

// Health reports healthy unless an error is configured.
func (p *MockProvider) Health(ctx context.Context) types.HealthStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return types.Unhealthy(p.err.Error())
	}
	return types.Healthy("mock provider")
}

func (p *MockProvider) next(req llm.CompletionRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, MockCall{Request: req})

	if p.err != nil {
		return "", p.err
	}
	if len(p.responses) == 0 {
		return "", types.NewError(llm.ErrCodeCompletionFailed, "mock: no responses configured")
	}

	response := p.responses[p.responseIndex%len(p.responses)]
	p.responseIndex++
	return response, nil
}
