// Package providers contains the concrete LLM provider implementations.
package providers

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/schema"

	"github.com/shubhampawar16/synthea/internal/llm"
	"github.com/shubhampawar16/synthea/internal/types"
)

// GoogleProvider implements llm.Provider for Google's Gemini models.
type GoogleProvider struct {
	client *googleai.GoogleAI
	config llm.Config
}

// NewGoogleProvider creates a new Google provider. The API key comes from the
// config or the GOOGLE_API_KEY environment variable.
func NewGoogleProvider(ctx context.Context, cfg llm.Config) (*GoogleProvider, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, llm.NewAuthError("google", nil)
	}

	opts := []googleai.Option{
		googleai.WithAPIKey(apiKey),
	}
	if cfg.Model != "" {
		opts = append(opts, googleai.WithDefaultModel(cfg.Model))
	}

	client, err := googleai.New(ctx, opts...)
	if err != nil {
		return nil, llm.TranslateError("google", err)
	}

	return &GoogleProvider{client: client, config: cfg}, nil
}

// Name returns the provider name.
func (p *GoogleProvider) Name() string {
	return "google"
}

// Models returns information about available models.
func (p *GoogleProvider) Models(ctx context.Context) ([]llm.ModelInfo, error) {
	return []llm.ModelInfo{
		{Name: "gemini-2.0-flash", ContextWindow: 1048576, MaxOutput: 8192},
		{Name: "gemini-1.5-pro", ContextWindow: 1048576, MaxOutput: 8192},
		{Name: "gemini-1.5-flash", ContextWindow: 1048576, MaxOutput: 8192},
	}, nil
}

// Complete sends a completion request.
func (p *GoogleProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	resp, err := p.client.GenerateContent(ctx, toLangchainMessages(req.Messages), callOptions(p.config, req)...)
	if err != nil {
		return nil, llm.TranslateError("google", err)
	}
	return fromLangchainResponse(resp, p.model(req)), nil
}

// Stream sends a streaming completion request.
func (p *GoogleProvider) Stream(ctx context.Context, req llm.CompletionRequest) (<-chan llm.StreamChunk, error) {
	chunks := make(chan llm.StreamChunk, 10)

	opts := callOptions(p.config, req)
	opts = append(opts, llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chunks <- llm.StreamChunk{Content: string(chunk)}:
			return nil
		}
	}))

	go func() {
		defer close(chunks)
		if _, err := p.client.GenerateContent(ctx, toLangchainMessages(req.Messages), opts...); err != nil {
			chunks <- llm.StreamChunk{Err: llm.TranslateError("google", err)}
		}
	}()

	return chunks, nil
}

// Health checks the provider with a one-token completion.
func (p *GoogleProvider) Health(ctx context.Context) types.HealthStatus {
	req := llm.CompletionRequest{
		Messages:  []llm.Message{llm.NewUserMessage("ping")},
		MaxTokens: 1,
	}
	if _, err := p.Complete(ctx, req); err != nil {
		return types.Unhealthy(err.Error())
	}
	return types.Healthy("google provider reachable")
}

func (p *GoogleProvider) model(req llm.CompletionRequest) string {
	if req.Model != "" {
		return req.Model
	}
	return p.config.Model
}

// toLangchainMessages converts our messages to langchaingo MessageContent.
func toLangchainMessages(messages []llm.Message) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		var role schema.ChatMessageType
		switch msg.Role {
		case llm.RoleSystem:
			role = schema.ChatMessageTypeSystem
		case llm.RoleAssistant:
			role = schema.ChatMessageTypeAI
		default:
			role = schema.ChatMessageTypeHuman
		}
		result = append(result, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(msg.Content)},
		})
	}
	return result
}

// callOptions builds langchaingo call options from the config and request,
// with request values taking precedence.
func callOptions(cfg llm.Config, req llm.CompletionRequest) []llms.CallOption {
	opts := []llms.CallOption{
		llms.WithTemperature(req.Temperature),
	}

	model := req.Model
	if model == "" {
		model = cfg.Model
	}
	if model != "" {
		opts = append(opts, llms.WithModel(model))
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = cfg.MaxTokens
	}
	if maxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(maxTokens))
	}

	return opts
}

// fromLangchainResponse converts a langchaingo response.
func fromLangchainResponse(resp *llms.ContentResponse, model string) *llm.CompletionResponse {
	out := &llm.CompletionResponse{
		ID:    uuid.New().String(),
		Model: model,
	}
	if resp != nil && len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Content
		out.FinishReason = resp.Choices[0].StopReason
	}
	return out
}
