package semantic

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/leefowlercu/docweave/internal/providers"
)

const openaiDefaultModel = "gpt-4o-mini"

// OpenAIProvider implements SemanticProvider using the OpenAI API.
type OpenAIProvider struct {
	apiKey      string
	model       string
	client      *openai.Client
	rateLimiter *providers.RateLimiter
}

// OpenAIOption configures the OpenAIProvider.
type OpenAIOption func(*OpenAIProvider)

// WithOpenAIModel sets the model to use.
func WithOpenAIModel(model string) OpenAIOption {
	return func(p *OpenAIProvider) {
		if model != "" {
			p.model = model
		}
	}
}

// WithOpenAIAPIKey sets the API key, overriding the environment.
func WithOpenAIAPIKey(key string) OpenAIOption {
	return func(p *OpenAIProvider) {
		if key != "" {
			p.apiKey = key
		}
	}
}

// NewOpenAIProvider creates a new OpenAI semantic provider.
func NewOpenAIProvider(opts ...OpenAIOption) *OpenAIProvider {
	p := &OpenAIProvider{
		apiKey: os.Getenv("OPENAI_API_KEY"),
		model:  openaiDefaultModel,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.client = openai.NewClient(p.apiKey)
	p.rateLimiter = providers.NewRateLimiter(p.RateLimit())

	return p
}

// Name returns the provider's unique identifier.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Type returns the provider type.
func (p *OpenAIProvider) Type() providers.ProviderType {
	return providers.ProviderTypeSemantic
}

// Available returns true if the provider is configured and ready.
func (p *OpenAIProvider) Available() bool {
	return p.apiKey != ""
}

// RateLimit returns the rate limit configuration.
func (p *OpenAIProvider) RateLimit() providers.RateLimitConfig {
	return providers.RateLimitConfig{
		RequestsPerMinute: 60,
		BurstSize:         10,
	}
}

// ModelName returns the model identifier used by this provider.
func (p *OpenAIProvider) ModelName() string {
	return p.model
}

// Complete sends a prompt and returns the raw model text.
func (p *OpenAIProvider) Complete(ctx context.Context, req providers.CompletionRequest) (string, error) {
	if !p.Available() {
		return "", fmt.Errorf("openai provider not available; OPENAI_API_KEY not set")
	}

	if err := p.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait failed; %w", err)
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatRequest(p.model, req))
	if err != nil {
		return "", fmt.Errorf("openai completion failed; %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// chatRequest maps a CompletionRequest onto the OpenAI chat schema. Shared
// by the OpenAI and Azure providers, which speak the same protocol.
func chatRequest(model string, req providers.CompletionRequest) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	return openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
}
