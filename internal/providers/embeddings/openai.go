package embeddings

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/leefowlercu/docweave/internal/providers"
)

const (
	openaiDefaultEmbModel   = "text-embedding-3-small"
	openaiDefaultDimensions = 1536
)

// OpenAIProvider implements EmbeddingsProvider using the OpenAI API.
type OpenAIProvider struct {
	apiKey      string
	model       string
	dimensions  int
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

// WithOpenAIDimensions sets the embedding dimensions.
func WithOpenAIDimensions(dims int) OpenAIOption {
	return func(p *OpenAIProvider) {
		if dims > 0 {
			p.dimensions = dims
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

// NewOpenAIProvider creates a new OpenAI embeddings provider.
func NewOpenAIProvider(opts ...OpenAIOption) *OpenAIProvider {
	p := &OpenAIProvider{
		apiKey:     os.Getenv("OPENAI_API_KEY"),
		model:      openaiDefaultEmbModel,
		dimensions: openaiDefaultDimensions,
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
	return providers.ProviderTypeEmbeddings
}

// Available returns true if the provider is configured and ready.
func (p *OpenAIProvider) Available() bool {
	return p.apiKey != ""
}

// RateLimit returns the rate limit configuration.
func (p *OpenAIProvider) RateLimit() providers.RateLimitConfig {
	return providers.RateLimitConfig{
		RequestsPerMinute: 500,
		BurstSize:         50,
	}
}

// ModelName returns the name of the embedding model.
func (p *OpenAIProvider) ModelName() string {
	return p.model
}

// Dimensions returns the dimensionality of the embedding vectors.
func (p *OpenAIProvider) Dimensions() int {
	return p.dimensions
}

// Embed generates embeddings for the given content.
func (p *OpenAIProvider) Embed(ctx context.Context, req providers.EmbeddingsRequest) (*providers.EmbeddingsResult, error) {
	if !p.Available() {
		return nil, fmt.Errorf("openai embeddings provider not available; OPENAI_API_KEY not set")
	}
	if len(req.Content) == 0 {
		return nil, fmt.Errorf("no content provided")
	}

	if err := p.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed; %w", err)
	}

	embReq := openai.EmbeddingRequest{
		Input: req.Content,
		Model: openai.EmbeddingModel(p.model),
	}
	// Only text-embedding-3 models accept explicit dimensions.
	if p.model == "text-embedding-3-small" || p.model == "text-embedding-3-large" {
		embReq.Dimensions = p.dimensions
	}

	resp, err := p.client.CreateEmbeddings(ctx, embReq)
	if err != nil {
		return nil, fmt.Errorf("openai embeddings request failed; %w", err)
	}

	if len(resp.Data) != len(req.Content) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(req.Content), len(resp.Data))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}

	return &providers.EmbeddingsResult{
		Vectors:    vectors,
		ModelName:  p.model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}
