package semantic

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/leefowlercu/docweave/internal/providers"
)

const azureDefaultDeployment = "gpt-4"

// AzureProvider implements SemanticProvider against an Azure OpenAI
// deployment. The deployment name doubles as the model identifier.
type AzureProvider struct {
	endpoint    string
	apiKey      string
	deployment  string
	client      *openai.Client
	rateLimiter *providers.RateLimiter
}

// AzureOption configures the AzureProvider.
type AzureOption func(*AzureProvider)

// WithAzureDeployment sets the deployment (model) name.
func WithAzureDeployment(name string) AzureOption {
	return func(p *AzureProvider) {
		if name != "" {
			p.deployment = name
		}
	}
}

// WithAzureEndpoint sets the resource endpoint, overriding the environment.
func WithAzureEndpoint(endpoint string) AzureOption {
	return func(p *AzureProvider) {
		if endpoint != "" {
			p.endpoint = endpoint
		}
	}
}

// WithAzureAPIKey sets the API key, overriding the environment.
func WithAzureAPIKey(key string) AzureOption {
	return func(p *AzureProvider) {
		if key != "" {
			p.apiKey = key
		}
	}
}

// NewAzureProvider creates a new Azure OpenAI semantic provider.
func NewAzureProvider(opts ...AzureOption) *AzureProvider {
	p := &AzureProvider{
		endpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		apiKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
		deployment: azureDefaultDeployment,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.Available() {
		config := openai.DefaultAzureConfig(p.apiKey, p.endpoint)
		deployment := p.deployment
		config.AzureModelMapperFunc = func(string) string {
			return deployment
		}
		p.client = openai.NewClientWithConfig(config)
	}
	p.rateLimiter = providers.NewRateLimiter(p.RateLimit())

	return p
}

// Name returns the provider's unique identifier.
func (p *AzureProvider) Name() string {
	return "azure"
}

// Type returns the provider type.
func (p *AzureProvider) Type() providers.ProviderType {
	return providers.ProviderTypeSemantic
}

// Available returns true if the provider is configured and ready.
func (p *AzureProvider) Available() bool {
	return p.apiKey != "" && p.endpoint != ""
}

// RateLimit returns the rate limit configuration.
func (p *AzureProvider) RateLimit() providers.RateLimitConfig {
	return providers.RateLimitConfig{
		RequestsPerMinute: 60,
		BurstSize:         10,
	}
}

// ModelName returns the deployment name used by this provider.
func (p *AzureProvider) ModelName() string {
	return p.deployment
}

// Complete sends a prompt and returns the raw model text.
func (p *AzureProvider) Complete(ctx context.Context, req providers.CompletionRequest) (string, error) {
	if !p.Available() {
		return "", fmt.Errorf("azure provider not available; AZURE_OPENAI_ENDPOINT or AZURE_OPENAI_API_KEY not set")
	}

	if err := p.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait failed; %w", err)
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatRequest(p.deployment, req))
	if err != nil {
		return "", fmt.Errorf("azure completion failed; %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
