package providers

import (
	"context"
)

// ProviderType represents the type of provider.
type ProviderType string

const (
	ProviderTypeSemantic   ProviderType = "semantic"
	ProviderTypeEmbeddings ProviderType = "embeddings"
)

// Provider is the base interface for all providers.
type Provider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// Type returns the provider type.
	Type() ProviderType

	// Available returns true if the provider is configured and ready.
	Available() bool

	// RateLimit returns the rate limit configuration for this provider.
	RateLimit() RateLimitConfig
}

// CompletionRequest is a prompt plus system instruction sent to a semantic
// provider. The provider returns raw model text; callers own parsing and
// validation of the payload.
type CompletionRequest struct {
	// System is the system instruction.
	System string

	// Prompt is the user-role prompt.
	Prompt string

	// Temperature controls sampling; zero means the provider default.
	Temperature float32

	// MaxTokens caps the completion length; zero means the provider
	// default.
	MaxTokens int
}

// SemanticProvider produces completions used for topic detection, cluster
// naming, and concept extraction. Calls are synchronous; the core
// propagates failures rather than imposing its own retry policy.
type SemanticProvider interface {
	Provider

	// Complete sends a prompt and returns the raw model text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// ModelName returns the model identifier used by this provider.
	ModelName() string
}

// EmbeddingsRequest is an ordered list of texts to embed.
type EmbeddingsRequest struct {
	Content []string
}

// EmbeddingsResult holds vectors index-correlated with the request content.
type EmbeddingsResult struct {
	// Vectors are fixed-dimension embeddings, one per input text, in
	// input order.
	Vectors [][]float32

	// ModelName is the model that produced the vectors.
	ModelName string

	// TokensUsed is the provider-reported token count, when available.
	TokensUsed int
}

// EmbeddingsProvider turns ordered text lists into ordered vector lists.
// The dimension is constant for the process lifetime and must match the
// vector-store schema.
type EmbeddingsProvider interface {
	Provider

	// Embed generates embeddings for the given content.
	Embed(ctx context.Context, req EmbeddingsRequest) (*EmbeddingsResult, error)

	// ModelName returns the name of the embedding model.
	ModelName() string

	// Dimensions returns the dimensionality of the embedding vectors.
	Dimensions() int
}
