package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/leefowlercu/docweave/internal/providers"
)

const (
	ollamaDefaultBaseURL  = "http://localhost:11434"
	ollamaDefaultEmbModel = "all-minilm"

	// all-minilm produces 384-dimensional vectors, the reference
	// configuration for the vector store.
	ollamaDefaultDimensions = 384
)

// OllamaProvider implements EmbeddingsProvider against a local Ollama
// instance.
type OllamaProvider struct {
	baseURL    string
	model      string
	dimensions int
	httpClient *http.Client
}

// OllamaOption configures the OllamaProvider.
type OllamaOption func(*OllamaProvider)

// WithOllamaModel sets the model to use.
func WithOllamaModel(model string) OllamaOption {
	return func(p *OllamaProvider) {
		if model != "" {
			p.model = model
		}
	}
}

// WithOllamaDimensions sets the expected embedding dimensions.
func WithOllamaDimensions(dims int) OllamaOption {
	return func(p *OllamaProvider) {
		if dims > 0 {
			p.dimensions = dims
		}
	}
}

// WithOllamaBaseURL sets the Ollama server base URL.
func WithOllamaBaseURL(url string) OllamaOption {
	return func(p *OllamaProvider) {
		if url != "" {
			p.baseURL = url
		}
	}
}

// NewOllamaProvider creates a new Ollama embeddings provider.
func NewOllamaProvider(opts ...OllamaOption) *OllamaProvider {
	p := &OllamaProvider{
		baseURL:    ollamaDefaultBaseURL,
		model:      ollamaDefaultEmbModel,
		dimensions: ollamaDefaultDimensions,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the provider's unique identifier.
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// Type returns the provider type.
func (p *OllamaProvider) Type() providers.ProviderType {
	return providers.ProviderTypeEmbeddings
}

// Available returns true; Ollama needs no credentials.
func (p *OllamaProvider) Available() bool {
	return true
}

// RateLimit returns the rate limit configuration.
func (p *OllamaProvider) RateLimit() providers.RateLimitConfig {
	return providers.RateLimitConfig{}
}

// ModelName returns the name of the embedding model.
func (p *OllamaProvider) ModelName() string {
	return p.model
}

// Dimensions returns the dimensionality of the embedding vectors.
func (p *OllamaProvider) Dimensions() int {
	return p.dimensions
}

type ollamaEmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type ollamaEmbedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// Embed generates embeddings for the given content.
func (p *OllamaProvider) Embed(ctx context.Context, req providers.EmbeddingsRequest) (*providers.EmbeddingsResult, error) {
	if len(req.Content) == 0 {
		return nil, fmt.Errorf("no content provided")
	}

	body, err := json.Marshal(ollamaEmbedRequest{
		Model: p.model,
		Input: req.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request; %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/embed", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request; %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed; %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response; %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &providers.StatusError{
			Provider:   p.Name(),
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var apiResp ollamaEmbedResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse response; %w", err)
	}

	if len(apiResp.Embeddings) != len(req.Content) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(req.Content), len(apiResp.Embeddings))
	}

	return &providers.EmbeddingsResult{
		Vectors:   apiResp.Embeddings,
		ModelName: p.model,
	}, nil
}
