package semantic

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
	ollamaDefaultBaseURL = "http://localhost:11434"
	ollamaDefaultModel   = "llama3.1"
)

// OllamaProvider implements SemanticProvider against a local Ollama
// instance. It needs no credentials, which makes it the no-cost path for
// topic naming.
type OllamaProvider struct {
	baseURL    string
	model      string
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

// WithOllamaBaseURL sets the Ollama server base URL.
func WithOllamaBaseURL(url string) OllamaOption {
	return func(p *OllamaProvider) {
		if url != "" {
			p.baseURL = url
		}
	}
}

// NewOllamaProvider creates a new Ollama semantic provider.
func NewOllamaProvider(opts ...OllamaOption) *OllamaProvider {
	p := &OllamaProvider{
		baseURL:    ollamaDefaultBaseURL,
		model:      ollamaDefaultModel,
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
	return providers.ProviderTypeSemantic
}

// Available returns true; Ollama needs no credentials. Reachability is
// only known once a call is made.
func (p *OllamaProvider) Available() bool {
	return true
}

// RateLimit returns the rate limit configuration. Local models are only
// bounded by their own throughput.
func (p *OllamaProvider) RateLimit() providers.RateLimitConfig {
	return providers.RateLimitConfig{}
}

// ModelName returns the model identifier used by this provider.
func (p *OllamaProvider) ModelName() string {
	return p.model
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

// Complete sends a prompt and returns the raw model text.
func (p *OllamaProvider) Complete(ctx context.Context, req providers.CompletionRequest) (string, error) {
	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  p.model,
		Prompt: req.Prompt,
		System: req.System,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request; %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request; %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ollama request failed; %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response; %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &providers.StatusError{
			Provider:   p.Name(),
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var apiResp ollamaGenerateResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("failed to parse response; %w", err)
	}

	return apiResp.Response, nil
}
