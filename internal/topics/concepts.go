package topics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/leefowlercu/docweave/internal/providers"
)

// maxConcepts bounds how many concepts a single extraction keeps.
const maxConcepts = 10

// conceptSample bounds the text sent per extraction request.
const conceptSample = 2000

// ConceptExtractor pulls key concepts out of chunk text via a semantic
// provider. Extraction is best-effort; a failed request yields an empty
// concept list, never an error.
//
// The extractor carries a sticky breaker: once a request fails with a
// fatal provider error, such as a missing model, every later call in the
// same run returns immediately without touching the provider. The breaker
// never resets because retrying a 404 against the same endpoint cannot
// succeed.
type ConceptExtractor struct {
	provider providers.SemanticProvider
	logger   *slog.Logger

	mu      sync.Mutex
	tripped bool
}

// NewConceptExtractor returns a ConceptExtractor backed by provider.
func NewConceptExtractor(provider providers.SemanticProvider, logger *slog.Logger) *ConceptExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConceptExtractor{provider: provider, logger: logger}
}

// Tripped reports whether a fatal provider error has disabled extraction.
func (e *ConceptExtractor) Tripped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tripped
}

// Extract returns up to maxConcepts concepts found in text. When the
// breaker is open, or the request fails, the result is empty.
func (e *ConceptExtractor) Extract(ctx context.Context, text string) []string {
	e.mu.Lock()
	if e.tripped {
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()

	sample := text
	if len(sample) > conceptSample {
		sample = sample[:conceptSample]
	}

	resp, err := e.provider.Complete(ctx, providers.CompletionRequest{
		System:      conceptSystemPrompt,
		Prompt:      conceptPrompt(sample),
		Temperature: 0.3,
		MaxTokens:   300,
	})
	if err != nil {
		if providers.IsFatal(err) {
			e.mu.Lock()
			if !e.tripped {
				e.tripped = true
				e.logger.Warn("disabling concept extraction for this run", "error", err)
			}
			e.mu.Unlock()
		} else {
			e.logger.Debug("concept extraction failed", "error", err)
		}
		return nil
	}

	concepts := parseStringArray(resp)
	if len(concepts) > maxConcepts {
		concepts = concepts[:maxConcepts]
	}
	return concepts
}
