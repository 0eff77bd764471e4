package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var b strings.Builder
	b.WriteString("config validation failed:\n")
	for _, err := range e {
		b.WriteString("  - ")
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	return b.String()
}

// validSemanticProviders lists recognized semantic analysis providers.
var validSemanticProviders = map[string]bool{
	"openai": true,
	"azure":  true,
	"ollama": true,
}

// validEmbeddingsProviders lists recognized embeddings providers.
var validEmbeddingsProviders = map[string]bool{
	"openai": true,
	"ollama": true,
}

// Validate checks the configuration for errors.
// Returns ValidationErrors if validation fails.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	// Validate chunking config
	if cfg.Chunking.ChunkSizeChars < 1 {
		errs = append(errs, ValidationError{
			Field:   "chunking.chunk_size_chars",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.Chunking.ChunkSizeChars),
		})
	}

	if cfg.Chunking.MinSectionWords < 1 {
		errs = append(errs, ValidationError{
			Field:   "chunking.min_section_words",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.Chunking.MinSectionWords),
		})
	}

	if cfg.Chunking.MaxSectionWords < cfg.Chunking.MinSectionWords {
		errs = append(errs, ValidationError{
			Field:   "chunking.max_section_words",
			Message: fmt.Sprintf("must be at least min_section_words (%d), got %d", cfg.Chunking.MinSectionWords, cfg.Chunking.MaxSectionWords),
		})
	}

	if cfg.Chunking.OverlapLines < 0 {
		errs = append(errs, ValidationError{
			Field:   "chunking.overlap_lines",
			Message: fmt.Sprintf("must not be negative, got %d", cfg.Chunking.OverlapLines),
		})
	}

	// Validate topic config
	if cfg.Topics.MinTopics < 1 {
		errs = append(errs, ValidationError{
			Field:   "topics.min_topics",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.Topics.MinTopics),
		})
	}

	if cfg.Topics.MaxTopics < cfg.Topics.MinTopics {
		errs = append(errs, ValidationError{
			Field:   "topics.max_topics",
			Message: fmt.Sprintf("must be at least min_topics (%d), got %d", cfg.Topics.MinTopics, cfg.Topics.MaxTopics),
		})
	}

	// Validate similarity config
	if cfg.Similarity.ClusterThreshold < 0 || cfg.Similarity.ClusterThreshold > 1 {
		errs = append(errs, ValidationError{
			Field:   "similarity.cluster_threshold",
			Message: fmt.Sprintf("must be between 0 and 1, got %g", cfg.Similarity.ClusterThreshold),
		})
	}

	if cfg.Similarity.LinkThreshold < 0 || cfg.Similarity.LinkThreshold > 1 {
		errs = append(errs, ValidationError{
			Field:   "similarity.link_threshold",
			Message: fmt.Sprintf("must be between 0 and 1, got %g", cfg.Similarity.LinkThreshold),
		})
	}

	if cfg.Similarity.LinkTopK < 1 {
		errs = append(errs, ValidationError{
			Field:   "similarity.link_top_k",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.Similarity.LinkTopK),
		})
	}

	// Validate semantic config
	if !validSemanticProviders[cfg.Semantic.Provider] {
		errs = append(errs, ValidationError{
			Field:   "semantic.provider",
			Message: fmt.Sprintf("must be one of openai, azure, ollama; got %q", cfg.Semantic.Provider),
		})
	}

	if cfg.Semantic.Model == "" {
		errs = append(errs, ValidationError{
			Field:   "semantic.model",
			Message: "must not be empty",
		})
	}

	if cfg.Semantic.RateLimit < 0 {
		errs = append(errs, ValidationError{
			Field:   "semantic.rate_limit",
			Message: fmt.Sprintf("must not be negative, got %d", cfg.Semantic.RateLimit),
		})
	}

	// Validate embeddings config
	if !validEmbeddingsProviders[cfg.Embeddings.Provider] {
		errs = append(errs, ValidationError{
			Field:   "embeddings.provider",
			Message: fmt.Sprintf("must be one of openai, ollama; got %q", cfg.Embeddings.Provider),
		})
	}

	if cfg.Embeddings.Model == "" {
		errs = append(errs, ValidationError{
			Field:   "embeddings.model",
			Message: "must not be empty",
		})
	}

	if cfg.Embeddings.Dimensions < 1 {
		errs = append(errs, ValidationError{
			Field:   "embeddings.dimensions",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.Embeddings.Dimensions),
		})
	}

	if cfg.Embeddings.CacheSize < 1 {
		errs = append(errs, ValidationError{
			Field:   "embeddings.cache_size",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.Embeddings.CacheSize),
		})
	}

	// Validate store config
	if cfg.Store.Path == "" {
		errs = append(errs, ValidationError{
			Field:   "store.path",
			Message: "must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
