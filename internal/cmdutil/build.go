package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/leefowlercu/docweave/internal/analysis"
	"github.com/leefowlercu/docweave/internal/chunkers"
	"github.com/leefowlercu/docweave/internal/config"
	"github.com/leefowlercu/docweave/internal/providers"
	"github.com/leefowlercu/docweave/internal/providers/embeddings"
	"github.com/leefowlercu/docweave/internal/providers/semantic"
	"github.com/leefowlercu/docweave/internal/store"
	"github.com/leefowlercu/docweave/internal/topics"
)

// Runtime bundles the wired components a command needs: the provider
// registry, the analysis pipeline, and the optional vector store.
type Runtime struct {
	Registry *providers.Registry
	Pipeline *analysis.Pipeline
	Store    *store.Store
}

// Close releases runtime resources.
func (r *Runtime) Close() error {
	if r.Store != nil {
		return r.Store.Close()
	}
	return nil
}

// NewRuntime wires providers, detector, extractor, and optionally the
// vector store into a ready analysis pipeline.
func NewRuntime(cfg *config.Config, logger *slog.Logger, reporter analysis.Reporter, withStore bool) (*Runtime, error) {
	registry, err := buildRegistry(cfg)
	if err != nil {
		return nil, err
	}

	sem, err := registry.GetSemantic(cfg.Semantic.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve semantic provider; %w", err)
	}
	emb, err := registry.GetEmbeddings(cfg.Embeddings.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve embeddings provider; %w", err)
	}

	rt := &Runtime{Registry: registry}
	if withStore {
		path, err := ResolvePath(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve store path; %w", err)
		}
		rt.Store, err = store.Open(path)
		if err != nil {
			return nil, err
		}
	}

	pcfg := analysis.PipelineConfig{
		Chunking: chunkers.Options{
			MinSectionWords:   cfg.Chunking.MinSectionWords,
			MaxSectionWords:   cfg.Chunking.MaxSectionWords,
			OverlapLines:      cfg.Chunking.OverlapLines,
			ContextChunkChars: cfg.Chunking.ChunkSizeChars,
		},
		Topics: topics.NewDetector(sem,
			topics.WithTopicRange(cfg.Topics.MinTopics, cfg.Topics.MaxTopics),
			topics.WithDetectorLogger(logger)),
		Concepts:         topics.NewConceptExtractor(sem, logger),
		Embeddings:       emb,
		LinkThreshold:    cfg.Similarity.LinkThreshold,
		LinkTopK:         cfg.Similarity.LinkTopK,
		ClusterThreshold: cfg.Similarity.ClusterThreshold,
		Logger:           logger,
	}
	if rt.Store != nil {
		pcfg.Store = rt.Store
	}

	rt.Pipeline = analysis.NewPipeline(pcfg, analysis.WithReporter(reporter))
	return rt, nil
}

// buildRegistry registers the providers the configuration names.
func buildRegistry(cfg *config.Config) (*providers.Registry, error) {
	registry := providers.NewRegistry()

	sem, err := newSemanticProvider(cfg)
	if err != nil {
		return nil, err
	}
	if err := registry.RegisterSemantic(sem); err != nil {
		return nil, fmt.Errorf("failed to register semantic provider; %w", err)
	}

	emb, err := newEmbeddingsProvider(cfg)
	if err != nil {
		return nil, err
	}
	if err := registry.RegisterEmbeddings(emb); err != nil {
		return nil, fmt.Errorf("failed to register embeddings provider; %w", err)
	}

	return registry, nil
}

func newSemanticProvider(cfg *config.Config) (providers.SemanticProvider, error) {
	switch cfg.Semantic.Provider {
	case "openai":
		return semantic.NewOpenAIProvider(
			semantic.WithOpenAIModel(cfg.Semantic.Model),
			semantic.WithOpenAIAPIKey(cfg.Semantic.ResolveAPIKey()),
		), nil
	case "azure":
		opts := []semantic.AzureOption{semantic.WithAzureDeployment(cfg.Semantic.Model)}
		if cfg.Semantic.Endpoint != "" {
			opts = append(opts, semantic.WithAzureEndpoint(cfg.Semantic.Endpoint))
		}
		if key := cfg.Semantic.ResolveAPIKey(); key != "" {
			opts = append(opts, semantic.WithAzureAPIKey(key))
		}
		return semantic.NewAzureProvider(opts...), nil
	case "ollama":
		opts := []semantic.OllamaOption{semantic.WithOllamaModel(cfg.Semantic.Model)}
		if cfg.Semantic.Endpoint != "" {
			opts = append(opts, semantic.WithOllamaBaseURL(cfg.Semantic.Endpoint))
		}
		return semantic.NewOllamaProvider(opts...), nil
	default:
		return nil, fmt.Errorf("unknown semantic provider %q", cfg.Semantic.Provider)
	}
}

func newEmbeddingsProvider(cfg *config.Config) (providers.EmbeddingsProvider, error) {
	var inner providers.EmbeddingsProvider
	switch cfg.Embeddings.Provider {
	case "openai":
		inner = embeddings.NewOpenAIProvider(
			embeddings.WithOpenAIModel(cfg.Embeddings.Model),
			embeddings.WithOpenAIDimensions(cfg.Embeddings.Dimensions),
			embeddings.WithOpenAIAPIKey(cfg.Embeddings.ResolveAPIKey()),
		)
	case "ollama":
		opts := []embeddings.OllamaOption{
			embeddings.WithOllamaModel(cfg.Embeddings.Model),
			embeddings.WithOllamaDimensions(cfg.Embeddings.Dimensions),
		}
		if cfg.Embeddings.Endpoint != "" {
			opts = append(opts, embeddings.WithOllamaBaseURL(cfg.Embeddings.Endpoint))
		}
		inner = embeddings.NewOllamaProvider(opts...)
	default:
		return nil, fmt.Errorf("unknown embeddings provider %q", cfg.Embeddings.Provider)
	}

	cache := embeddings.NewCache(cfg.Embeddings.CacheSize)
	return embeddings.NewCachedProvider(inner, cache), nil
}
