package analysis

import (
	"log/slog"

	"github.com/leefowlercu/docweave/internal/chunkers"
	"github.com/leefowlercu/docweave/internal/providers"
)

// Pipeline coordinates the processing stages for every flow. Construct
// one per run; it carries no per-document state.
type Pipeline struct {
	chunking   *chunkers.Pipeline
	topics     TopicStage
	concepts   ConceptStage
	embeddings providers.EmbeddingsProvider
	store      DocumentStore

	linkThreshold    float64
	linkTopK         int
	clusterThreshold float64

	reporter Reporter
	logger   *slog.Logger
}

// PipelineConfig holds the dependencies and tuning for a Pipeline.
// Topics and Embeddings are required for every flow; Store is required
// only for the store-backed flows and Concepts only for annotation.
type PipelineConfig struct {
	Chunking   chunkers.Options
	Topics     TopicStage
	Concepts   ConceptStage
	Embeddings providers.EmbeddingsProvider
	Store      DocumentStore

	LinkThreshold    float64
	LinkTopK         int
	ClusterThreshold float64

	Logger *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) PipelineOption {
	return func(p *Pipeline) {
		p.reporter = r
	}
}

// NewPipeline constructs a Pipeline from cfg.
func NewPipeline(cfg PipelineConfig, opts ...PipelineOption) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := &Pipeline{
		chunking:         chunkers.NewPipeline(cfg.Chunking, chunkers.WithLogger(logger)),
		topics:           cfg.Topics,
		concepts:         cfg.Concepts,
		embeddings:       cfg.Embeddings,
		store:            cfg.Store,
		linkThreshold:    cfg.LinkThreshold,
		linkTopK:         cfg.LinkTopK,
		clusterThreshold: cfg.ClusterThreshold,
		reporter:         NopReporter,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
