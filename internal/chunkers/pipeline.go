package chunkers

import (
	"log/slog"

	"github.com/leefowlercu/docweave/internal/document"
)

// Pipeline runs the three chunking stages in fixed order: header-aware
// section splitting, small-section merging, then bounded splitting of
// oversized sections. Each stage consumes an immutable input and produces
// a new value; the finalized chunk list is never mutated afterwards.
type Pipeline struct {
	opts   Options
	logger *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger sets the logger for the pipeline.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// NewPipeline creates a chunking pipeline with the given options.
func NewPipeline(opts Options, popts ...PipelineOption) *Pipeline {
	if opts.MinSectionWords <= 0 {
		opts.MinSectionWords = DefaultOptions().MinSectionWords
	}
	if opts.MaxSectionWords <= 0 {
		opts.MaxSectionWords = DefaultOptions().MaxSectionWords
	}
	if opts.OverlapLines <= 0 {
		opts.OverlapLines = DefaultOptions().OverlapLines
	}

	p := &Pipeline{
		opts:   opts,
		logger: slog.Default(),
	}
	for _, opt := range popts {
		opt(p)
	}
	return p
}

// Process decomposes a document into bounded chunks and returns them with
// summary statistics. The run is deterministic: identical input and options
// always yield the identical chunk list.
func (p *Pipeline) Process(doc *document.Document) ([]Chunk, Stats) {
	sections := SplitSections(doc.Lines)
	p.logger.Debug("split document into sections",
		"source", doc.Source,
		"sections", len(sections))

	merged := MergeSections(sections, p.opts.MinSectionWords)
	p.logger.Debug("merged small sections",
		"source", doc.Source,
		"sections", len(merged))

	chunks := SplitBounded(merged, p.opts.MaxSectionWords, p.opts.OverlapLines)
	stats := computeStats(doc, chunks)
	p.logger.Debug("bounded oversized sections",
		"source", doc.Source,
		"chunks", stats.TotalChunks,
		"avg_words", stats.AvgWords,
		"max_words", stats.MaxWords)

	return chunks, stats
}

// Options returns the pipeline's effective options.
func (p *Pipeline) Options() Options {
	return p.opts
}
