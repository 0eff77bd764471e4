package analysis

import (
	"context"

	"github.com/leefowlercu/docweave/internal/document"
	"github.com/leefowlercu/docweave/internal/store"
	"github.com/leefowlercu/docweave/internal/topics"
)

// TopicStage defines the interface for topic detection and cluster
// naming.
type TopicStage interface {
	Detect(ctx context.Context, doc *document.Document) ([]topics.Topic, error)
	NameCluster(ctx context.Context, index int, sample string) topics.Topic
}

// ConceptStage defines the interface for key concept extraction.
type ConceptStage interface {
	Extract(ctx context.Context, text string) []string
	Tripped() bool
}

// DocumentStore defines the persistence operations the pipeline needs.
type DocumentStore interface {
	UpsertDocument(ctx context.Context, source string, wordCount, chunkCount int) (string, error)
	InsertChunks(ctx context.Context, documentID string, chunks []store.ChunkRecord, vectors [][]float32, model string) error
	Documents(ctx context.Context) ([]store.Document, error)
	Chunks(ctx context.Context, documentID string) ([]store.ChunkRecord, error)
	Search(ctx context.Context, query []float32, limit int) ([]store.SearchResult, error)
}

// Compile-time interface assertions for the concrete stage implementations.
var (
	_ TopicStage    = (*topics.Detector)(nil)
	_ ConceptStage  = (*topics.ConceptExtractor)(nil)
	_ DocumentStore = (*store.Store)(nil)
)
