package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/leefowlercu/docweave/internal/chunkers"
	"github.com/leefowlercu/docweave/internal/document"
	"github.com/leefowlercu/docweave/internal/providers"
	"github.com/leefowlercu/docweave/internal/render"
	"github.com/leefowlercu/docweave/internal/store"
)

// IndexResult summarizes a completed index flow.
type IndexResult struct {
	DocumentID string
	Chunks     int
	Concepts   []string

	// Annotated is the source document wrapped with processing metadata
	// and a backlinks trailer, empty unless annotation was requested.
	Annotated string
}

// IndexDocument chunks doc with header context, embeds every chunk, and
// persists the result in the vector store, replacing any prior index of
// the same source. With annotate set it also extracts key concepts and
// returns an annotated copy of the document for the caller to write.
func (p *Pipeline) IndexDocument(ctx context.Context, doc *document.Document, annotate bool) (*IndexResult, error) {
	if p.store == nil {
		return nil, fmt.Errorf("no store configured")
	}

	pieces := chunkers.SplitWithContext(doc.Text, p.chunking.Options().ContextChunkChars)
	p.progressf("Split into %d chunks", len(pieces))

	p.progressf("Generating embeddings...")
	res, err := p.embeddings.Embed(ctx, providers.EmbeddingsRequest{Content: pieces})
	if err != nil {
		return nil, fmt.Errorf("failed to embed chunks; %w", err)
	}

	id, err := p.store.UpsertDocument(ctx, doc.Source, doc.WordCount, len(pieces))
	if err != nil {
		return nil, err
	}

	records := make([]store.ChunkRecord, len(pieces))
	for i, piece := range pieces {
		records[i] = store.ChunkRecord{
			Header:    firstLine(piece),
			Content:   piece,
			WordCount: document.CountWords(piece),
		}
	}
	if err := p.store.InsertChunks(ctx, id, records, res.Vectors, res.ModelName); err != nil {
		return nil, err
	}
	p.progressf("Indexed %d chunks", len(pieces))

	result := &IndexResult{DocumentID: id, Chunks: len(pieces)}
	if annotate && p.concepts != nil {
		p.progressf("Extracting key concepts...")
		result.Concepts = p.concepts.Extract(ctx, doc.Text)
		result.Annotated = render.AnnotatedDocument(doc.Text, doc.Source, result.Concepts, len(pieces), time.Now())
	}

	return result, nil
}

// firstLine returns the first nonempty line of s, used as a chunk label.
func firstLine(s string) string {
	start := 0
	for start < len(s) && (s[start] == '\n' || s[start] == '\r') {
		start++
	}
	end := start
	for end < len(s) && s[end] != '\n' {
		end++
	}
	line := s[start:end]
	if len(line) > 80 {
		line = line[:80]
	}
	return line
}
