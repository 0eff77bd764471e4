package analysis

import (
	"context"
	"fmt"

	"github.com/leefowlercu/docweave/internal/providers"
	"github.com/leefowlercu/docweave/internal/store"
)

// Related embeds query and returns the most similar indexed chunks.
func (p *Pipeline) Related(ctx context.Context, query string, limit int) ([]store.SearchResult, error) {
	if p.store == nil {
		return nil, fmt.Errorf("no store configured")
	}

	res, err := p.embeddings.Embed(ctx, providers.EmbeddingsRequest{Content: []string{query}})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query; %w", err)
	}
	if len(res.Vectors) != 1 {
		return nil, fmt.Errorf("expected 1 query vector, got %d", len(res.Vectors))
	}

	return p.store.Search(ctx, res.Vectors[0], limit)
}
