package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leefowlercu/docweave/internal/render"
	"github.com/leefowlercu/docweave/internal/similarity"
	"github.com/leefowlercu/docweave/internal/store"
)

// clusterSampleChars bounds the combined chunk text sent for cluster
// naming.
const clusterSampleChars = 2000

// clusterSampleChunks is how many chunks of a cluster contribute to the
// naming sample.
const clusterSampleChunks = 3

// TopicsResult summarizes a completed topic regeneration flow.
type TopicsResult struct {
	Files    []string
	Clusters int
	Chunks   int
}

// GenerateTopics rebuilds topic files from the embeddings already in the
// store: cluster every embedded chunk by similarity, name each cluster
// through the semantic provider, and render one file per cluster under
// outputDir. Cluster naming failures degrade to deterministic names and
// never abort the flow.
func (p *Pipeline) GenerateTopics(ctx context.Context, outputDir string) (*TopicsResult, error) {
	if p.store == nil {
		return nil, fmt.Errorf("no store configured")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory; %w", err)
	}

	docs, err := p.store.Documents(ctx)
	if err != nil {
		return nil, err
	}

	var (
		chunks     []store.ChunkRecord
		sources    []string
		embeddings [][]float32
	)
	for _, d := range docs {
		records, err := p.store.Chunks(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			if r.Embedding == nil {
				continue
			}
			chunks = append(chunks, r)
			sources = append(sources, fmt.Sprintf("%s#%d", d.Source, r.Position))
			embeddings = append(embeddings, r.Embedding)
		}
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("store holds no embedded chunks; index documents first")
	}

	p.progressf("Clustering %d chunks by similarity (threshold: %g)...", len(chunks), p.clusterThreshold)
	clusters := similarity.Cluster(embeddings, p.clusterThreshold)
	p.progressf("Created %d clusters", len(clusters))

	result := &TopicsResult{Clusters: len(clusters), Chunks: len(chunks)}
	names := make(map[string]int, len(clusters))

	for i, indices := range clusters {
		p.progressf("Processing cluster %d/%d...", i+1, len(clusters))

		topic := p.topics.NameCluster(ctx, i, clusterSample(chunks, indices))
		topic.Name = reserveName(names, topic.Name)

		clusterChunks := make([]store.ChunkRecord, len(indices))
		clusterSources := make([]string, len(indices))
		for j, idx := range indices {
			clusterChunks[j] = chunks[idx]
			clusterSources[j] = sources[idx]
		}

		path := filepath.Join(outputDir, topic.Name+".md")
		md := render.ClusterDocument(topic, clusterChunks, clusterSources)
		if err := os.WriteFile(path, []byte(md), 0644); err != nil {
			return nil, fmt.Errorf("failed to write topic file; %w", err)
		}
		result.Files = append(result.Files, path)
	}

	return result, nil
}

// clusterSample joins the first few chunks of a cluster into one naming
// sample, truncated to keep the prompt bounded.
func clusterSample(chunks []store.ChunkRecord, indices []int) string {
	parts := make([]string, 0, clusterSampleChunks)
	for _, idx := range indices {
		if len(parts) == clusterSampleChunks {
			break
		}
		parts = append(parts, chunks[idx].Content)
	}
	sample := strings.Join(parts, "\n\n---\n\n")
	if len(sample) > clusterSampleChars {
		sample = sample[:clusterSampleChars] + "..."
	}
	return sample
}

// reserveName returns name, suffixed if a previous cluster already took it.
func reserveName(taken map[string]int, name string) string {
	taken[name]++
	if taken[name] == 1 {
		return name
	}
	return fmt.Sprintf("%s_%d", name, taken[name])
}
