package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leefowlercu/docweave/internal/chunkers"
	"github.com/leefowlercu/docweave/internal/document"
	"github.com/leefowlercu/docweave/internal/providers"
	"github.com/leefowlercu/docweave/internal/render"
	"github.com/leefowlercu/docweave/internal/similarity"
	"github.com/leefowlercu/docweave/internal/topics"
)

// embedPreviewChars bounds the content sample used to embed a topic.
const embedPreviewChars = 1000

// SplitResult summarizes a completed split flow.
type SplitResult struct {
	Files  []string
	Topics int
	Chunks int
}

// SplitByTopics splits doc into per-topic markdown files with semantic
// backlinks under outputDir. Documents small enough to analyze in one
// pass produce a flat set of topic files plus an index; oversized
// documents are chunked first and each chunk produces its own topic
// subdirectory, tied together by a summary file. A failed chunk never
// aborts the remaining chunks.
func (p *Pipeline) SplitByTopics(ctx context.Context, doc *document.Document, outputDir string) (*SplitResult, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory; %w", err)
	}

	chunks, stats := p.chunking.Process(doc)
	p.progressf("Document prepared: %d words, %d chunks", stats.TotalWords, stats.TotalChunks)

	if len(chunks) <= 1 {
		files, count, err := p.splitText(ctx, doc.Text, doc.Source, outputDir)
		if err != nil {
			return nil, err
		}
		return &SplitResult{Files: files, Topics: count, Chunks: 1}, nil
	}

	result := &SplitResult{Chunks: len(chunks)}
	index := 0
	batched, err := chunkers.ProcessInBatches(ctx, chunks, func(ctx context.Context, chunk chunkers.Chunk) ([]string, error) {
		index++
		dir := filepath.Join(outputDir, chunkDirName(index, chunk.Header))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create chunk directory; %w", err)
		}
		files, _, err := p.splitText(ctx, chunk.Content(), doc.Source, dir)
		return files, err
	}, chunkers.ProgressFunc(p.reporter.Progress))
	if err != nil {
		return nil, err
	}

	for _, b := range batched {
		if !b.Success {
			p.logger.Warn("chunk failed", "header", b.Chunk.Header, "error", b.Err)
			continue
		}
		result.Files = append(result.Files, b.Result...)
	}

	summary := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(summary, []byte(chunkSummary(doc, chunks, batched)), 0644); err != nil {
		return nil, fmt.Errorf("failed to write summary; %w", err)
	}
	result.Files = append(result.Files, summary)

	return result, nil
}

// splitText runs the single-pass topic split over text: detect topics,
// extract their content ranges, embed, link, and render one file per
// topic plus an index.
func (p *Pipeline) splitText(ctx context.Context, text, source, outputDir string) ([]string, int, error) {
	doc := document.New(source, text)

	p.progressf("Detecting topics...")
	ts, err := p.topics.Detect(ctx, doc)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to detect topics; %w", err)
	}
	p.progressf("Detected %d topics", len(ts))

	contents := make([]string, len(ts))
	previews := make([]string, len(ts))
	names := make([]string, len(ts))
	for i, t := range ts {
		contents[i] = extractRange(doc, t)
		names[i] = t.Name
		previews[i] = contents[i]
		if len(previews[i]) > embedPreviewChars {
			previews[i] = previews[i][:embedPreviewChars]
		}
	}

	p.progressf("Generating semantic links between topics...")
	res, err := p.embeddings.Embed(ctx, providers.EmbeddingsRequest{Content: previews})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to embed topics; %w", err)
	}
	for i := range ts {
		ts[i].Embedding = res.Vectors[i]
	}

	graph := similarity.BuildGraph(names, res.Vectors, p.linkThreshold)
	for _, name := range graph.Order {
		p.progressf("  - %s: %d related topics", name, len(graph.Related(name)))
	}

	var files []string
	for i, t := range ts {
		path := filepath.Join(outputDir, t.Name+".md")
		md := render.TopicDocument(t, contents[i], graph.TopK(t.Name, p.linkTopK), source)
		if err := os.WriteFile(path, []byte(md), 0644); err != nil {
			return nil, 0, fmt.Errorf("failed to write topic file; %w", err)
		}
		files = append(files, path)
		p.progressf("Created: %s", path)
	}

	indexPath := filepath.Join(outputDir, indexFileName(source))
	if err := os.WriteFile(indexPath, []byte(render.IndexDocument(ts, graph, source)), 0644); err != nil {
		return nil, 0, fmt.Errorf("failed to write index file; %w", err)
	}
	files = append(files, indexPath)

	return files, len(ts), nil
}

// extractRange returns the lines of doc covered by the topic's
// attributed range.
func extractRange(doc *document.Document, t topics.Topic) string {
	start, end := t.ContentStart, t.ContentEnd
	if start < 0 {
		start = 0
	}
	if end > len(doc.Lines) {
		end = len(doc.Lines)
	}
	if start >= end {
		return ""
	}
	return strings.Join(doc.Lines[start:end], "\n")
}

func indexFileName(source string) string {
	base := filepath.Base(source)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "_index.md"
}

// chunkDirName builds a stable directory name from a chunk's position
// and header.
func chunkDirName(index int, header string) string {
	if len(header) > 30 {
		header = header[:30]
	}
	return fmt.Sprintf("chunk_%02d_%s", index, strings.ReplaceAll(header, " ", "_"))
}

// chunkSummary renders the top-level file tying chunked split output
// together.
func chunkSummary(doc *document.Document, chunks []chunkers.Chunk, batched []chunkers.BatchResult[[]string]) string {
	var b strings.Builder
	b.WriteString("# Document Processing Summary\n\n")
	fmt.Fprintf(&b, "**Source:** %s\n", doc.Source)
	fmt.Fprintf(&b, "**Words:** %d\n", doc.WordCount)
	fmt.Fprintf(&b, "**Chunks:** %d\n\n", len(chunks))
	b.WriteString("## Chunks\n\n")

	for i, res := range batched {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, res.Chunk.Header)
		fmt.Fprintf(&b, "Words: %d\n\n", res.Chunk.WordCount)
		if res.Success {
			fmt.Fprintf(&b, "Directory: `%s`\n\n", chunkDirName(i+1, res.Chunk.Header))
		} else {
			fmt.Fprintf(&b, "Failed: %v\n\n", res.Err)
		}
	}

	return b.String()
}
