package chunkers

import (
	"strings"

	"github.com/leefowlercu/docweave/internal/document"
)

// Section is a header-delimited span of a document. Sections partition the
// document's lines exactly once, in order, with no gaps.
type Section struct {
	// Header is the section label. Merged sections join labels with " & ";
	// bounded splitting appends " (Part N)".
	Header string

	// Level is the heading depth (1..6) of the section's opening header.
	Level int

	// StartLine is the zero-based first line of the section.
	StartLine int

	// EndLine is one past the last line of the section.
	EndLine int

	// Lines holds the section's content lines.
	Lines []string

	// WordCount is the whitespace word total of Lines.
	WordCount int
}

// Content returns the section's lines joined with newlines.
func (s Section) Content() string {
	return strings.Join(s.Lines, "\n")
}

// Chunk is a Section after merging and bounded splitting; the unit handed
// downstream for topic detection and embedding.
type Chunk struct {
	Section

	// Overlap is the number of leading lines borrowed from the previous
	// chunk of the same oversized section for context. Zero for chunks
	// that were never split.
	Overlap int
}

// Options controls the chunking stages.
type Options struct {
	// MinSectionWords is the merge threshold: adjacent sections are
	// combined until each (except possibly the last) reaches it.
	MinSectionWords int

	// MaxSectionWords bounds every emitted chunk, except a single line
	// that alone exceeds it.
	MaxSectionWords int

	// OverlapLines is the number of trailing lines carried into the next
	// part when an oversized section is split.
	OverlapLines int

	// ContextChunkChars is the character budget for the context-window
	// chunker used when indexing into the vector store.
	ContextChunkChars int
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		MinSectionWords:   5000,
		MaxSectionWords:   50000,
		OverlapLines:      20,
		ContextChunkChars: 1000,
	}
}

// Stats summarizes a chunking run.
type Stats struct {
	TotalWords  int `json:"total_words"`
	TotalChunks int `json:"total_chunks"`
	AvgWords    int `json:"avg_words"`
	MaxWords    int `json:"max_words"`
	MinWords    int `json:"min_words"`
}

func computeStats(doc *document.Document, chunks []Chunk) Stats {
	stats := Stats{
		TotalWords:  doc.WordCount,
		TotalChunks: len(chunks),
	}
	if len(chunks) == 0 {
		return stats
	}

	stats.AvgWords = doc.WordCount / len(chunks)
	stats.MinWords = chunks[0].WordCount
	for _, c := range chunks {
		if c.WordCount > stats.MaxWords {
			stats.MaxWords = c.WordCount
		}
		if c.WordCount < stats.MinWords {
			stats.MinWords = c.WordCount
		}
	}
	return stats
}
