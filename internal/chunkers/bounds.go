package chunkers

import (
	"fmt"

	"github.com/leefowlercu/docweave/internal/document"
)

// SplitBounded splits oversized sections into parts of at most maxWords,
// carrying the trailing overlapLines lines of each flushed part into the
// next one for context. Sections already within the bound pass through with
// their label unchanged. A single line whose own word count exceeds the
// bound is still emitted; it cannot be split further.
func SplitBounded(sections []Section, maxWords, overlapLines int) []Chunk {
	var chunks []Chunk

	for _, section := range sections {
		if section.WordCount <= maxWords {
			chunks = append(chunks, Chunk{Section: section})
			continue
		}
		chunks = append(chunks, splitSection(section, maxWords, overlapLines)...)
	}

	return chunks
}

func splitSection(section Section, maxWords, overlapLines int) []Chunk {
	var parts []Chunk

	var chunkLines []string
	chunkWords := 0
	overlap := 0

	flush := func() {
		owned := make([]string, len(chunkLines))
		copy(owned, chunkLines)
		parts = append(parts, Chunk{
			Section: Section{
				Header:    section.Header,
				Level:     section.Level,
				Lines:     owned,
				WordCount: chunkWords,
			},
			Overlap: overlap,
		})
	}

	for _, line := range section.Lines {
		lineWords := document.CountWords(line)

		if chunkWords+lineWords > maxWords && len(chunkLines) > 0 {
			flush()

			// Seed the next part with trailing context from the
			// flushed one, recomputing the word count from the
			// seeded lines rather than reusing stale totals.
			seed := tailLines(chunkLines, overlapLines)
			chunkLines = append(seed, line)
			chunkWords = 0
			for _, l := range chunkLines {
				chunkWords += document.CountWords(l)
			}
			overlap = len(seed)
			continue
		}

		chunkLines = append(chunkLines, line)
		chunkWords += lineWords
	}

	if len(chunkLines) > 0 {
		flush()
	}

	// A section that actually split gets "(Part N)" labels; one that fit
	// in a single part keeps its original header.
	if len(parts) > 1 {
		for i := range parts {
			parts[i].Header = fmt.Sprintf("%s (Part %d)", section.Header, i+1)
		}
	}

	return parts
}

// tailLines returns the last n lines, or all of them when fewer exist.
func tailLines(lines []string, n int) []string {
	if len(lines) <= n {
		return append([]string(nil), lines...)
	}
	return append([]string(nil), lines[len(lines)-n:]...)
}
