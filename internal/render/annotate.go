package render

import (
	"fmt"
	"strings"
	"time"
)

type annotationFrontmatter struct {
	Source      string `yaml:"source"`
	Processed   string `yaml:"processed"`
	KeyConcepts string `yaml:"key_concepts"`
	Chunks      int    `yaml:"chunks"`
}

// AnnotatedDocument wraps an indexed document's text with processing
// metadata and a trailing backlinks section summarizing its key concepts
// and chunk count.
func AnnotatedDocument(text, source string, concepts []string, chunkCount int, processed time.Time) string {
	conceptNote := "N/A (semantic provider unavailable)"
	if len(concepts) > 0 {
		conceptNote = strings.Join(concepts, ", ")
	}

	var b strings.Builder
	b.WriteString(frontmatter(annotationFrontmatter{
		Source:      source,
		Processed:   processed.Format(time.RFC3339),
		KeyConcepts: conceptNote,
		Chunks:      chunkCount,
	}))
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(text, "\n"))

	b.WriteString("\n\n---\n\n## Semantic Backlinks\n\n")
	b.WriteString("This document is semantically linked in the vector database.\n")
	if len(concepts) > 0 {
		fmt.Fprintf(&b, "- **Key Concepts**: %s\n", strings.Join(concepts, ", "))
	} else {
		b.WriteString("- **Key Concepts**: Not extracted (semantic provider unavailable)\n")
	}
	fmt.Fprintf(&b, "- **Total Chunks**: %d\n", chunkCount)

	return b.String()
}
