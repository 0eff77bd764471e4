package render

import (
	"fmt"
	"strings"

	"github.com/leefowlercu/docweave/internal/store"
	"github.com/leefowlercu/docweave/internal/topics"
)

type clusterFrontmatter struct {
	Topic       string `yaml:"topic"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
	Chunks      int    `yaml:"chunks"`
	Source      string `yaml:"source"`
}

// ClusterDocument renders a topic reconstructed from stored chunks: one
// section per chunk in cluster order, each tagged with its source.
func ClusterDocument(topic topics.Topic, chunks []store.ChunkRecord, sources []string) string {
	var b strings.Builder

	b.WriteString(frontmatter(clusterFrontmatter{
		Topic:       topic.Name,
		Description: topic.Description,
		Keywords:    strings.Join(topic.Keywords, ", "),
		Chunks:      len(chunks),
		Source:      "vector_database",
	}))

	fmt.Fprintf(&b, "\n# %s\n", topic.Description)

	for i, chunk := range chunks {
		fmt.Fprintf(&b, "\n## Section %d\n\n", i+1)
		if i < len(sources) && sources[i] != "" {
			fmt.Fprintf(&b, "*Source: %s*\n\n", sources[i])
		}
		b.WriteString(strings.TrimRight(chunk.Content, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "**Keywords:** %s\n\n", strings.Join(topic.Keywords, ", "))
	fmt.Fprintf(&b, "**Chunks:** %d\n", len(chunks))

	return b.String()
}
