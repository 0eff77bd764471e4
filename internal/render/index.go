package render

import (
	"fmt"
	"strings"

	"github.com/leefowlercu/docweave/internal/similarity"
	"github.com/leefowlercu/docweave/internal/topics"
)

// networkLimit caps how many neighbors each topic lists in the index's
// network section.
const networkLimit = 3

type indexFrontmatter struct {
	Title  string `yaml:"title"`
	Source string `yaml:"source"`
	Topics int    `yaml:"topics"`
}

// IndexDocument renders the index that ties a split document's topic
// files together: one subsection per topic with its connection count,
// followed by a flattened view of the link graph.
func IndexDocument(ts []topics.Topic, graph *similarity.Graph, source string) string {
	var b strings.Builder

	b.WriteString(frontmatter(indexFrontmatter{
		Title:  "Document Index",
		Source: source,
		Topics: len(ts),
	}))

	b.WriteString("\n# Document Topic Index\n\n")
	fmt.Fprintf(&b, "This document has been split into %d topic-based files with semantic backlinking.\n\n", len(ts))
	b.WriteString("## Topics\n\n")

	for _, t := range ts {
		fmt.Fprintf(&b, "### [[%s]]\n\n", t.Name)
		fmt.Fprintf(&b, "%s\n\n", t.Description)
		fmt.Fprintf(&b, "*Connected to %d other topics*\n\n", len(graph.Related(t.Name)))
	}

	b.WriteString("\n---\n\n## Topic Network\n\n")
	b.WriteString("This visualization shows how topics are connected:\n\n")

	for _, name := range graph.Order {
		related := graph.TopK(name, networkLimit)
		if len(related) == 0 {
			continue
		}
		fmt.Fprintf(&b, "- **%s**\n", name)
		for _, link := range related {
			fmt.Fprintf(&b, "  - → [[%s]] (%.0f%%)\n", link.Target, link.Similarity*100)
		}
	}

	return b.String()
}
