package render

import (
	"fmt"
	"strings"

	"github.com/leefowlercu/docweave/internal/similarity"
	"github.com/leefowlercu/docweave/internal/topics"
)

type topicFrontmatter struct {
	Topic       string `yaml:"topic"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
	Source      string `yaml:"source"`
}

// TopicDocument renders one topic as a standalone markdown document:
// frontmatter, the topic's content, and a Related Topics section with
// wiki-style backlinks to its strongest neighbors. The caller decides
// how many related links to include.
func TopicDocument(topic topics.Topic, content string, related []similarity.Link, source string) string {
	var b strings.Builder

	b.WriteString(frontmatter(topicFrontmatter{
		Topic:       topic.Name,
		Description: topic.Description,
		Keywords:    strings.Join(topic.Keywords, ", "),
		Source:      source,
	}))

	fmt.Fprintf(&b, "\n# %s\n\n", topic.Description)
	b.WriteString(strings.TrimRight(content, "\n"))
	b.WriteString("\n\n---\n\n## Related Topics\n\n")

	if len(related) == 0 {
		b.WriteString("*No related topics found*\n")
	} else {
		for _, link := range related {
			fmt.Fprintf(&b, "- [[%s]] (similarity: %.0f%%)\n", link.Target, link.Similarity*100)
		}
	}

	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "*This is part of the [[%s]] document network*\n", stem(source))

	return b.String()
}
