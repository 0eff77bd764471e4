package topics

import (
	"fmt"
	"strings"

	"github.com/leefowlercu/docweave/internal/document"
)

// fallbackLevel caps which headers seed fallback topics. Deeper headers
// are subdivisions of their parent, not topics of their own.
const fallbackLevel = 2

// FallbackTopics derives topics directly from the document's headers.
// It is fully deterministic and is used whenever semantic detection is
// unavailable or returns an unusable payload. Documents with fewer than
// minTopics qualifying headers collapse to a single whole-document topic.
func FallbackTopics(doc *document.Document, minTopics int) []Topic {
	headers := doc.Headers()

	var topLevel []document.Header
	for _, h := range headers {
		if h.Level <= fallbackLevel {
			topLevel = append(topLevel, h)
		}
	}

	topics := make([]Topic, 0, len(topLevel))
	for i, h := range topLevel {
		// The range runs to the next header at the same or a shallower
		// level, so an H1 topic spans its H2 subsections.
		end := doc.LineCount()
		for j := i + 1; j < len(topLevel); j++ {
			if topLevel[j].Level <= h.Level {
				end = topLevel[j].Line
				break
			}
		}
		name := Slugify(h.Text)
		if name == "" {
			name = fmt.Sprintf("section_%d", i+1)
		}
		topics = append(topics, Topic{
			Name:         name,
			Description:  fmt.Sprintf("Content related to %s", h.Text),
			Keywords:     headerKeywords(h.Text),
			ContentStart: h.Line,
			ContentEnd:   end,
		})
	}

	for i, name := range uniqueNames(topicNames(topics)) {
		topics[i].Name = name
	}

	if len(topics) < minTopics {
		return []Topic{wholeDocumentTopic(doc)}
	}
	return topics
}

func topicNames(topics []Topic) []string {
	names := make([]string, len(topics))
	for i := range topics {
		names[i] = topics[i].Name
	}
	return names
}

// headerKeywords takes up to five significant words from a header text.
func headerKeywords(text string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,:;!?()[]")
		if len(word) < 3 {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == 5 {
			break
		}
	}
	return keywords
}
