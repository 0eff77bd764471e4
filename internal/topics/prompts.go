package topics

import (
	"fmt"
	"strings"

	"github.com/leefowlercu/docweave/internal/document"
)

const (
	detectSystemPrompt = "You are an expert at analyzing documents and identifying distinct topics and themes. Return only valid JSON."

	clusterSystemPrompt = "You are a helpful assistant that analyzes text and identifies topics. Always respond with valid JSON."

	conceptSystemPrompt = "You are a helpful assistant that extracts key concepts, entities, and topics from text. Return them as a JSON array of strings."

	// previewChars bounds the document sample sent for topic detection.
	previewChars = 3000

	// headerSample bounds how many headers are listed in the prompt.
	headerSample = 20
)

func detectPrompt(doc *document.Document, headers []document.Header, minTopics, maxTopics int) string {
	preview := doc.Text
	if len(preview) > previewChars {
		preview = preview[:previewChars]
	}

	names := make([]string, 0, headerSample)
	for _, h := range headers {
		if len(names) == headerSample {
			break
		}
		names = append(names, h.Text)
	}

	return fmt.Sprintf(`Analyze this document and identify %d to %d distinct topics or themes.

Document Preview:
%s

Document has %d lines and %d headers.
Headers found: %s

For each topic, provide:
1. A clear, concise topic name (3-5 words, use underscores for spaces)
2. A brief description (one sentence)
3. 3-5 keywords related to this topic
4. Which section/header this topic corresponds to (if any)

Return as JSON array:
[
  {
    "topic_name": "executive_summary",
    "description": "Overview of company performance and key achievements",
    "keywords": ["performance", "overview", "highlights", "achievements"],
    "related_headers": ["Executive Summary", "Overview"]
  }
]

Focus on semantic topics, not just structural divisions. Group related content together.`,
		minTopics, maxTopics, preview, doc.LineCount(), len(headers), strings.Join(names, ", "))
}

func clusterPrompt(sample string) string {
	return fmt.Sprintf(`Analyze these related text chunks and identify the main topic.

Text chunks:
%s

Provide a response in JSON format:
{
    "topic_name": "concise_topic_name_with_underscores",
    "description": "One sentence description of what this topic covers",
    "keywords": ["keyword1", "keyword2", "keyword3"]
}

Return ONLY the JSON, no other text.`, sample)
}

func conceptPrompt(sample string) string {
	return fmt.Sprintf("Extract the main concepts, entities, and topics from this text:\n\n%s", sample)
}
