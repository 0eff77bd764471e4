package chunkers

import (
	"strings"
)

// maxContextHeaders is how many recent headings are carried into each
// context chunk.
const maxContextHeaders = 3

// SplitWithContext splits text into character-bounded chunks for embedding,
// prefixing each chunk with the most recent heading lines so a chunk pulled
// out of the middle of a long section still embeds with its surrounding
// structure. Used by the vector-store indexing path, where the unit of
// retrieval is much smaller than the topic-mapping chunks.
func SplitWithContext(text string, chunkSize int) []string {
	if chunkSize <= 0 {
		chunkSize = DefaultOptions().ContextChunkChars
	}

	lines := strings.Split(text, "\n")

	var chunks []string
	var current []string
	var headers []string
	currentSize := 0

	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			headers = append(headers, line)
			if len(headers) > maxContextHeaders {
				headers = headers[1:]
			}
		}

		lineSize := len(line)
		if currentSize+lineSize > chunkSize && len(current) > 0 {
			chunks = append(chunks, joinWithContext(headers, current))
			current = []string{line}
			currentSize = lineSize
			continue
		}

		current = append(current, line)
		currentSize += lineSize
	}

	if len(current) > 0 {
		chunks = append(chunks, joinWithContext(headers, current))
	}

	return chunks
}

func joinWithContext(headers, lines []string) string {
	parts := make([]string, 0, len(headers)+len(lines))
	parts = append(parts, headers...)
	parts = append(parts, lines...)
	return strings.Join(parts, "\n")
}
