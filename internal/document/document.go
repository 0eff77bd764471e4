package document

import (
	"regexp"
	"strings"
)

// Matches markdown headings (# to ######)
var headingRegex = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Document is an ingested text document. It is immutable after New;
// downstream stages derive new values rather than mutating it.
type Document struct {
	// Source is the originating file name, used for provenance in
	// rendered output and the vector store.
	Source string

	// Text is the full raw UTF-8 content.
	Text string

	// Lines is Text split on newlines. Splitting happens once at ingest
	// so every stage agrees on line numbering.
	Lines []string

	// WordCount is the whitespace-delimited word total.
	WordCount int

	// CharCount is the length of Text in bytes.
	CharCount int
}

// New creates a Document from raw text.
func New(source, text string) *Document {
	return &Document{
		Source:    source,
		Text:      text,
		Lines:     strings.Split(text, "\n"),
		WordCount: CountWords(text),
		CharCount: len(text),
	}
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// Headers returns the document's markdown headers in order.
func (d *Document) Headers() []Header {
	return ScanHeaders(d.Lines)
}

// Header is a markdown heading located within a document.
type Header struct {
	// Line is the zero-based line number of the heading.
	Line int

	// Level is the heading depth, 1 through 6.
	Level int

	// Text is the heading text with the leading hashes stripped.
	Text string
}

// ScanHeaders finds every markdown heading in the given lines.
// Headings inside fenced code blocks are ignored.
func ScanHeaders(lines []string) []Header {
	var headers []Header
	inCodeBlock := false

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			continue
		}

		matches := headingRegex.FindStringSubmatch(line)
		if matches == nil {
			continue
		}

		headers = append(headers, Header{
			Line:  i,
			Level: len(matches[1]),
			Text:  strings.TrimSpace(matches[2]),
		})
	}

	return headers
}

// HeaderLine reports whether the line is a markdown heading, and its level.
func HeaderLine(line string) (level int, text string, ok bool) {
	matches := headingRegex.FindStringSubmatch(line)
	if matches == nil {
		return 0, "", false
	}
	return len(matches[1]), strings.TrimSpace(matches[2]), true
}

// CountWords returns the number of whitespace-delimited words in s.
// This is intentionally simple; exact tokenization is not required for
// chunk sizing.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// EstimateTokens gives a rough LLM token estimate (1 token ~= 0.75 words).
func EstimateTokens(s string) int {
	return int(float64(CountWords(s)) / 0.75)
}
