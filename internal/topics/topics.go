package topics

// Topic is a named, described cluster of document content with an
// attributed line range. Topics are produced once per detection call and
// regenerated wholesale when the underlying text changes.
type Topic struct {
	// Name is a unique slug identifying the topic.
	Name string

	// Description is a one-sentence summary.
	Description string

	// Keywords are related terms, possibly empty.
	Keywords []string

	// ContentStart and ContentEnd delimit the topic's attributed line
	// range within the source document. ContentEnd is exclusive.
	// Attribution is best-effort via header matching; an unmatched topic
	// spans the whole input.
	ContentStart int
	ContentEnd   int

	// Embedding is the representative vector for the topic's content,
	// attached after embedding generation.
	Embedding []float32
}
