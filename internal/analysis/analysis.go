// Package analysis orchestrates the document processing flows: splitting
// a document into topic files with semantic backlinks, indexing a
// document into the vector store, regenerating topics from stored
// embeddings, and similarity search over the indexed corpus. Stages are
// coordinated here; the work itself lives in the chunkers, topics,
// similarity, store, and render packages.
package analysis

import "fmt"

// Reporter receives human-readable progress messages during long flows.
type Reporter interface {
	Progress(message string)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(message string)

// Progress calls f with the message.
func (f ReporterFunc) Progress(message string) {
	f(message)
}

// NopReporter discards all progress messages.
var NopReporter Reporter = ReporterFunc(func(string) {})

func (p *Pipeline) progressf(format string, args ...any) {
	p.reporter.Progress(fmt.Sprintf(format, args...))
}
