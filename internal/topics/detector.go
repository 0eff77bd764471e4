package topics

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leefowlercu/docweave/internal/document"
	"github.com/leefowlercu/docweave/internal/providers"
)

// Detector identifies semantic topics within a document by asking a
// semantic provider to propose them, then mapping each proposal back onto
// a line range of the source via its related headers. When the provider
// fails or returns an unusable payload, detection degrades to a
// deterministic header-derived topic list.
type Detector struct {
	provider  providers.SemanticProvider
	minTopics int
	maxTopics int
	logger    *slog.Logger
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithTopicRange sets the minimum and maximum number of topics requested
// from the provider.
func WithTopicRange(min, max int) DetectorOption {
	return func(d *Detector) {
		d.minTopics = min
		d.maxTopics = max
	}
}

// WithDetectorLogger sets the logger used for detection diagnostics.
func WithDetectorLogger(logger *slog.Logger) DetectorOption {
	return func(d *Detector) {
		d.logger = logger
	}
}

// NewDetector returns a Detector backed by the given semantic provider.
func NewDetector(provider providers.SemanticProvider, opts ...DetectorOption) *Detector {
	d := &Detector{
		provider:  provider,
		minTopics: 3,
		maxTopics: 10,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns the topics of doc. Provider errors and malformed payloads
// are not fatal; both fall back to header-derived topics.
func (d *Detector) Detect(ctx context.Context, doc *document.Document) ([]Topic, error) {
	headers := doc.Headers()

	payloads, err := d.request(ctx, doc, headers)
	if err != nil {
		d.logger.Warn("topic detection failed; falling back to headers", "error", err)
		return FallbackTopics(doc, d.minTopics), nil
	}

	topics := d.attribute(doc, headers, payloads)
	if len(topics) == 0 {
		d.logger.Warn("no topics attributed; falling back to headers")
		return FallbackTopics(doc, d.minTopics), nil
	}

	names := make([]string, len(topics))
	for i := range topics {
		names[i] = topics[i].Name
	}
	for i, name := range uniqueNames(names) {
		topics[i].Name = name
	}
	return topics, nil
}

func (d *Detector) request(ctx context.Context, doc *document.Document, headers []document.Header) ([]topicPayload, error) {
	resp, err := d.provider.Complete(ctx, providers.CompletionRequest{
		System:      detectSystemPrompt,
		Prompt:      detectPrompt(doc, headers, d.minTopics, d.maxTopics),
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete topic detection; %w", err)
	}
	return parseTopicPayload(resp)
}

// attribute maps each payload onto a line range by scanning the document
// headers for a case-insensitive substring match against the payload's
// related headers. The range extends to the next header at the same or a
// shallower level, or the end of the document. Payloads with no matching
// header cover the whole document.
func (d *Detector) attribute(doc *document.Document, headers []document.Header, payloads []topicPayload) []Topic {
	topics := make([]Topic, 0, len(payloads))
	for _, p := range payloads {
		t := Topic{
			Name:        p.TopicName,
			Description: p.Description,
			Keywords:    p.Keywords,
			ContentEnd:  doc.LineCount(),
		}

		for _, related := range p.RelatedHeaders {
			needle := strings.ToLower(related)
			if needle == "" {
				continue
			}
			for i, h := range headers {
				if !strings.Contains(strings.ToLower(h.Text), needle) {
					continue
				}
				t.ContentStart = h.Line
				t.ContentEnd = doc.LineCount()
				for _, next := range headers[i+1:] {
					if next.Level <= h.Level {
						t.ContentEnd = next.Line
						break
					}
				}
				break
			}
			if t.ContentStart > 0 {
				break
			}
		}

		topics = append(topics, t)
	}
	return topics
}

// NameCluster asks the semantic provider to name a cluster of related
// chunks. The fallback name is deterministic so cluster naming never
// fails the caller.
func (d *Detector) NameCluster(ctx context.Context, index int, sample string) Topic {
	fallback := Topic{
		Name:        fmt.Sprintf("topic_%d", index+1),
		Description: "Automatically grouped content",
	}

	resp, err := d.provider.Complete(ctx, providers.CompletionRequest{
		System:      clusterSystemPrompt,
		Prompt:      clusterPrompt(sample),
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		d.logger.Warn("cluster naming failed", "cluster", index, "error", err)
		return fallback
	}

	p, err := parseClusterPayload(resp)
	if err != nil {
		d.logger.Warn("cluster payload unusable", "cluster", index, "error", err)
		return fallback
	}

	name := Slugify(p.TopicName)
	if name == "" {
		return fallback
	}
	return Topic{
		Name:        name,
		Description: p.Description,
		Keywords:    p.Keywords,
	}
}

// wholeDocumentTopic spans every line of doc under a single generic name.
func wholeDocumentTopic(doc *document.Document) Topic {
	return Topic{
		Name:        "main_content",
		Description: "Main document content",
		Keywords:    []string{"document", "content"},
		ContentEnd:  doc.LineCount(),
	}
}
